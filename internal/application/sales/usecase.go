// Package sales implementa el flujo de ventas del mostrador: registrar una
// venta descontando stock en una sola transacción, listar la tabla
// desnormalizada del panel y eliminar ventas.
package sales

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ludoteca/ludoteca-api/internal/application/dto"
	"github.com/ludoteca/ludoteca-api/internal/domain"
	"github.com/ludoteca/ludoteca-api/internal/domain/entity"
	"github.com/ludoteca/ludoteca-api/internal/domain/repository"
)

const fechaLayout = "2006-01-02"

// UseCase casos de uso de ventas.
type UseCase struct {
	txRunner     TxRunner
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	methodRepo   repository.PaymentMethodRepository
	listRepo     repository.StatisticsRepository
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	methodRepo repository.PaymentMethodRepository,
	listRepo repository.StatisticsRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		methodRepo:   methodRepo,
		listRepo:     listRepo,
	}
}

// RegisterSale registra una venta de mostrador: valida las referencias, calcula
// el total como precio unitario × cantidad y descuenta el stock del juego en la
// misma transacción. Si el stock no alcanza retorna ErrInsufficientStock y no
// persiste nada.
func (uc *UseCase) RegisterSale(ctx context.Context, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if in.ClienteID == "" || in.ProductoID == "" || in.MetodoPagoID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Cantidad < 1 {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := time.Parse(fechaLayout, in.Fecha)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, in.Fecha)
	}

	// Referencias de solo lectura, fuera de la transacción.
	customer, err := uc.customerRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("ventas: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	method, err := uc.methodRepo.GetByID(in.MetodoPagoID)
	if err != nil {
		return nil, fmt.Errorf("ventas: obtener método de pago: %w", err)
	}
	if method == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	saleID := uuid.New().String()
	var total decimal.Decimal

	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductoID)
		if err != nil {
			return fmt.Errorf("ventas: obtener juego: %w", err)
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Stock != nil && *product.Stock < in.Cantidad {
			return domain.ErrInsufficientStock
		}

		total = product.UnitPrice.Mul(decimal.NewFromInt(int64(in.Cantidad)))

		sale := &entity.Sale{
			ID:              saleID,
			Date:            &fecha,
			CustomerID:      &in.ClienteID,
			PaymentMethodID: &in.MetodoPagoID,
			Total:           total,
			CreatedAt:       now,
		}
		if err := saleRepo.CreateSale(sale); err != nil {
			return err
		}
		cantidad := in.Cantidad
		precio := product.UnitPrice
		detail := &entity.SaleDetail{
			ID:        uuid.New().String(),
			SaleID:    saleID,
			ProductID: in.ProductoID,
			Quantity:  &cantidad,
			UnitPrice: &precio,
		}
		if err := saleRepo.CreateDetail(detail); err != nil {
			return err
		}
		if product.Stock != nil {
			restante := *product.Stock - in.Cantidad
			if err := productRepo.UpdateStock(product.ID, &restante); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.SaleResponse{
		ID:         saleID,
		Fecha:      in.Fecha,
		TotalVenta: total,
	}, nil
}

// ListSales arma la tabla de ventas del panel: cada fila con el nombre del
// cliente, el método de pago y los juegos vendidos como "Nombre xCantidad".
// Referencias rotas caen a las etiquetas "Sin cliente" / "Sin datos" / "Sin juego".
func (uc *UseCase) ListSales(ctx context.Context) ([]dto.SaleRowDTO, error) {
	ventas, err := uc.listRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("ventas: listar ventas: %w", err)
	}
	renglones, err := uc.listRepo.ListSaleDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("ventas: listar renglones: %w", err)
	}
	juegos, err := uc.listRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("ventas: listar juegos: %w", err)
	}
	clientes, err := uc.listRepo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("ventas: listar clientes: %w", err)
	}
	metodos, err := uc.listRepo.ListPaymentMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("ventas: listar métodos de pago: %w", err)
	}

	juegoPorID := make(map[string]*entity.Product, len(juegos))
	for _, j := range juegos {
		juegoPorID[j.ID] = j
	}
	clientePorID := make(map[string]*entity.Customer, len(clientes))
	for _, c := range clientes {
		clientePorID[c.ID] = c
	}
	metodoPorID := make(map[string]*entity.PaymentMethod, len(metodos))
	for _, m := range metodos {
		metodoPorID[m.ID] = m
	}
	renglonesPorVenta := make(map[string][]*entity.SaleDetail, len(ventas))
	for _, d := range renglones {
		renglonesPorVenta[d.SaleID] = append(renglonesPorVenta[d.SaleID], d)
	}

	rows := make([]dto.SaleRowDTO, 0, len(ventas))
	for _, v := range ventas {
		cliente := "Sin cliente"
		if v.CustomerID != nil {
			if c, ok := clientePorID[*v.CustomerID]; ok {
				cliente = c.DisplayName()
			}
		}
		metodo := "Sin datos"
		if v.PaymentMethodID != nil {
			if m, ok := metodoPorID[*v.PaymentMethodID]; ok {
				metodo = m.Name
			}
		}
		fechaFila := ""
		if v.Date != nil {
			fechaFila = v.Date.Format(fechaLayout)
		}
		partes := make([]string, 0, len(renglonesPorVenta[v.ID]))
		for _, d := range renglonesPorVenta[v.ID] {
			nombre := "Sin juego"
			if j, ok := juegoPorID[d.ProductID]; ok {
				nombre = j.Name
			}
			if d.Quantity != nil {
				nombre += " x" + strconv.Itoa(*d.Quantity)
			}
			partes = append(partes, nombre)
		}
		rows = append(rows, dto.SaleRowDTO{
			ID:         v.ID,
			Fecha:      fechaFila,
			Cliente:    cliente,
			MetodoPago: metodo,
			Productos:  strings.Join(partes, ", "),
			TotalVenta: v.Total,
		})
	}
	return rows, nil
}

// DeleteSale elimina la venta y sus renglones. No repone stock: una venta
// borrada del historial no devuelve juegos al estante.
func (uc *UseCase) DeleteSale(id string) error {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("ventas: obtener venta: %w", err)
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.saleRepo.Delete(id)
}
