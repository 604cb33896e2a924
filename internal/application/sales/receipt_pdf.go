package sales

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ludoteca/ludoteca-api/internal/domain"
	"github.com/ludoteca/ludoteca-api/internal/domain/repository"
)

// ReceiptPDFUseCase genera el comprobante PDF de una venta.
type ReceiptPDFUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	methodRepo   repository.PaymentMethodRepository
	generator    ReceiptPDFGenerator
}

// NewReceiptPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptPDFUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	methodRepo repository.PaymentMethodRepository,
	generator ReceiptPDFGenerator,
) *ReceiptPDFUseCase {
	return &ReceiptPDFUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		methodRepo:   methodRepo,
		generator:    generator,
	}
}

// DownloadReceiptPDF recupera la venta con sus renglones, resuelve nombres de
// cliente, método y juegos, y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la venta no existe.
func (uc *ReceiptPDFUseCase) DownloadReceiptPDF(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	customerName := "Sin cliente"
	if sale.CustomerID != nil {
		if c, cErr := uc.customerRepo.GetByID(*sale.CustomerID); cErr == nil && c != nil {
			customerName = c.DisplayName()
		}
	}
	methodName := "Sin datos"
	if sale.PaymentMethodID != nil {
		if m, mErr := uc.methodRepo.GetByID(*sale.PaymentMethodID); mErr == nil && m != nil {
			methodName = m.Name
		}
	}

	details, err := uc.saleRepo.ListDetailsBySale(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener renglones: %w", err)
	}

	lines := make([]ReceiptLine, 0, len(details))
	for _, d := range details {
		name := "Sin juego"
		if p, pErr := uc.productRepo.GetByID(d.ProductID); pErr == nil && p != nil {
			name = p.Name
		}
		qty := 0
		if d.Quantity != nil {
			qty = *d.Quantity
		}
		price := decimal.Zero
		if d.UnitPrice != nil {
			price = *d.UnitPrice
		}
		lines = append(lines, ReceiptLine{
			ProductName: name,
			Quantity:    qty,
			UnitPrice:   price,
			Subtotal:    price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, sale, customerName, methodName, lines)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("comprobante_%s.pdf", sale.ID), nil
}
