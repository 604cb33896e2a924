package stats

import (
	"time"

	"github.com/ludoteca/ludoteca-api/internal/domain/entity"
)

// Purchase es la compra desnormalizada: un renglón de venta con su cabecera,
// producto, cliente y método de pago ya resueltos. Es una foto de solo lectura
// que se reconstruye completa en cada carga de la página de estadísticas;
// nunca se parchea incrementalmente.
type Purchase struct {
	ID            string
	Date          *time.Time
	Total         float64
	PaymentMethod string // "" si no se pudo resolver
	ProductName   string // "" si no se pudo resolver
	CustomerName  string // "nombre apellido", "" si no se pudo resolver
	Quantity      *float64
	UnitPrice     *float64
}

// AssemblePurchases arma la secuencia de compras a partir de las cinco
// colecciones crudas: una compra por renglón de venta, en el orden de los
// renglones. Cada referencia (venta, producto, cliente, método) se resuelve de
// forma independiente vía índices id→registro; una referencia rota produce
// campos vacíos, nunca un error: en un sistema vivo los datos parciales son
// esperables.
//
// El total del renglón es cantidad × precio_unitario. Si ese producto es cero
// (renglón sin precio propio) se usa el total de la cabecera de la venta; con
// ventas de varios renglones sin precio, cada renglón repite el total completo
// de la cabecera.
//
// Si ventas o renglones vienen vacíos no hay nada que armar y se devuelve la
// secuencia vacía; el llamador decide cómo presentarlo.
func AssemblePurchases(
	sales []*entity.Sale,
	details []*entity.SaleDetail,
	products []*entity.Product,
	customers []*entity.Customer,
	methods []*entity.PaymentMethod,
) []Purchase {
	if len(sales) == 0 || len(details) == 0 {
		return nil
	}

	salesByID := make(map[string]*entity.Sale, len(sales))
	for _, s := range sales {
		salesByID[s.ID] = s
	}
	productsByID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}
	customersByID := make(map[string]*entity.Customer, len(customers))
	for _, c := range customers {
		customersByID[c.ID] = c
	}
	methodsByID := make(map[string]*entity.PaymentMethod, len(methods))
	for _, m := range methods {
		methodsByID[m.ID] = m
	}

	purchases := make([]Purchase, 0, len(details))
	for _, d := range details {
		sale := salesByID[d.SaleID] // nil si la venta no existe

		var quantity *float64
		if d.Quantity != nil {
			q := float64(*d.Quantity)
			quantity = &q
		}
		var unitPrice *float64
		if d.UnitPrice != nil {
			up := d.UnitPrice.InexactFloat64()
			unitPrice = &up
		}

		lineTotal := 0.0
		if quantity != nil && unitPrice != nil {
			lineTotal = *quantity * *unitPrice
		}
		total := lineTotal
		if total == 0 && sale != nil {
			total = sale.Total.InexactFloat64()
		}

		id := d.ID
		if id == "" {
			id = d.SaleID + "-" + d.ProductID
		}

		p := Purchase{
			ID:        id,
			Total:     total,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		}
		if sale != nil {
			p.Date = sale.Date
			if sale.PaymentMethodID != nil {
				if m := methodsByID[*sale.PaymentMethodID]; m != nil {
					p.PaymentMethod = m.Name
				}
			}
			if sale.CustomerID != nil {
				if c := customersByID[*sale.CustomerID]; c != nil {
					p.CustomerName = c.DisplayName()
				}
			}
		}
		if prod := productsByID[d.ProductID]; prod != nil {
			p.ProductName = prod.Name
		}

		purchases = append(purchases, p)
	}
	return purchases
}
