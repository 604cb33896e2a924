package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta (tabla ventas).
// Fecha, cliente y método de pago pueden faltar en datos históricos; se modelan
// como punteros para conservar la distinción ausente vs. cero.
type Sale struct {
	ID              string
	Date            *time.Time // fecha (solo día, sin hora)
	CustomerID      *string    // id_cliente
	PaymentMethodID *string    // id_metodo_pago
	Total           decimal.Decimal // total_venta
	CreatedAt       time.Time
}

// SaleDetail representa un renglón de venta (tabla detalle_venta).
type SaleDetail struct {
	ID        string
	SaleID    string // id_venta
	ProductID string // id_producto
	Quantity  *int   // cantidad
	UnitPrice *decimal.Decimal // precio_unitario
}
