package dto

import "github.com/shopspring/decimal"

// RegisterSaleRequest cuerpo de POST /api/ventas. Una venta del mostrador:
// un producto, una cantidad, un método de pago.
type RegisterSaleRequest struct {
	Fecha           string `json:"fecha"` // YYYY-MM-DD, obligatoria
	ClienteID       string `json:"id_cliente"`
	ProductoID      string `json:"id_producto"`
	Cantidad        int    `json:"cantidad"`
	MetodoPagoID    string `json:"id_metodo_pago"`
}

// SaleResponse representación de una venta recién registrada.
type SaleResponse struct {
	ID         string          `json:"id"`
	Fecha      string          `json:"fecha"`
	TotalVenta decimal.Decimal `json:"total_venta"`
}

// SaleRowDTO fila desnormalizada para la tabla de ventas del panel:
// nombres ya resueltos y productos como "Nombre xCantidad" concatenados.
type SaleRowDTO struct {
	ID         string          `json:"id"`
	Fecha      string          `json:"fecha"` // "" si la venta no tiene fecha
	Cliente    string          `json:"cliente"`
	MetodoPago string          `json:"metodo_pago"`
	Productos  string          `json:"productos"`
	TotalVenta decimal.Decimal `json:"total_venta"`
}
