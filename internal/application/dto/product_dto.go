package dto

import "github.com/shopspring/decimal"

// CreateProductRequest cuerpo de POST /api/productos.
// Stock nil significa "sin control de stock" (ej. juegos digitales).
type CreateProductRequest struct {
	Nombre         string           `json:"nombre"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
	Stock          *int             `json:"stock"`
	Formato        string           `json:"formato"` // Físico | Digital; default Físico
}

// UpdateProductRequest cuerpo de PUT /api/productos/:id.
type UpdateProductRequest struct {
	Nombre         string           `json:"nombre"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
	Stock          *int             `json:"stock"`
	Formato        string           `json:"formato"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Stock          *int            `json:"stock"`
	Formato        string          `json:"formato"`
}
