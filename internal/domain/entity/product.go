package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formatos de producto admitidos por el catálogo.
const (
	FormatoFisico  = "Físico"
	FormatoDigital = "Digital"
)

// Product representa un juego del catálogo (tabla productos).
// Stock es nil cuando el producto no lleva control de inventario (ej. digital).
type Product struct {
	ID        string
	Name      string          // nombre
	UnitPrice decimal.Decimal // precio_unitario
	Stock     *int
	Format    string // formato: Físico | Digital
	CreatedAt time.Time
	UpdatedAt time.Time
}
