package entity

import (
	"strings"
	"time"
)

// Customer representa un cliente de la tienda (tabla clientes).
type Customer struct {
	ID        string
	FirstName string // nombre
	LastName  string // apellido
	Email     string
	Age       int // edad
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName devuelve "nombre apellido" sin espacios sobrantes.
func (c Customer) DisplayName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
