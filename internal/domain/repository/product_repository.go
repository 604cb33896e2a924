package repository

import "github.com/ludoteca/ludoteca-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija el stock absoluto del producto (nil = sin control de stock).
	UpdateStock(id string, stock *int) error
	Delete(id string) error
}
