package repository

import "github.com/ludoteca/ludoteca-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas y sus renglones.
type SaleRepository interface {
	CreateSale(sale *entity.Sale) error
	CreateDetail(detail *entity.SaleDetail) error
	GetByID(id string) (*entity.Sale, error)
	ListSales() ([]*entity.Sale, error)
	// ListDetailsBySale devuelve los renglones de una venta en orden de inserción.
	ListDetailsBySale(saleID string) ([]*entity.SaleDetail, error)
	ListDetails() ([]*entity.SaleDetail, error)
	// Delete elimina la venta; los renglones caen por ON DELETE CASCADE.
	Delete(id string) error
}
