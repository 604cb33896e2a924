package repository

import (
	"context"

	"github.com/ludoteca/ludoteca-api/internal/domain/entity"
)

// StatisticsRepository define las cinco lecturas que alimentan la página de
// estadísticas. Las implementaciones son read-only y devuelven las colecciones
// completas en orden estable de inserción; el join se hace en memoria
// (internal/domain/stats), no en SQL.
type StatisticsRepository interface {
	ListSales(ctx context.Context) ([]*entity.Sale, error)
	ListSaleDetails(ctx context.Context) ([]*entity.SaleDetail, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)
	ListPaymentMethods(ctx context.Context) ([]*entity.PaymentMethod, error)
}
