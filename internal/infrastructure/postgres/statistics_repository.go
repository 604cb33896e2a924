package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ludoteca/ludoteca-api/internal/domain/entity"
	"github.com/ludoteca/ludoteca-api/internal/domain/repository"
)

var _ repository.StatisticsRepository = (*StatisticsRepo)(nil)

// StatisticsRepo lecturas completas de solo lectura para el tablero de
// estadísticas. El cruce entre colecciones se hace en memoria, no en SQL,
// para tolerar referencias rotas en datos históricos.
type StatisticsRepo struct {
	pool *pgxpool.Pool
}

// NewStatisticsRepository construye el adaptador de estadísticas.
func NewStatisticsRepository(pool *pgxpool.Pool) *StatisticsRepo {
	return &StatisticsRepo{pool: pool}
}

// ListSales devuelve todas las ventas en orden cronológico de registro.
func (r *StatisticsRepo) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	query := `
		SELECT id, fecha, id_cliente, id_metodo_pago, total_venta, created_at
		FROM ventas ORDER BY created_at, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("estadisticas.ListSales: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// ListSaleDetails devuelve todos los renglones de venta en orden de inserción.
func (r *StatisticsRepo) ListSaleDetails(ctx context.Context) ([]*entity.SaleDetail, error) {
	query := `
		SELECT id, id_venta, id_producto, cantidad, precio_unitario
		FROM detalle_venta ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("estadisticas.ListSaleDetails: %w", err)
	}
	defer rows.Close()
	return scanDetails(rows)
}

// ListProducts devuelve el catálogo completo.
func (r *StatisticsRepo) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, nombre, precio_unitario, stock, formato, created_at, updated_at
		FROM productos ORDER BY nombre`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("estadisticas.ListProducts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.UnitPrice, &p.Stock, &p.Format, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("estadisticas.ListProducts scan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListCustomers devuelve todos los clientes.
func (r *StatisticsRepo) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	query := `
		SELECT id, nombre, apellido, email, edad, created_at, updated_at
		FROM clientes ORDER BY nombre, apellido`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("estadisticas.ListCustomers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Age, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("estadisticas.ListCustomers scan: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListPaymentMethods devuelve todos los métodos de pago.
func (r *StatisticsRepo) ListPaymentMethods(ctx context.Context) ([]*entity.PaymentMethod, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, nombre FROM metodos_pago ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("estadisticas.ListPaymentMethods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("estadisticas.ListPaymentMethods scan: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
