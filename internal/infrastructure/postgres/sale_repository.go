package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ludoteca/ludoteca-api/internal/domain/entity"
	"github.com/ludoteca/ludoteca-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// CreateSale persiste la cabecera de una venta.
func (r *SaleRepo) CreateSale(sale *entity.Sale) error {
	query := `
		INSERT INTO ventas (id, fecha, id_cliente, id_metodo_pago, total_venta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Date, sale.CustomerID, sale.PaymentMethodID, sale.Total, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateDetail persiste un renglón de venta.
func (r *SaleRepo) CreateDetail(detail *entity.SaleDetail) error {
	query := `
		INSERT INTO detalle_venta (id, id_venta, id_producto, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.SaleID, detail.ProductID, detail.Quantity, detail.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert detalle de venta: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, fecha, id_cliente, id_metodo_pago, total_venta, created_at
		FROM ventas WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Date, &s.CustomerID, &s.PaymentMethodID, &s.Total, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &s, nil
}

// ListSales lista todas las ventas, más recientes primero.
func (r *SaleRepo) ListSales() ([]*entity.Sale, error) {
	query := `
		SELECT id, fecha, id_cliente, id_metodo_pago, total_venta, created_at
		FROM ventas ORDER BY fecha DESC NULLS LAST, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// ListDetailsBySale devuelve los renglones de una venta en orden de inserción.
func (r *SaleRepo) ListDetailsBySale(saleID string) ([]*entity.SaleDetail, error) {
	query := `
		SELECT id, id_venta, id_producto, cantidad, precio_unitario
		FROM detalle_venta WHERE id_venta = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list detalle de venta: %w", err)
	}
	defer rows.Close()
	return scanDetails(rows)
}

// ListDetails devuelve todos los renglones de todas las ventas.
func (r *SaleRepo) ListDetails() ([]*entity.SaleDetail, error) {
	query := `
		SELECT id, id_venta, id_producto, cantidad, precio_unitario
		FROM detalle_venta ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()
	return scanDetails(rows)
}

// Delete elimina la venta; los renglones caen por ON DELETE CASCADE.
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	return nil
}

func scanSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Date, &s.CustomerID, &s.PaymentMethodID, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func scanDetails(rows pgx.Rows) ([]*entity.SaleDetail, error) {
	var list []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(&d.ID, &d.SaleID, &d.ProductID, &d.Quantity, &d.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
