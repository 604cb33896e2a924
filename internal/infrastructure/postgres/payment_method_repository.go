package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ludoteca/ludoteca-api/internal/domain"
	"github.com/ludoteca/ludoteca-api/internal/domain/entity"
	"github.com/ludoteca/ludoteca-api/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementación de PaymentMethodRepository (usable con pool o tx).
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

// Create persiste un método de pago.
func (r *PaymentMethodRepo) Create(method *entity.PaymentMethod) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO metodos_pago (id, nombre) VALUES ($1, $2)`, method.ID, method.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert método de pago: %w", err)
	}
	return nil
}

// GetByID obtiene un método de pago por ID.
func (r *PaymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	var m entity.PaymentMethod
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre FROM metodos_pago WHERE id = $1`, id).Scan(&m.ID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get método de pago: %w", err)
	}
	return &m, nil
}

// List lista todos los métodos de pago ordenados por nombre.
func (r *PaymentMethodRepo) List() ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre FROM metodos_pago ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list métodos de pago: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("scan método de pago: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
