package repository

import "github.com/ludoteca/ludoteca-api/internal/domain/entity"

// PaymentMethodRepository define el puerto de persistencia para PaymentMethod.
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	GetByID(id string) (*entity.PaymentMethod, error)
	List() ([]*entity.PaymentMethod, error)
}
