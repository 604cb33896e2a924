package usecase

import (
	"github.com/google/uuid"
	"github.com/ludoteca/ludoteca-api/internal/application/dto"
	"github.com/ludoteca/ludoteca-api/internal/domain"
	"github.com/ludoteca/ludoteca-api/internal/domain/entity"
	"github.com/ludoteca/ludoteca-api/internal/domain/repository"
)

// PaymentMethodUseCase casos de uso para las formas de pago.
type PaymentMethodUseCase struct {
	repo repository.PaymentMethodRepository
}

// NewPaymentMethodUseCase construye el caso de uso.
func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo}
}

// Create da de alta una forma de pago.
func (uc *PaymentMethodUseCase) Create(in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	method := &entity.PaymentMethod{
		ID:   uuid.New().String(),
		Name: in.Nombre,
	}
	if err := uc.repo.Create(method); err != nil {
		return nil, err
	}
	return &dto.PaymentMethodResponse{ID: method.ID, Nombre: method.Name}, nil
}

// List lista todas las formas de pago.
func (uc *PaymentMethodUseCase) List() ([]*dto.PaymentMethodResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentMethodResponse, 0, len(list))
	for _, m := range list {
		out = append(out, &dto.PaymentMethodResponse{ID: m.ID, Nombre: m.Name})
	}
	return out, nil
}
