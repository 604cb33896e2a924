package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/ludoteca/ludoteca-api/internal/application/dto"
	"github.com/ludoteca/ludoteca-api/internal/domain"
	"github.com/ludoteca/ludoteca-api/internal/domain/entity"
	"github.com/ludoteca/ludoteca-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes de la tienda.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente. El alta exige los cuatro campos del formulario.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Nombre == "" || in.Apellido == "" || in.Email == "" || in.Edad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		FirstName: in.Nombre,
		LastName:  in.Apellido,
		Email:     in.Email,
		Age:       in.Edad,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update modifica los datos de un cliente existente.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Nombre == "" || in.Apellido == "" || in.Email == "" || in.Edad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.FirstName = in.Nombre
	customer.LastName = in.Apellido
	customer.Email = in.Email
	customer.Age = in.Edad
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:       c.ID,
		Nombre:   c.FirstName,
		Apellido: c.LastName,
		Email:    c.Email,
		Edad:     c.Age,
	}
}
