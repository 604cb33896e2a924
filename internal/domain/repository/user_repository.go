package repository

import "github.com/ludoteca/ludoteca-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios del panel.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
}
