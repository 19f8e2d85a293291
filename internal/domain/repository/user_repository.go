package repository

import (
	"context"

	"github.com/jhoicas/blog-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Repository[entity.User]
	// GetByEmail devuelve (nil, nil) si no hay usuario con ese email.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
