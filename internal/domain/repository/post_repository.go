package repository

import (
	"context"

	"github.com/jhoicas/blog-api/internal/domain/entity"
)

// PostRepository define el puerto de persistencia para Post (DIP).
type PostRepository interface {
	Repository[entity.Post]
	ListByCategory(ctx context.Context, categoryID int) ([]*entity.Post, error)
}
