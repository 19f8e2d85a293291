package memrepo

import (
	"context"
	"strings"

	"github.com/jhoicas/blog-api/internal/domain/entity"
	"github.com/jhoicas/blog-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*Categories)(nil)
	_ repository.PostRepository     = (*Posts)(nil)
	_ repository.UserRepository     = (*Users)(nil)
)

// Categories repo de categorías en memoria.
type Categories struct{ *Repo[entity.Category] }

// NewCategories construye el repo.
func NewCategories() *Categories {
	return &Categories{New(
		func(c *entity.Category) int { return c.ID },
		func(c *entity.Category, id int) { c.ID = id },
	)}
}

// Posts repo de posts en memoria.
type Posts struct{ *Repo[entity.Post] }

// NewPosts construye el repo.
func NewPosts() *Posts {
	return &Posts{New(
		func(p *entity.Post) int { return p.ID },
		func(p *entity.Post, id int) { p.ID = id },
	)}
}

func (r *Posts) ListByCategory(ctx context.Context, categoryID int) ([]*entity.Post, error) {
	return r.Filter(func(p *entity.Post) bool { return p.CategoryID == categoryID }), nil
}

// Users repo de usuarios en memoria.
type Users struct{ *Repo[entity.User] }

// NewUsers construye el repo.
func NewUsers() *Users {
	return &Users{New(
		func(u *entity.User) int { return u.ID },
		func(u *entity.User, id int) { u.ID = id },
	)}
}

func (r *Users) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	found := r.Filter(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) })
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}
