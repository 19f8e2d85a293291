package usecase

import (
	"context"

	"github.com/jhoicas/blog-api/internal/application/dto"
	"github.com/jhoicas/blog-api/internal/domain"
	"github.com/jhoicas/blog-api/internal/domain/entity"
	"github.com/jhoicas/blog-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase = ResourceUseCase[entity.Category, dto.EditorCategoryRequest, dto.EditorCategoryRequest, dto.CategoryResponse]

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return NewResourceUseCase(repository.Repository[entity.Category](repo), ResourceSpec[entity.Category, dto.EditorCategoryRequest, dto.EditorCategoryRequest, dto.CategoryResponse]{
		Label:       "la categoría",
		CreateRules: dto.CategoryConstraints,
		UpdateRules: dto.CategoryConstraints,
		New: func(in dto.EditorCategoryRequest) (*entity.Category, error) {
			return entity.NewCategory(in.Name, in.Slug), nil
		},
		Apply: func(c *entity.Category, in dto.EditorCategoryRequest) {
			c.Name = in.Name
			c.Slug = in.Slug
		},
		ID:   func(c *entity.Category) int { return c.ID },
		View: toCategoryResponse,
	})
}

// CategoryPostsUseCase lista los posts de una categoría.
type CategoryPostsUseCase struct {
	categories repository.CategoryRepository
	posts      repository.PostRepository
}

// NewCategoryPostsUseCase construye el caso de uso.
func NewCategoryPostsUseCase(categories repository.CategoryRepository, posts repository.PostRepository) *CategoryPostsUseCase {
	return &CategoryPostsUseCase{categories: categories, posts: posts}
}

// List devuelve los posts de la categoría id; 404 si la categoría no existe.
func (uc *CategoryPostsUseCase) List(ctx context.Context, id int) ([]dto.PostResponse, error) {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternal(err)
	}
	if c == nil {
		return nil, domain.NewNotFound("la categoría", id)
	}
	list, err := uc.posts.ListByCategory(ctx, id)
	if err != nil {
		return nil, domain.NewInternal(err)
	}
	out := make([]dto.PostResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPostResponse(p))
	}
	return out, nil
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	posts := make([]dto.PostResponse, 0, len(c.Posts))
	for i := range c.Posts {
		posts = append(posts, toPostResponse(&c.Posts[i]))
	}
	return dto.CategoryResponse{
		ID:    c.ID,
		Name:  c.Name,
		Slug:  c.Slug,
		Posts: posts,
	}
}
