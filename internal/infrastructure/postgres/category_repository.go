package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/blog-api/internal/domain/entity"
	"github.com/jhoicas/blog-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	*ResourceRepo[entity.Category]
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{NewResourceRepo(q, categoryTable)}
}

var categoryTable = Table[entity.Category]{
	Name:    "categories",
	Columns: []string{"id", "name", "slug"},
	Scan: func(row pgx.Row) (*entity.Category, error) {
		c := entity.Category{Posts: []entity.Post{}}
		if err := row.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		return &c, nil
	},
	Insert:        categoryValues,
	Update:        categoryValues,
	Returning:     []string{"id"},
	ReturningDest: func(c *entity.Category) []any { return []any{&c.ID} },
	ID:            func(c *entity.Category) int { return c.ID },
}

func categoryValues(c *entity.Category) ([]string, []any) {
	return []string{"name", "slug"}, []any{c.Name, c.Slug}
}
