package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/blog-api/internal/domain/entity"
	"github.com/jhoicas/blog-api/internal/domain/repository"
)

var _ repository.PostRepository = (*PostRepo)(nil)

// PostRepo implementación del puerto PostRepository sobre PostgreSQL.
// create_date y last_update_date los asigna la base.
type PostRepo struct {
	*ResourceRepo[entity.Post]
}

// NewPostRepository construye el adaptador de persistencia para posts.
func NewPostRepository(q Querier) *PostRepo {
	return &PostRepo{NewResourceRepo(q, postTable)}
}

// ListByCategory devuelve los posts de una categoría ordenados por id.
func (r *PostRepo) ListByCategory(ctx context.Context, categoryID int) ([]*entity.Post, error) {
	return r.listWhere(ctx, sq.Eq{"category_id": categoryID})
}

var postTable = Table[entity.Post]{
	Name: "posts",
	Columns: []string{
		"id", "title", "summary", "body", "slug", "category_id", "author_id",
		"create_date", "last_update_date",
	},
	Scan: func(row pgx.Row) (*entity.Post, error) {
		var p entity.Post
		if err := row.Scan(
			&p.ID, &p.Title, &p.Summary, &p.Body, &p.Slug, &p.CategoryID, &p.AuthorID,
			&p.CreateDate, &p.LastUpdateDate,
		); err != nil {
			return nil, err
		}
		return &p, nil
	},
	Insert: func(p *entity.Post) ([]string, []any) {
		return []string{"title", "summary", "body", "slug", "category_id", "author_id"},
			[]any{p.Title, p.Summary, p.Body, p.Slug, p.CategoryID, p.AuthorID}
	},
	// author_id no se modifica después de crear el post.
	Update: func(p *entity.Post) ([]string, []any) {
		return []string{"title", "summary", "body", "slug", "category_id", "last_update_date"},
			[]any{p.Title, p.Summary, p.Body, p.Slug, p.CategoryID, sq.Expr("now()")}
	},
	Returning: []string{"id", "create_date", "last_update_date"},
	ReturningDest: func(p *entity.Post) []any {
		return []any{&p.ID, &p.CreateDate, &p.LastUpdateDate}
	},
	UpdateReturning:     []string{"last_update_date"},
	UpdateReturningDest: func(p *entity.Post) []any { return []any{&p.LastUpdateDate} },
	ID:                  func(p *entity.Post) int { return p.ID },
}
