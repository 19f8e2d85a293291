package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/blog-api/internal/domain/entity"
	"github.com/jhoicas/blog-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	*ResourceRepo[entity.User]
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{NewResourceRepo(q, userTable)}
}

// GetByEmail obtiene un usuario por email sin distinguir mayúsculas.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getWhere(ctx, sq.Expr("lower(email) = lower(?)", email))
}

var userTable = Table[entity.User]{
	Name:    "users",
	Columns: []string{"id", "name", "email", "password_hash", "bio", "image", "slug", "role"},
	Scan: func(row pgx.Row) (*entity.User, error) {
		var u entity.User
		if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Bio, &u.Image, &u.Slug, &u.Role); err != nil {
			return nil, err
		}
		return &u, nil
	},
	Insert: func(u *entity.User) ([]string, []any) {
		return []string{"name", "email", "password_hash", "bio", "image", "slug", "role"},
			[]any{u.Name, u.Email, u.PasswordHash, u.Bio, u.Image, u.Slug, u.Role}
	},
	// password_hash solo se escribe al crear.
	Update: func(u *entity.User) ([]string, []any) {
		return []string{"name", "email", "bio", "image", "slug", "role"},
			[]any{u.Name, u.Email, u.Bio, u.Image, u.Slug, u.Role}
	},
	Returning:     []string{"id"},
	ReturningDest: func(u *entity.User) []any { return []any{&u.ID} },
	ID:            func(u *entity.User) int { return u.ID },
}
