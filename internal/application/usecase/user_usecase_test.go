package usecase_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/blog-api/internal/application/dto"
	"github.com/jhoicas/blog-api/internal/application/usecase"
	"github.com/jhoicas/blog-api/internal/domain"
	"github.com/jhoicas/blog-api/internal/domain/entity"
	"github.com/jhoicas/blog-api/internal/testutil/memrepo"
)

func validUser() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name:     "Ana Souza",
		Email:    " ana@blog.dev ",
		Password: "s3nh4-forte",
		Slug:     "ana-souza",
	}
}

func TestUser_CreateHasheaPassword(t *testing.T) {
	repo := memrepo.NewUsers()
	uc := usecase.NewUserUseCase(repo, bcrypt.MinCost)

	id, out, err := uc.Create(context.Background(), validUser())
	require.NoError(t, err)
	assert.Equal(t, "ana@blog.dev", out.Email)
	assert.Equal(t, entity.RoleAuthor, out.Role)

	stored, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3nh4-forte", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3nh4-forte")))

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
}

func TestUser_CreateValidaciones(t *testing.T) {
	repo := memrepo.NewUsers()
	uc := usecase.NewUserUseCase(repo, bcrypt.MinCost)

	in := validUser()
	in.Email = "sin-arroba"
	in.Password = "corta"
	_, _, err := uc.Create(context.Background(), in)
	de := requireKind(t, err, domain.KindValidation, domain.CodeValidation)
	assert.Equal(t, []string{
		"el campo email no es un email válido",
		"el campo password debe contener entre 8 y 72 caracteres",
	}, de.Messages)
	assert.Equal(t, 0, repo.Len())
}

func TestUser_CreatePasswordMultibyte(t *testing.T) {
	repo := memrepo.NewUsers()
	uc := usecase.NewUserUseCase(repo, bcrypt.MinCost)

	// 40 runas, 80 bytes: dentro de Length pero fuera del límite de bcrypt.
	in := validUser()
	in.Password = strings.Repeat("ñ", 40)
	_, _, err := uc.Create(context.Background(), in)
	de := requireKind(t, err, domain.KindValidation, domain.CodeValidation)
	assert.Equal(t, []string{"el campo password no puede superar 72 bytes"}, de.Messages)
	assert.Equal(t, 0, repo.Writes())

	in.Password = strings.Repeat("ñ", 36)
	_, _, err = uc.Create(context.Background(), in)
	assert.NoError(t, err)
}

func TestUser_UpdateNoTocaPassword(t *testing.T) {
	repo := memrepo.NewUsers()
	uc := usecase.NewUserUseCase(repo, bcrypt.MinCost)
	ctx := context.Background()

	id, _, err := uc.Create(ctx, validUser())
	require.NoError(t, err)
	before, _ := repo.GetByID(ctx, id)

	out, err := uc.Update(ctx, id, dto.UpdateUserRequest{
		Name: "Ana S.", Email: "ana@blog.dev", Slug: "ana", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana S.", out.Name)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	after, _ := repo.GetByID(ctx, id)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
}

func TestPost_CreateYUpdate(t *testing.T) {
	repo := memrepo.NewPosts()
	uc := usecase.NewPostUseCase(repo)
	ctx := context.Background()

	in := dto.EditorPostRequest{
		Title: "Hola mundo", Summary: "Primer post", Body: "...", Slug: "hola-mundo",
		CategoryID: 1, AuthorID: 2,
	}
	id, out, err := uc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 2, out.AuthorID)

	in.AuthorID = 9
	in.Title = "Hola de nuevo"
	updated, err := uc.Update(ctx, id, in)
	require.NoError(t, err)
	assert.Equal(t, "Hola de nuevo", updated.Title)
	assert.Equal(t, 2, updated.AuthorID, "el autor no cambia en update")
}

func TestPost_CreateSinReferencias(t *testing.T) {
	uc := usecase.NewPostUseCase(memrepo.NewPosts())
	_, _, err := uc.Create(context.Background(), dto.EditorPostRequest{
		Title: "Hola mundo", Summary: "s", Body: "b", Slug: "hola",
	})
	de := requireKind(t, err, domain.KindValidation, domain.CodeValidation)
	assert.Equal(t, []string{
		"el campo category_id debe ser un entero positivo",
		"el campo author_id debe ser un entero positivo",
	}, de.Messages)
}

func TestPost_UpdateSinAutor(t *testing.T) {
	repo := memrepo.NewPosts()
	uc := usecase.NewPostUseCase(repo)
	ctx := context.Background()

	id, _, err := uc.Create(ctx, dto.EditorPostRequest{
		Title: "Hola mundo", Summary: "Primer post", Body: "...", Slug: "hola-mundo",
		CategoryID: 1, AuthorID: 2,
	})
	require.NoError(t, err)

	out, err := uc.Update(ctx, id, dto.EditorPostRequest{
		Title: "Hola de nuevo", Summary: "Primer post", Body: "...", Slug: "hola-mundo", CategoryID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out.CategoryID)
	assert.Equal(t, 2, out.AuthorID)
}
