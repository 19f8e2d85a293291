package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/blog-api/internal/application/auth"
	"github.com/jhoicas/blog-api/internal/application/usecase"
	"github.com/jhoicas/blog-api/internal/domain/entity"
	apphttp "github.com/jhoicas/blog-api/internal/interfaces/http"
	"github.com/jhoicas/blog-api/internal/testutil/memrepo"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testPassword  = "s3nh4-forte"
)

// testEnv aplicación Fiber armada igual que en cmd/api, sobre repositorios en memoria.
type testEnv struct {
	app        *fiber.App
	categories *memrepo.Categories
	posts      *memrepo.Posts
	users      *memrepo.Users
	tokens     *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := zerolog.Nop()

	env := &testEnv{
		categories: memrepo.NewCategories(),
		posts:      memrepo.NewPosts(),
		users:      memrepo.NewUsers(),
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	env.users.Seed(entity.User{Name: "Ana", Email: "ana@blog.dev", PasswordHash: string(hash), Slug: "ana", Role: entity.RoleAuthor})

	env.tokens, err = auth.NewTokenService(auth.TokenConfig{
		Secret:      testJWTSecret,
		Name:        "blog-admin",
		Role:        entity.RoleAdmin,
		CustomKey:   "tenant",
		CustomValue: "blog",
	})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	app.Use(requestid.New())
	app.Use(apphttp.RequestLogger(log))
	app.Use(recover.New())
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC:      usecase.NewCategoryUseCase(env.categories),
		CategoryPostsUC: usecase.NewCategoryPostsUseCase(env.categories, env.posts),
		PostUC:          usecase.NewPostUseCase(env.posts),
		UserUC:          usecase.NewUserUseCase(env.users, bcrypt.MinCost),
		AuthUC:          auth.NewAuthUseCase(env.users, env.tokens),
		Logger:          log,
	})
	env.app = app
	return env
}

// envelope forma del cuerpo de todas las respuestas /v1.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []string        `json:"errors"`
}

func (e *testEnv) do(t *testing.T, method, path, body string, headers ...string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}
