package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/blog-api/internal/application/auth"
	"github.com/jhoicas/blog-api/internal/application/dto"
	"github.com/jhoicas/blog-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC      *usecase.CategoryUseCase
	CategoryPostsUC *usecase.CategoryPostsUseCase
	PostUC          *usecase.PostUseCase
	UserUC          *usecase.UserUseCase
	AuthUC          *auth.AuthUseCase
	Logger          zerolog.Logger
}

// Router registra las rutas de la API. Debe llamarse después de montar cualquier
// otro middleware (swagger, health): termina con el fallback ERR-07.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/v1")

	// Accounts (login público, /me requiere Bearer Token)
	accounts := v1.Group("/accounts")
	authHandler := NewAuthHandler(deps.AuthUC, log)
	accounts.Post("/login", authHandler.Login)
	accounts.Get("/me", AuthMiddleware(deps.AuthUC.Tokens(), log), authHandler.Me)

	// Categories
	categories := v1.Group("/categories")
	categoryPosts := NewCategoryPostsHandler(deps.CategoryPostsUC, log)
	categories.Get(idRoute+"/posts", categoryPosts.List)
	NewResourceHandler[dto.EditorCategoryRequest, dto.EditorCategoryRequest, dto.CategoryResponse](deps.CategoryUC, "/v1/categories", log).Mount(categories)

	// Posts
	NewResourceHandler[dto.EditorPostRequest, dto.EditorPostRequest, dto.PostResponse](deps.PostUC, "/v1/posts", log).Mount(v1.Group("/posts"))

	// Users
	NewResourceHandler[dto.CreateUserRequest, dto.UpdateUserRequest, dto.UserResponse](deps.UserUC, "/v1/users", log).Mount(v1.Group("/users"))

	app.Use(NotFound(log))
}
