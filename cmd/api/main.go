package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/blog-api/internal/application/auth"
	"github.com/jhoicas/blog-api/internal/application/usecase"
	"github.com/jhoicas/blog-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/blog-api/internal/interfaces/http"
	"github.com/jhoicas/blog-api/pkg/config"
	"github.com/jhoicas/blog-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	defer log.Close()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	postRepo := postgres.NewPostRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret:         cfg.JWT.Secret,
		Lifetime:       cfg.JWT.Lifetime(),
		Name:           cfg.JWT.ClaimName,
		Role:           cfg.JWT.ClaimRole,
		CustomKey:      cfg.JWT.CustomKey,
		CustomValue:    cfg.JWT.CustomValue,
		ClaimsFromUser: cfg.JWT.ClaimsFromUser,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("emisor de tokens")
	}

	zl := log.Zerolog()
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(zl),
	})
	// El logger va antes de recover para registrar también las peticiones con panic.
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(zl))
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerPath != "" {
		if _, err := os.Stat(cfg.HTTP.SwaggerPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.SwaggerPath,
				Path:     "docs",
				Title:    "Blog API",
			}))
		} else {
			log.Warn().Str("path", cfg.HTTP.SwaggerPath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:      usecase.NewCategoryUseCase(categoryRepo),
		CategoryPostsUC: usecase.NewCategoryPostsUseCase(categoryRepo, postRepo),
		PostUC:          usecase.NewPostUseCase(postRepo),
		UserUC:          usecase.NewUserUseCase(userRepo, 0),
		AuthUC:          auth.NewAuthUseCase(userRepo, tokens),
		Logger:          zl,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
