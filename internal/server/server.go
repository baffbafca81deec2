package server

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/aldoetobex/fiber-validation-errors/internal/config"
	"github.com/aldoetobex/fiber-validation-errors/internal/users"
	"github.com/aldoetobex/fiber-validation-errors/pkg/errorhandler"
	"github.com/aldoetobex/fiber-validation-errors/pkg/models"
	"github.com/aldoetobex/fiber-validation-errors/pkg/validation"
)

// New builds the demo app. mw overrides the middleware config derived from cfg.
func New(cfg config.Config, mw ...errorhandler.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
	})

	if len(mw) == 0 {
		mw = []errorhandler.Config{middlewareConfig(cfg)}
	}
	app.Use(errorhandler.New(mw...))

	app.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	app.Post("/", func(c *fiber.Ctx) error {
		var in models.NamePayload
		if err := validation.Bind(c, &in); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})

	userH := users.NewHandler()
	app.Post("/users", userH.Create)

	return app
}

func middlewareConfig(cfg config.Config) errorhandler.Config {
	switch cfg.ValidationLog {
	case config.LogStderr:
		return errorhandler.Config{Log: errorhandler.LogDefault()}
	case config.LogSlog:
		l := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		return errorhandler.Config{Log: errorhandler.LogWith(errorhandler.SlogLogger(l))}
	default:
		return errorhandler.ConfigDefault
	}
}
