package errorhandler

import (
	"io"
	"log"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/aldoetobex/fiber-validation-errors/pkg/validation"
)

func newDefaultLogger(w io.Writer) Logger {
	l := log.New(w, "", 0)
	return func(err *validation.ValidationError, c *fiber.Ctx) {
		l.Printf("%s %s: %s", c.Method(), c.OriginalURL(), err.Error())
	}
}

// SlogLogger logs handled validation errors as structured WARN records.
func SlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return func(err *validation.ValidationError, c *fiber.Ctx) {
		l.WarnContext(c.UserContext(), "validation failed",
			slog.String("method", c.Method()),
			slog.String("url", c.OriginalURL()),
			slog.Any("issues", Detail(err)),
		)
	}
}
