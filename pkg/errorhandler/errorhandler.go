// Package errorhandler turns validation errors returned further down a Fiber
// handler chain into 400 Bad Request responses.
//
// Register it before the routes it should cover:
//
//	app.Use(errorhandler.New(errorhandler.Config{Log: errorhandler.LogDefault()}))
//
// Handlers report bad input by returning a *validation.ValidationError
// (possibly wrapped) or raw validator.ValidationErrors. Every other error is
// returned unchanged so the app's ErrorHandler still sees it. A panicking
// Logger or ResponseTransformer is not recovered here.
package errorhandler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aldoetobex/fiber-validation-errors/pkg/validation"
)

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)
	logFn := cfg.resolve()
	transform := cfg.TransformResponse

	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		verr, ok := validation.As(err)
		if !ok {
			// not ours
			return err
		}

		logFn(verr, c)
		return respond(c, transform(verr, c))
	}
}

// respond replaces whatever downstream wrote with the 400 body.
func respond(c *fiber.Ctx, body any) error {
	c.Response().ResetBody()
	c.Response().Header.Del(fiber.HeaderContentType)
	c.Status(fiber.StatusBadRequest)

	switch b := body.(type) {
	case nil:
		return nil
	case string:
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(b)
	case []byte:
		c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
		return c.Send(b)
	default:
		return c.JSON(b)
	}
}
