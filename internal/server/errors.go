package server

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/aldoetobex/fiber-validation-errors/pkg/models"
)

/* =========================== Error Formatting =========================== */

// httpCodeToString turns a status code into a short, stable string derived
// from its reason phrase, e.g. 404 -> "NOT_FOUND".
func httpCodeToString(code int) string {
	msg := utils.StatusMessage(code)
	if msg == "" {
		return "INTERNAL_SERVER_ERROR"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ' || r == '-':
			return '_'
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToUpper(r)
		}
		return -1
	}, msg)
}

// ErrorHandler is the global Fiber error handler. It only sees errors the
// validation middleware passed through.
func ErrorHandler(c *fiber.Ctx, err error) error {
	// Defaults
	code := fiber.StatusInternalServerError
	msg := fiber.ErrInternalServerError.Message

	// Fiber errors carry status codes
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if strings.TrimSpace(fe.Message) != "" {
			msg = fe.Message
		}
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Code:    httpCodeToString(code),
		Error:   true,
		Message: msg,
	})
}
