package errorhandler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aldoetobex/fiber-validation-errors/pkg/models"
	"github.com/aldoetobex/fiber-validation-errors/pkg/validation"
)

// DefaultTransformer renders {"error": "Bad Request", "detail": {...}}.
func DefaultTransformer(err *validation.ValidationError, _ *fiber.Ctx) any {
	return models.BadRequestResponse{
		Error:  "Bad Request",
		Detail: Detail(err),
	}
}

// Detail maps each issue's dotted path to its message. Later issues win on
// duplicate paths.
func Detail(err *validation.ValidationError) map[string]string {
	out := make(map[string]string, len(err.Issues))
	for _, is := range err.Issues {
		out[is.Key()] = is.Message
	}
	return out
}
