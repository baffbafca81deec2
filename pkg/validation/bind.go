package validation

import "github.com/gofiber/fiber/v2"

// Parse decodes the request body into out. An empty body leaves out
// untouched; a body that cannot be decoded is reported as a root issue.
func Parse(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return NewError(Issue{Path: []any{}, Message: "Invalid request body"})
	}
	return nil
}

// Bind is Parse followed by Validate.
func Bind(c *fiber.Ctx, out any) error {
	if err := Parse(c, out); err != nil {
		return err
	}
	return Validate(out)
}
