package users

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/aldoetobex/fiber-validation-errors/pkg/models"
	"github.com/aldoetobex/fiber-validation-errors/pkg/validation"
)

/* ============================== Handler ================================= */

// Handler accepts user payloads. Nothing is stored.
type Handler struct {
	now func() time.Time
}

func NewHandler() *Handler { return &Handler{now: time.Now} }

/* =============================== Create ================================= */

// @Summary      Create user
// @Description  Validate a user payload and echo it back with a fresh ID
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  models.CreateUserRequest  true  "User payload"
// @Success      201      {object}  models.UserResponse
// @Failure      400      {object}  models.BadRequestResponse
// @Router       /users [post]
func (h *Handler) Create(c *fiber.Ctx) error {
	var in models.CreateUserRequest

	if err := validation.Parse(c, &in); err != nil {
		return err
	}

	// Normalize before validating so " A@B.COM " is accepted
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)

	// Failures are returned as-is; the errorhandler middleware renders them
	if err := validation.Validate(&in); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(models.UserResponse{
		ID:        uuid.New(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Tags:      in.Tags,
		Address:   in.Address,
		CreatedAt: h.now(),
	})
}
