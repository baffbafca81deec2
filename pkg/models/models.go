package models

import (
	"time"

	"github.com/google/uuid"
)

/* =============================== Enums ================================== */

// Role defines the type of user in the system.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

/* ============================== Payloads ================================ */

// Payload accepted by POST /
type NamePayload struct {
	Name string `json:"name" validate:"required"`
}

// Address is nested inside CreateUserRequest.
type Address struct {
	Street  string `json:"street" validate:"required,notblank"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required,iso3166_1_alpha2"`
}

// Payload accepted by POST /users
type CreateUserRequest struct {
	Name    string   `json:"name" validate:"required,min=2,max=80"`
	Email   string   `json:"email" validate:"required,email,max=120"`
	Role    Role     `json:"role" validate:"required,oneof=admin member"`
	Tags    []string `json:"tags" validate:"omitempty,max=5,dive,required,max=20"`
	Address *Address `json:"address" validate:"omitempty"`
}

// UserResponse is returned after a user payload has been accepted.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Tags      []string  `json:"tags,omitempty"`
	Address   *Address  `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
