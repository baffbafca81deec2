// pkg/models/api.go
package models

// Default 400 body for validation failures
type BadRequestResponse struct {
	Error  string            `json:"error" example:"Bad Request"`
	Detail map[string]string `json:"detail"`
}

// Generic error body (401/403/404/500)
type ErrorResponse struct {
	Error   bool   `json:"error" example:"true"`
	Message string `json:"message" example:"Forbidden"`
	Code    string `json:"code,omitempty" example:"FORBIDDEN"`
}
