// internal/transport/dto/admin_dto.go
package dto

// LoginRequest defines the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginPayload is returned on successful login.
type LoginPayload struct {
	Email string `json:"email"`
}
