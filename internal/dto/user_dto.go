package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateUserRequest mirrors RegisterRequest but is used on the admin-only
// user management surface.
type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Username string `json:"username" validate:"required,min=1,max=150"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin cashier"`
}

type UpdateUserRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"omitempty,min=4"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin cashier"`
}
