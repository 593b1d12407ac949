package dto

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// SessionResponse describes the caller of an authenticated request.
type SessionResponse struct {
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}
