package auth

import "eventoz/models"

// RegisterRequest carries a new account signup.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
	Location string `json:"location,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// AuthService handles account creation and token-based sign in.
type AuthService interface {
	Register(req RegisterRequest) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	Logout(token string) error
}
