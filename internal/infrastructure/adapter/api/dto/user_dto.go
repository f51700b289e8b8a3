package dto

// RegisterRequest is the body of POST /api/user/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/user/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserView is the public part of a user
type UserView struct {
	Name string `json:"name"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}

// CreditsResponse is returned by the credits endpoint
type CreditsResponse struct {
	Success bool     `json:"success"`
	Credits int64    `json:"credits"`
	User    UserView `json:"user"`
}
