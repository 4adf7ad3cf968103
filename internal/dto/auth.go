package dto

// RegisterRequest is the registration form payload. Field-level validation
// happens in the auth service so every failing field is reported at once.
type RegisterRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest carries the credentials for authentication.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}
