package models

// LoginRequest запрос логина
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest запрос регистрации
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse профиль пользователя
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthResponse ответ логина/регистрации
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
