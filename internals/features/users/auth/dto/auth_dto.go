package dto

type RegisterRequest struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=50"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
}

type LoginRequest struct {
	UserName     string `json:"user_name" validate:"required"`
	UserPassword string `json:"user_password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      uint   `json:"user_id"`
	UserName    string `json:"user_name"`
}
