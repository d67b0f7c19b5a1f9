package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AccountUsecase registers users and issues access tokens.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput defines the credentials for login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// AuthResult carries the user and a fresh access token.
type AuthResult struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
}
