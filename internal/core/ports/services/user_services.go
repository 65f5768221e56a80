package services

import (
	"context"

	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/awtech/cashdesk/internal/dto"
)

// UserSvcFacade manages user records.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// AuthSvcFacade handles registration and credential-based login.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Login returns a signed JWT for valid credentials, ErrUnauthorized otherwise.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
