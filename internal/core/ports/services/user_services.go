package services

import (
	"context"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/SscSPs/remittance_app/internal/dto"
)

// UserReaderSvc defines read operations for profiles
type UserReaderSvc interface {
	// GetProfile retrieves a profile by ID.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)

	// ListUsers lists profiles, for operators only.
	ListUsers(ctx context.Context, operatorID string, params dto.ListUsersParams) ([]domain.Profile, error)
}

// UserWriterSvc defines write operations for profiles
type UserWriterSvc interface {
	// Register creates a customer profile.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Profile, error)

	// CreateUser creates a profile on behalf of someone, for operators only.
	CreateUser(ctx context.Context, operatorID string, req dto.CreateUserRequest) (*domain.Profile, error)

	// UpdateUser updates an existing profile, for operators only.
	UpdateUser(ctx context.Context, operatorID, userID string, req dto.UpdateUserRequest) (*domain.Profile, error)

	// SetRole promotes or demotes a profile, for operators only.
	SetRole(ctx context.Context, operatorID, userID string, role domain.Role) (*domain.Profile, error)

	// ChangePassword replaces the caller's password after checking the current one.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser checks credentials given as email or phone number.
	AuthenticateUser(ctx context.Context, identifier, password string) (*domain.Profile, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
