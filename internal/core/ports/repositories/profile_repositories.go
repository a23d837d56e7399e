package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/remittance_app/internal/core/domain"
)

// ProfileReader defines read operations for profiles
type ProfileReader interface {
	// FindProfileByID returns apperrors.ErrNotFound when the id is unknown.
	FindProfileByID(ctx context.Context, userID string) (*domain.Profile, error)

	FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error)

	FindProfileByPhone(ctx context.Context, phone string) (*domain.Profile, error)

	// ListProfiles retrieves a paginated list of profiles ordered by name.
	ListProfiles(ctx context.Context, limit int, offset int) ([]domain.Profile, error)
}

// ProfileWriter defines write operations for profiles
type ProfileWriter interface {
	// SaveProfile persists a new profile. Returns apperrors.ErrDuplicate when
	// the email or phone is taken.
	SaveProfile(ctx context.Context, profile domain.Profile) error

	// UpdateProfile updates name, client code and role.
	UpdateProfile(ctx context.Context, profile domain.Profile) error

	UpdateProfileRole(ctx context.Context, userID string, role domain.Role, updatedAt time.Time, updatedBy string) error

	UpdatePasswordHash(ctx context.Context, userID, passwordHash string, updatedAt time.Time) error
}

// ProfileRepositoryFacade combines all profile repository interfaces
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
