package services

import (
	"context"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	"github.com/eggkhata/egg_khata_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a local user with a bcrypt password hash.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// UpdateUser updates an existing user's profile details.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// UpdateUserRefreshToken stores the hashed refresh token for the user.
	UpdateUserRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error

	// ClearUserRefreshToken removes the stored refresh token (logout).
	ClearUserRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc defines credential verification operations
type UserAuthSvc interface {
	// AuthenticateUser verifies a local username/password pair.
	AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error)

	// FindOrCreateGoogleUser looks up the user linked to a Google account,
	// creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
// This is a facade for clients that need access to all operations
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
