package driven

import (
	"context"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
)

// UserStore handles user persistence (PostgreSQL)
type UserStore interface {
	// Create persists a new user; domain.ErrAlreadyExists on duplicate email
	Create(ctx context.Context, user *domain.User) error

	// Get retrieves a user by ID
	Get(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateLastLogin records a successful login time
	UpdateLastLogin(ctx context.Context, id string) error

	// Count returns the total user count
	Count(ctx context.Context) (int, error)
}
