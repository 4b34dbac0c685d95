package persistence

import (
	"context"

	"github.com/votequest/coin-service/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data.
// The cached coin balance lives on the user row; mutations must happen
// inside a unit of work together with the matching ledger insert.
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIDForUpdate retrieves a user by ID holding a row-level exclusive
	// lock for the remainder of the surrounding store transaction. This is
	// what serializes concurrent balance mutations per user.
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrUserLocked: If the lock cannot be acquired in time
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If user with same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// UpdateBalance persists the user's cached balance, updated-at timestamp
	// and transaction count
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateBalance(ctx context.Context, user *entity.User) error

	// ListIDs returns up to limit user IDs strictly greater than afterID in
	// ascending order. Used by the scanner for keyset pagination over the
	// whole user population.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListIDs(ctx context.Context, afterID uint64, limit int) ([]uint64, error)
}
