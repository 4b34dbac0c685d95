package persistence

import "context"

// MedalRepository tracks per-user medal inventory for the store and gifting
// flows. Inventory counts are separate from the coin ledger; only the coin
// side of a purchase or gift is receipted.
type MedalRepository interface {
	// Count returns how many of the named medal the user owns
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Count(ctx context.Context, userID uint64, medalName string) (int, error)

	// Grant adds one of the named medal to the user's inventory
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Grant(ctx context.Context, userID uint64, medalName string) error

	// Consume removes one of the named medal from the user's inventory
	//
	// Possible errors:
	// - ErrMedalNotOwned: If the user owns none of the medal
	// - ErrDatabaseConnection: If database connection fails
	Consume(ctx context.Context, userID uint64, medalName string) error
}
