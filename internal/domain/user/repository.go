package user

import "context"

// Repository defines the persistence operations for users
type Repository interface {
	Create(ctx context.Context, user *User) error

	// GetByID returns nil, nil when no user has the id.
	GetByID(ctx context.Context, id string) (*User, error)

	// List returns all users ordered by name.
	List(ctx context.Context) ([]*User, error)

	// ListWorkers returns users with role WORKER ordered by name.
	ListWorkers(ctx context.Context) ([]*User, error)

	Count(ctx context.Context) (int64, error)

	// SeedDefaultUsers inserts users only when the users table is empty and returns how many
	// were inserted.
	SeedDefaultUsers(ctx context.Context, users []*User) (int, error)
}
