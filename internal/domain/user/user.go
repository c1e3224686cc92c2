package user

import (
	"fmt"
	"strings"
	"time"

	"fixit/internal/shared/biztime"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/id"
	"fixit/internal/shared/validation"
)

// User is immutable once created; identity is its id.
type User struct {
	id        string
	name      string
	role      Role
	createdAt time.Time
}

// NewUser creates a user with a fresh id. The name is trimmed and validated first.
func NewUser(name string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if msg := validation.WorkerNameError(name); msg != "" {
		return nil, errors.NewValidationError(msg)
	}
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role", string(role))
	}

	return &User{
		id:        id.New(id.PrefixUser),
		name:      name,
		role:      role,
		createdAt: biztime.NowUTC().Truncate(time.Millisecond),
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(userID, name string, role Role, createdAt time.Time) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:        userID,
		name:      name,
		role:      role,
		createdAt: createdAt,
	}, nil
}

func (u *User) ID() string {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) IsManager() bool {
	return u.role.IsManager()
}

func (u *User) IsWorker() bool {
	return u.role.IsWorker()
}
