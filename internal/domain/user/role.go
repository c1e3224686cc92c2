package user

import "fmt"

// Role gates which operations a user may perform.
type Role string

const (
	RoleManager Role = "MANAGER"
	RoleWorker  Role = "WORKER"
)

var validRoles = map[Role]bool{
	RoleManager: true,
	RoleWorker:  true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsManager() bool {
	return r == RoleManager
}

func (r Role) IsWorker() bool {
	return r == RoleWorker
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
