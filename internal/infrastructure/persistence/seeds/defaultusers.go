package seeds

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"fixit/internal/domain/user"
)

//go:embed defaultusers.yaml
var defaultUsersYAML []byte

type defaultUsersFile struct {
	Users []struct {
		Name string `yaml:"name"`
		Role string `yaml:"role"`
	} `yaml:"users"`
}

// DefaultUsers builds fresh user entities from the embedded bootstrap list.
func DefaultUsers() ([]*user.User, error) {
	return parseUsers(defaultUsersYAML)
}

func parseUsers(raw []byte) ([]*user.User, error) {
	var file defaultUsersFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse default users: %w", err)
	}

	users := make([]*user.User, 0, len(file.Users))
	for _, u := range file.Users {
		role, err := user.NewRole(u.Role)
		if err != nil {
			return nil, fmt.Errorf("default user %q: %w", u.Name, err)
		}
		created, err := user.NewUser(u.Name, role)
		if err != nil {
			return nil, fmt.Errorf("default user %q: %w", u.Name, err)
		}
		users = append(users, created)
	}
	return users, nil
}
