package issue

import "fixit/internal/domain/user"

// Actor identifies who performs an operation. It is passed explicitly to every mutation.
type Actor struct {
	UserID string
	Role   user.Role
}

// ActorFromUser builds an Actor for u.
func ActorFromUser(u *user.User) Actor {
	return Actor{UserID: u.ID(), Role: u.Role()}
}

func (a Actor) IsManager() bool {
	return a.Role.IsManager()
}

func (a Actor) IsWorker() bool {
	return a.Role.IsWorker()
}
