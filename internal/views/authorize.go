package views

import "protrain-backend-go/internal/models"

// Decision is the outcome of an authorization check.
type Decision int

const (
	Denied Decision = iota
	Allowed
)

func (d Decision) String() string {
	if d == Allowed {
		return "allowed"
	}
	return "denied"
}

// Authorize decides whether user may be shown target. Without a session
// user only LoggedOut is reachable.
func Authorize(user *models.User, target View) Decision {
	if target == LoggedOut {
		return Allowed
	}
	if user == nil {
		return Denied
	}
	switch target {
	case Moderation, List:
		if user.Role == models.RoleTrainer {
			return Allowed
		}
		return Denied
	case Info, Feed, Attendance, Detail, About:
		return Allowed
	}
	return Denied
}

func isTrainer(user *models.User) bool {
	return user != nil && user.Role == models.RoleTrainer
}
