package roster

import (
	"strings"
)

// User is one known player of a chat roster.
type User struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// FullName is the display name: first and last name when present, the
// username otherwise.
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// Store keeps the per-chat player rosters. AddUser reports whether the
// user was new to the chat.
type Store interface {
	AddUser(chatID int64, user User) (bool, error)
	GetUsers(chatID int64) ([]User, error)
}
