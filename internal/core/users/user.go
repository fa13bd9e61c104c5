package users

import (
	"errors"
	"time"
)

// ErrUserNotFound is returned when a user id has no profile row
var ErrUserNotFound = errors.New("user not found")

// User is the public profile projection of an identity owned by the
// external authentication system. This core only reads these rows to
// join author fields onto posts; it never authenticates anyone.
type User struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
	ID             string    `json:"id" db:"id"`
	Username       string    `json:"username" db:"username"`
	ProfilePicture string    `json:"profilePicture" db:"profile_picture"`
}
