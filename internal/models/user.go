package models

import "time"

// User is an account record. Username and email are unique across all users.
// Followers and Following are mirror relations: an id in A.Following implies
// A's id is in that user's Followers.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string // bcrypt hash, never exposed through the schema
	FirstName *string
	LastName  *string
	Avatar    *string
	Bio       *string
	Followers []string // ids of users following this user
	Following []string // ids of users this user follows
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFollowing reports whether the user already follows the target.
func (u *User) IsFollowing(targetID string) bool {
	for _, id := range u.Following {
		if id == targetID {
			return true
		}
	}
	return false
}
