package models

import "time"

// Comment belongs to a post and optionally to a parent comment, forming a
// forest per post. Deleting a comment removes its whole descendant subtree.
type Comment struct {
	ID              string
	Content         string
	AuthorID        string
	PostID          string
	ParentCommentID *string // nil for top-level comments
	Likes           []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasLike reports whether the user already liked the comment.
func (c *Comment) HasLike(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
