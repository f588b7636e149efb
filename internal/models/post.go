package models

import "time"

// Post is a blog post. Only the author may mutate or delete it, and an
// unpublished post is invisible to every read path except the author's own
// lookups.
type Post struct {
	ID        string
	Title     string
	Content   string
	Excerpt   string
	Slug      string // derived from the title, used for lookup
	AuthorID  string
	Tags      []string
	Published bool
	Likes     []string // ids of users who liked the post, no duplicates
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasLike reports whether the user already liked the post.
func (p *Post) HasLike(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
