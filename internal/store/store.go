package store

import "github.com/blogql/backend/internal/models"

// Store is the single source of truth for all records. Scans return records
// in insertion order; point lookups are keyed by id. Records are shared
// pointers: callers mutate them in place and call the matching Update method
// to stamp UpdatedAt (and, for a persistent implementation, write back).
type Store interface {
	// Users
	Users() []*models.User
	UserByID(id string) (*models.User, bool)
	UserByEmail(email string) (*models.User, bool)
	UserByEmailOrUsername(email, username string) (*models.User, bool)
	InsertUser(u *models.User)
	UpdateUser(u *models.User)

	// Posts
	Posts() []*models.Post
	PostByID(id string) (*models.Post, bool)
	PostBySlug(slug string) (*models.Post, bool)
	PostsByAuthor(authorID string) []*models.Post
	InsertPost(p *models.Post)
	UpdatePost(p *models.Post)
	RemovePost(id string) bool

	// Comments
	Comments() []*models.Comment
	CommentByID(id string) (*models.Comment, bool)
	CommentsByPost(postID string) []*models.Comment
	CommentsByAuthor(authorID string) []*models.Comment
	RepliesTo(parentID string) []*models.Comment
	InsertComment(c *models.Comment)
	UpdateComment(c *models.Comment)

	// CollectThread returns the comment id plus every id transitively
	// reachable through ParentCommentID. Collection is read-only; removal is
	// a separate step so a delete never applies partially.
	CollectThread(id string) []string
	RemoveComments(ids []string) int
}
