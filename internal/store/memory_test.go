package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogql/backend/internal/models"
)

func newUser(id, username string) *models.User {
	return &models.User{
		ID:       id,
		Username: username,
		Email:    username + "@example.com",
	}
}

func newComment(id, postID string, parentID *string) *models.Comment {
	return &models.Comment{ID: id, PostID: postID, ParentCommentID: parentID}
}

func TestUserLookups(t *testing.T) {
	s := NewMemoryStore()
	s.InsertUser(newUser("u1", "alice"))
	s.InsertUser(newUser("u2", "bob"))

	u, ok := s.UserByID("u1")
	require.True(t, ok)
	assert.Equal(t, "alice", u.Username)

	_, ok = s.UserByID("nope")
	assert.False(t, ok)

	u, ok = s.UserByEmail("bob@example.com")
	require.True(t, ok)
	assert.Equal(t, "u2", u.ID)

	tests := []struct {
		name     string
		email    string
		username string
		want     bool
	}{
		{"email collision", "alice@example.com", "someone", true},
		{"username collision", "new@example.com", "bob", true},
		{"both free", "new@example.com", "carol", false},
		{"empty args match nothing", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := s.UserByEmailOrUsername(tt.email, tt.username)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestPostsInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	for _, id := range []string{"p1", "p2", "p3"} {
		s.InsertPost(&models.Post{ID: id, AuthorID: "u1", Slug: "slug-" + id})
	}

	posts := s.Posts()
	require.Len(t, posts, 3)
	assert.Equal(t, "p1", posts[0].ID)
	assert.Equal(t, "p2", posts[1].ID)
	assert.Equal(t, "p3", posts[2].ID)

	p, ok := s.PostBySlug("slug-p2")
	require.True(t, ok)
	assert.Equal(t, "p2", p.ID)

	byAuthor := s.PostsByAuthor("u1")
	assert.Len(t, byAuthor, 3)
}

func TestRemovePost(t *testing.T) {
	s := NewMemoryStore()
	s.InsertPost(&models.Post{ID: "p1"})
	s.InsertPost(&models.Post{ID: "p2"})

	assert.True(t, s.RemovePost("p1"))
	assert.False(t, s.RemovePost("p1"))

	_, ok := s.PostByID("p1")
	assert.False(t, ok)
	assert.Len(t, s.Posts(), 1)
}

func TestUpdateStampsUpdatedAt(t *testing.T) {
	s := NewMemoryStore()
	u := newUser("u1", "alice")
	s.InsertUser(u)

	before := u.UpdatedAt
	s.UpdateUser(u)
	assert.True(t, u.UpdatedAt.After(before))
}

func TestCollectThread(t *testing.T) {
	s := NewMemoryStore()
	// c1 -> c2 -> c4, c1 -> c3, c5 standalone
	c1 := "c1"
	c2 := "c2"
	s.InsertComment(newComment("c1", "p1", nil))
	s.InsertComment(newComment("c2", "p1", &c1))
	s.InsertComment(newComment("c3", "p1", &c1))
	s.InsertComment(newComment("c4", "p1", &c2))
	s.InsertComment(newComment("c5", "p1", nil))

	thread := s.CollectThread("c1")
	assert.ElementsMatch(t, []string{"c1", "c2", "c3", "c4"}, thread)

	// Collection alone must not remove anything.
	assert.Len(t, s.Comments(), 5)

	removed := s.RemoveComments(thread)
	assert.Equal(t, 4, removed)

	remaining := s.Comments()
	require.Len(t, remaining, 1)
	assert.Equal(t, "c5", remaining[0].ID)

	// No surviving comment may point at a removed parent.
	for _, c := range remaining {
		if c.ParentCommentID != nil {
			_, ok := s.CommentByID(*c.ParentCommentID)
			assert.True(t, ok)
		}
	}
}

func TestCollectThreadLeaf(t *testing.T) {
	s := NewMemoryStore()
	s.InsertComment(newComment("c1", "p1", nil))

	assert.Equal(t, []string{"c1"}, s.CollectThread("c1"))
}

func TestRepliesTo(t *testing.T) {
	s := NewMemoryStore()
	c1 := "c1"
	s.InsertComment(newComment("c1", "p1", nil))
	s.InsertComment(newComment("c2", "p1", &c1))
	s.InsertComment(newComment("c3", "p1", &c1))

	replies := s.RepliesTo("c1")
	require.Len(t, replies, 2)
	assert.Equal(t, "c2", replies[0].ID)
	assert.Equal(t, "c3", replies[1].ID)

	assert.Empty(t, s.RepliesTo("c2"))
}

func TestCommentsByPostAndAuthor(t *testing.T) {
	s := NewMemoryStore()
	s.InsertComment(&models.Comment{ID: "c1", PostID: "p1", AuthorID: "u1"})
	s.InsertComment(&models.Comment{ID: "c2", PostID: "p2", AuthorID: "u1"})
	s.InsertComment(&models.Comment{ID: "c3", PostID: "p1", AuthorID: "u2"})

	assert.Len(t, s.CommentsByPost("p1"), 2)
	assert.Len(t, s.CommentsByAuthor("u1"), 2)
	assert.Empty(t, s.CommentsByPost("p9"))
}

func TestSeed(t *testing.T) {
	s := NewMemoryStore()
	s.Seed()

	assert.Len(t, s.Users(), 3)
	assert.Len(t, s.Posts(), 4)
	assert.Len(t, s.Comments(), 3)

	published := 0
	for _, p := range s.Posts() {
		if p.Published {
			published++
		}
	}
	assert.Equal(t, 3, published)

	_, ok := s.UserByEmail("john@example.com")
	assert.True(t, ok)
}
