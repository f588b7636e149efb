package store

import (
	"sync"
	"time"

	"github.com/blogql/backend/internal/models"
)

// MemoryStore keeps all records in process memory. State lives only for the
// lifetime of the process and resets on restart.
//
// The RWMutex guards the collections and indexes only. Records are shared
// pointers whose fields callers mutate in place before calling Update; that
// relies on the effectively serialized request model, not on this lock.
type MemoryStore struct {
	mu sync.RWMutex

	users   []*models.User
	userIDs map[string]*models.User

	posts   []*models.Post
	postIDs map[string]*models.Post

	comments   []*models.Comment
	commentIDs map[string]*models.Comment

	// parent comment id -> child comment ids, maintained on insert/remove so
	// thread collection never rescans the whole collection.
	childIDs map[string][]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		userIDs:    make(map[string]*models.User),
		postIDs:    make(map[string]*models.Post),
		commentIDs: make(map[string]*models.Comment),
		childIDs:   make(map[string][]string),
	}
}

// Users returns all users in insertion order.
func (s *MemoryStore) Users() []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *MemoryStore) UserByID(id string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.userIDs[id]
	return u, ok
}

func (s *MemoryStore) UserByEmail(email string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}

// UserByEmailOrUsername finds a user matching either field. An empty string
// matches nothing, so callers can probe one field at a time. Registration
// treats a collision on either as the same conflict.
func (s *MemoryStore) UserByEmailOrUsername(email, username string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if (email != "" && u.Email == email) || (username != "" && u.Username == username) {
			return u, true
		}
	}
	return nil, false
}

func (s *MemoryStore) InsertUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
	s.userIDs[u.ID] = u
}

func (s *MemoryStore) UpdateUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.UpdatedAt = time.Now()
}

// Posts returns all posts in insertion order.
func (s *MemoryStore) Posts() []*models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *MemoryStore) PostByID(id string) (*models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.postIDs[id]
	return p, ok
}

// PostBySlug returns the first post carrying the slug. Slugs are derived from
// titles and are not guaranteed unique.
func (s *MemoryStore) PostBySlug(slug string) (*models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return nil, false
}

func (s *MemoryStore) PostsByAuthor(authorID string) []*models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Post
	for _, p := range s.posts {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out
}

func (s *MemoryStore) InsertPost(p *models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, p)
	s.postIDs[p.ID] = p
}

func (s *MemoryStore) UpdatePost(p *models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.UpdatedAt = time.Now()
}

// RemovePost deletes a post. Its comments are left in place, matching the
// delete semantics of the API (comments are removed only through
// deleteComment).
func (s *MemoryStore) RemovePost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.postIDs[id]; !ok {
		return false
	}
	delete(s.postIDs, id)
	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			break
		}
	}
	return true
}

// Comments returns all comments in insertion order.
func (s *MemoryStore) Comments() []*models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Comment, len(s.comments))
	copy(out, s.comments)
	return out
}

func (s *MemoryStore) CommentByID(id string) (*models.Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.commentIDs[id]
	return c, ok
}

func (s *MemoryStore) CommentsByPost(postID string) []*models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out
}

func (s *MemoryStore) CommentsByAuthor(authorID string) []*models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Comment
	for _, c := range s.comments {
		if c.AuthorID == authorID {
			out = append(out, c)
		}
	}
	return out
}

func (s *MemoryStore) RepliesTo(parentID string) []*models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.childIDs[parentID]
	out := make([]*models.Comment, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.commentIDs[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (s *MemoryStore) InsertComment(c *models.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments = append(s.comments, c)
	s.commentIDs[c.ID] = c
	if c.ParentCommentID != nil {
		parent := *c.ParentCommentID
		s.childIDs[parent] = append(s.childIDs[parent], c.ID)
	}
}

func (s *MemoryStore) UpdateComment(c *models.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.UpdatedAt = time.Now()
}

// CollectThread walks the reply index with an explicit worklist, bounding the
// traversal regardless of thread depth. The returned slice starts with the
// target id and is purely a read.
func (s *MemoryStore) CollectThread(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	collected := []string{id}
	work := []string{id}
	for len(work) > 0 {
		current := work[len(work)-1]
		work = work[:len(work)-1]
		for _, child := range s.childIDs[current] {
			collected = append(collected, child)
			work = append(work, child)
		}
	}
	return collected
}

// RemoveComments deletes every listed comment and drops them from the reply
// index. It returns the number of comments actually removed.
func (s *MemoryStore) RemoveComments(ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[string]bool, len(ids))
	removed := 0
	for _, id := range ids {
		c, ok := s.commentIDs[id]
		if !ok {
			continue
		}
		drop[id] = true
		removed++
		delete(s.commentIDs, id)
		delete(s.childIDs, id)
		if c.ParentCommentID != nil {
			parent := *c.ParentCommentID
			children := s.childIDs[parent]
			for i, child := range children {
				if child == id {
					s.childIDs[parent] = append(children[:i], children[i+1:]...)
					break
				}
			}
		}
	}
	if removed == 0 {
		return 0
	}

	kept := s.comments[:0]
	for _, c := range s.comments {
		if !drop[c.ID] {
			kept = append(kept, c)
		}
	}
	s.comments = kept
	return removed
}
