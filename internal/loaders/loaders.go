package loaders

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/blogql/backend/internal/models"
	"github.com/blogql/backend/internal/store"
)

// Loaders is the per-request batching layer. One set is created fresh for
// every incoming operation and discarded with it; the caches must never
// outlive a single query execution because the store mutates between
// requests.
//
// Each loader coalesces the keys requested during one dispatch window into a
// single batch against the store and caches the per-key result, so repeated
// lookups of the same key within an operation never rescan the store.
type Loaders struct {
	UserByID         *dataloader.Loader[string, *models.User]
	PostByID         *dataloader.Loader[string, *models.Post]
	PostsByAuthor    *dataloader.Loader[string, []*models.Post]
	CommentByID      *dataloader.Loader[string, *models.Comment]
	CommentsByPost   *dataloader.Loader[string, []*models.Comment]
	CommentsByAuthor *dataloader.Loader[string, []*models.Comment]
	RepliesByParent  *dataloader.Loader[string, []*models.Comment]
}

// New builds a loader set over the store.
func New(st store.Store) *Loaders {
	return &Loaders{
		UserByID: dataloader.NewBatchedLoader(func(_ context.Context, ids []string) []*dataloader.Result[*models.User] {
			results := make([]*dataloader.Result[*models.User], len(ids))
			for i, id := range ids {
				u, _ := st.UserByID(id)
				results[i] = &dataloader.Result[*models.User]{Data: u}
			}
			return results
		}),
		PostByID: dataloader.NewBatchedLoader(func(_ context.Context, ids []string) []*dataloader.Result[*models.Post] {
			results := make([]*dataloader.Result[*models.Post], len(ids))
			for i, id := range ids {
				p, _ := st.PostByID(id)
				results[i] = &dataloader.Result[*models.Post]{Data: p}
			}
			return results
		}),
		PostsByAuthor: dataloader.NewBatchedLoader(func(_ context.Context, ids []string) []*dataloader.Result[[]*models.Post] {
			results := make([]*dataloader.Result[[]*models.Post], len(ids))
			for i, id := range ids {
				results[i] = &dataloader.Result[[]*models.Post]{Data: st.PostsByAuthor(id)}
			}
			return results
		}),
		CommentByID: dataloader.NewBatchedLoader(func(_ context.Context, ids []string) []*dataloader.Result[*models.Comment] {
			results := make([]*dataloader.Result[*models.Comment], len(ids))
			for i, id := range ids {
				c, _ := st.CommentByID(id)
				results[i] = &dataloader.Result[*models.Comment]{Data: c}
			}
			return results
		}),
		CommentsByPost: dataloader.NewBatchedLoader(func(_ context.Context, ids []string) []*dataloader.Result[[]*models.Comment] {
			results := make([]*dataloader.Result[[]*models.Comment], len(ids))
			for i, id := range ids {
				results[i] = &dataloader.Result[[]*models.Comment]{Data: st.CommentsByPost(id)}
			}
			return results
		}),
		CommentsByAuthor: dataloader.NewBatchedLoader(func(_ context.Context, ids []string) []*dataloader.Result[[]*models.Comment] {
			results := make([]*dataloader.Result[[]*models.Comment], len(ids))
			for i, id := range ids {
				results[i] = &dataloader.Result[[]*models.Comment]{Data: st.CommentsByAuthor(id)}
			}
			return results
		}),
		RepliesByParent: dataloader.NewBatchedLoader(func(_ context.Context, ids []string) []*dataloader.Result[[]*models.Comment] {
			results := make([]*dataloader.Result[[]*models.Comment], len(ids))
			for i, id := range ids {
				results[i] = &dataloader.Result[[]*models.Comment]{Data: st.RepliesTo(id)}
			}
			return results
		}),
	}
}

// UsersByIDs resolves a set of user ids through the UserByID loader in one
// batch. Ids that no longer resolve to a user are dropped, matching the
// filter semantics of the relationship fields.
func (l *Loaders) UsersByIDs(ctx context.Context, ids []string) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}
	values, errs := l.UserByID.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	users := make([]*models.User, 0, len(values))
	for _, u := range values {
		if u != nil {
			users = append(users, u)
		}
	}
	return users, nil
}

type contextKey struct{}

// ToContext attaches a loader set to the request context.
func ToContext(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the request's loader set, or nil when none was
// attached.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(contextKey{}).(*Loaders)
	return l
}
