package graph

import (
	"context"
	"time"

	"github.com/blogql/backend/internal/auth"
	"github.com/blogql/backend/internal/loaders"
	"github.com/blogql/backend/internal/store"
	"github.com/blogql/backend/validators"
)

// Resolver is the root resolver. It holds every dependency query and
// mutation execution needs: the store, the auth service, and the input
// validator.
type Resolver struct {
	store    store.Store
	auth     *auth.Service
	validate *validators.CustomValidator
}

// NewResolver creates the root resolver.
func NewResolver(st store.Store, authSvc *auth.Service) *Resolver {
	return &Resolver{
		store:    st,
		auth:     authSvc,
		validate: validators.NewValidator(),
	}
}

// loaders returns the request-scoped loader set. A request that somehow
// reached execution without one gets a fresh set, which keeps batching
// semantics intact for that single operation.
func (r *Resolver) loaders(ctx context.Context) *loaders.Loaders {
	if l := loaders.FromContext(ctx); l != nil {
		return l
	}
	return loaders.New(r.store)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
