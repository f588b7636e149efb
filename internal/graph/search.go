package graph

import (
	"context"
	"strings"

	"github.com/blogql/backend/internal/models"
)

// Search matches a case-insensitive substring against published posts
// (title, content, excerpt, tags) and users (username, first name, last
// name, bio). The two result lists share one limit, split as ceil(limit/2)
// posts and floor(limit/2) users; totalCount is the combined match count
// before limiting. The split is part of the wire contract.
func (r *Resolver) Search(ctx context.Context, args struct {
	Query      string
	Pagination *PaginationInput
}) (*SearchResultsResolver, error) {
	term := strings.ToLower(args.Query)

	var matchedPosts []*models.Post
	for _, p := range r.store.Posts() {
		if !p.Published {
			continue
		}
		if strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Content), term) ||
			strings.Contains(strings.ToLower(p.Excerpt), term) ||
			anyTagContains(p.Tags, term) {
			matchedPosts = append(matchedPosts, p)
		}
	}

	var matchedUsers []*models.User
	for _, u := range r.store.Users() {
		if strings.Contains(strings.ToLower(u.Username), term) ||
			containsFold(u.FirstName, term) ||
			containsFold(u.LastName, term) ||
			containsFold(u.Bio, term) {
			matchedUsers = append(matchedUsers, u)
		}
	}

	totalCount := int32(len(matchedPosts) + len(matchedUsers))

	_, limit := normalizePagination(args.Pagination)
	postLimit := (limit + 1) / 2
	userLimit := limit / 2
	if int32(len(matchedPosts)) > postLimit {
		matchedPosts = matchedPosts[:postLimit]
	}
	if int32(len(matchedUsers)) > userLimit {
		matchedUsers = matchedUsers[:userLimit]
	}

	return &SearchResultsResolver{
		r:          r,
		posts:      matchedPosts,
		users:      matchedUsers,
		totalCount: totalCount,
	}, nil
}

func anyTagContains(tags []string, lowerTerm string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), lowerTerm) {
			return true
		}
	}
	return false
}

// SearchResultsResolver resolves the SearchResults type: two typed lists, no
// runtime type disambiguation needed.
type SearchResultsResolver struct {
	r          *Resolver
	posts      []*models.Post
	users      []*models.User
	totalCount int32
}

func (s *SearchResultsResolver) Posts() []*PostResolver {
	return s.r.postResolvers(s.posts)
}

func (s *SearchResultsResolver) Users() []*UserResolver {
	return s.r.userResolvers(s.users)
}

func (s *SearchResultsResolver) TotalCount() int32 {
	return s.totalCount
}
