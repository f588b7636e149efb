package graph

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/blogql/backend/internal/apperrors"
	"github.com/blogql/backend/internal/auth"
	"github.com/blogql/backend/internal/models"
)

// Post looks up a single post by id or slug. An unpublished post is visible
// only to its author.
func (r *Resolver) Post(ctx context.Context, args struct {
	ID   *graphql.ID
	Slug *string
}) (*PostResolver, error) {
	var post *models.Post
	var ok bool
	switch {
	case args.ID != nil:
		post, ok = r.store.PostByID(string(*args.ID))
	case args.Slug != nil:
		post, ok = r.store.PostBySlug(*args.Slug)
	}
	if !ok {
		return nil, apperrors.NotFound("Post not found or not published")
	}

	if !post.Published {
		identity := auth.IdentityFromContext(ctx)
		if identity == nil || identity.UserID != post.AuthorID {
			return nil, apperrors.NotFound("Post not found or not published")
		}
	}
	return &PostResolver{r: r, p: post}, nil
}

// Posts lists published posts. Filters are AND-combined, sorting is a single
// stable comparator, and pagination is applied strictly after filter+sort.
func (r *Resolver) Posts(ctx context.Context, args struct {
	Filter     *PostFilter
	Sort       *PostSort
	Pagination *PaginationInput
}) (*PostConnectionResolver, error) {
	var filtered []*models.Post
	for _, p := range r.store.Posts() {
		if p.Published {
			filtered = append(filtered, p)
		}
	}

	if args.Filter != nil {
		if args.Filter.AuthorID != nil {
			filtered = filterPosts(filtered, func(p *models.Post) bool {
				return p.AuthorID == string(*args.Filter.AuthorID)
			})
		}
		if args.Filter.Tags != nil {
			tags := *args.Filter.Tags
			filtered = filterPosts(filtered, func(p *models.Post) bool {
				return hasAllTags(p, tags)
			})
		}
		if args.Filter.Search != nil {
			term := strings.ToLower(*args.Filter.Search)
			filtered = filterPosts(filtered, func(p *models.Post) bool {
				return strings.Contains(strings.ToLower(p.Title), term) ||
					strings.Contains(strings.ToLower(p.Content), term) ||
					strings.Contains(strings.ToLower(p.Excerpt), term)
			})
		}
	}

	if args.Sort != nil {
		sortPosts(filtered, args.Sort)
	}

	pageItems, info := paginate(filtered, args.Pagination)
	return &PostConnectionResolver{r: r, posts: pageItems, info: info}, nil
}

// PopularPosts returns the most-liked published posts. Posts with equal like
// counts keep their underlying order.
func (r *Resolver) PopularPosts(ctx context.Context, args struct{ Limit int32 }) ([]*PostResolver, error) {
	limit := args.Limit
	if limit <= 0 {
		limit = 5
	}

	var published []*models.Post
	for _, p := range r.store.Posts() {
		if p.Published {
			published = append(published, p)
		}
	}
	sort.SliceStable(published, func(i, j int) bool {
		return len(published[i].Likes) > len(published[j].Likes)
	})

	if int32(len(published)) > limit {
		published = published[:limit]
	}
	return r.postResolvers(published), nil
}

// CreatePost creates a post owned by the caller. The slug is derived from
// the title.
func (r *Resolver) CreatePost(ctx context.Context, args struct{ Input CreatePostInput }) (*PostResolver, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	input := args.Input
	if err := r.validate.Validate(input); err != nil {
		return nil, err
	}

	now := time.Now()
	post := &models.Post{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Content:   input.Content,
		Slug:      slug.Make(input.Title),
		AuthorID:  identity.UserID,
		Tags:      []string{},
		Likes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Tags != nil {
		post.Tags = append(post.Tags, *input.Tags...)
	}
	post.Published = input.Published
	r.store.InsertPost(post)

	return &PostResolver{r: r, p: post}, nil
}

// UpdatePost applies the provided fields to a post the caller authored. A
// new title re-derives the slug.
func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	ID    graphql.ID
	Input UpdatePostInput
}) (*PostResolver, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	input := args.Input
	if err := r.validate.Validate(input); err != nil {
		return nil, err
	}

	post, ok := r.store.PostByID(string(args.ID))
	if !ok {
		return nil, apperrors.NotFound("Post not found")
	}
	if post.AuthorID != identity.UserID {
		return nil, apperrors.Forbidden("You are not the author of this post")
	}

	if input.Title != nil {
		post.Title = *input.Title
		post.Slug = slug.Make(*input.Title)
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Tags != nil {
		post.Tags = append([]string{}, *input.Tags...)
	}
	if input.Published != nil {
		post.Published = *input.Published
	}
	r.store.UpdatePost(post)

	return &PostResolver{r: r, p: post}, nil
}

// DeletePost removes a post the caller authored. Its comments stay in place.
func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return false, err
	}

	post, ok := r.store.PostByID(string(args.ID))
	if !ok {
		return false, apperrors.NotFound("Post not found")
	}
	if post.AuthorID != identity.UserID {
		return false, apperrors.Forbidden("You are not the author of this post")
	}

	return r.store.RemovePost(post.ID), nil
}

// LikePost records a like on a published post. Liking a post twice is
// rejected, not ignored.
func (r *Resolver) LikePost(ctx context.Context, args struct{ ID graphql.ID }) (*PostResolver, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	post, ok := r.store.PostByID(string(args.ID))
	if !ok || !post.Published {
		return nil, apperrors.NotFound("Post not found or not published")
	}
	if post.HasLike(identity.UserID) {
		return nil, apperrors.Conflict("You already liked this post")
	}

	post.Likes = append(post.Likes, identity.UserID)
	r.store.UpdatePost(post)

	return &PostResolver{r: r, p: post}, nil
}

// UnlikePost removes the caller's like. Removing a like that was never there
// is a no-op success.
func (r *Resolver) UnlikePost(ctx context.Context, args struct{ ID graphql.ID }) (*PostResolver, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	post, ok := r.store.PostByID(string(args.ID))
	if !ok || !post.Published {
		return nil, apperrors.NotFound("Post not found or not published")
	}

	post.Likes = removeID(post.Likes, identity.UserID)
	r.store.UpdatePost(post)

	return &PostResolver{r: r, p: post}, nil
}

func filterPosts(posts []*models.Post, keep func(*models.Post) bool) []*models.Post {
	out := posts[:0]
	for _, p := range posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// hasAllTags reports whether the post carries every requested tag.
func hasAllTags(p *models.Post, tags []string) bool {
	for _, want := range tags {
		found := false
		for _, have := range p.Tags {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sortPosts(posts []*models.Post, s *PostSort) {
	ascending := s.Order == "ASC"
	cmp := func(a, b *models.Post) int {
		switch s.Field {
		case "CREATED_AT":
			return a.CreatedAt.Compare(b.CreatedAt)
		case "UPDATED_AT":
			return a.UpdatedAt.Compare(b.UpdatedAt)
		case "TITLE":
			return strings.Compare(a.Title, b.Title)
		case "LIKES_COUNT":
			return len(a.Likes) - len(b.Likes)
		}
		return 0
	}
	sort.SliceStable(posts, func(i, j int) bool {
		if ascending {
			return cmp(posts[i], posts[j]) < 0
		}
		return cmp(posts[i], posts[j]) > 0
	})
}

// PostResolver resolves the Post type. Relationship fields go through the
// request's loaders.
type PostResolver struct {
	r *Resolver
	p *models.Post
}

func (p *PostResolver) ID() graphql.ID   { return graphql.ID(p.p.ID) }
func (p *PostResolver) Title() string    { return p.p.Title }
func (p *PostResolver) Content() string  { return p.p.Content }
func (p *PostResolver) Excerpt() *string { return &p.p.Excerpt }
func (p *PostResolver) Slug() string     { return p.p.Slug }
func (p *PostResolver) Tags() []string   { return p.p.Tags }
func (p *PostResolver) Published() bool  { return p.p.Published }
func (p *PostResolver) CreatedAt() string { return formatTime(p.p.CreatedAt) }
func (p *PostResolver) UpdatedAt() string { return formatTime(p.p.UpdatedAt) }

func (p *PostResolver) Author(ctx context.Context) (*UserResolver, error) {
	user, err := p.r.loaders(ctx).UserByID.Load(ctx, p.p.AuthorID)()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}
	return &UserResolver{r: p.r, u: user}, nil
}

func (p *PostResolver) Comments(ctx context.Context) ([]*CommentResolver, error) {
	comments, err := p.r.loaders(ctx).CommentsByPost.Load(ctx, p.p.ID)()
	if err != nil {
		return nil, err
	}
	return p.r.commentResolvers(comments), nil
}

func (p *PostResolver) Likes(ctx context.Context) ([]*UserResolver, error) {
	users, err := p.r.loaders(ctx).UsersByIDs(ctx, p.p.Likes)
	if err != nil {
		return nil, err
	}
	return p.r.userResolvers(users), nil
}

func (r *Resolver) postResolvers(posts []*models.Post) []*PostResolver {
	out := make([]*PostResolver, 0, len(posts))
	for _, p := range posts {
		out = append(out, &PostResolver{r: r, p: p})
	}
	return out
}

// PostConnectionResolver resolves one page of posts.
type PostConnectionResolver struct {
	r     *Resolver
	posts []*models.Post
	info  pageInfo
}

func (c *PostConnectionResolver) Posts() []*PostResolver {
	return c.r.postResolvers(c.posts)
}

func (c *PostConnectionResolver) Pagination() *PaginationInfoResolver {
	return &PaginationInfoResolver{info: c.info}
}
