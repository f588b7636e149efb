package graph

import (
	"context"
	"time"

	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/blogql/backend/internal/apperrors"
	"github.com/blogql/backend/internal/auth"
	"github.com/blogql/backend/internal/models"
)

// Comments lists a post's top-level comments, paginated. Replies hang off
// each comment's replies field.
func (r *Resolver) Comments(ctx context.Context, args struct {
	PostID     graphql.ID
	Pagination *PaginationInput
}) ([]*CommentResolver, error) {
	var topLevel []*models.Comment
	for _, c := range r.store.CommentsByPost(string(args.PostID)) {
		if c.ParentCommentID == nil {
			topLevel = append(topLevel, c)
		}
	}

	pageItems, _ := paginate(topLevel, args.Pagination)
	return r.commentResolvers(pageItems), nil
}

// CreateComment adds a comment to a published post, optionally as a reply to
// an existing comment.
func (r *Resolver) CreateComment(ctx context.Context, args struct{ Input CreateCommentInput }) (*CommentResolver, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	input := args.Input
	if err := r.validate.Validate(input); err != nil {
		return nil, err
	}

	post, ok := r.store.PostByID(string(input.PostID))
	if !ok || !post.Published {
		return nil, apperrors.NotFound("Post not found or not published")
	}

	var parentID *string
	if input.ParentCommentID != nil {
		id := string(*input.ParentCommentID)
		if _, ok := r.store.CommentByID(id); !ok {
			return nil, apperrors.NotFound("Parent comment not found")
		}
		parentID = &id
	}

	now := time.Now()
	comment := &models.Comment{
		ID:              uuid.NewString(),
		Content:         input.Content,
		AuthorID:        identity.UserID,
		PostID:          string(input.PostID),
		ParentCommentID: parentID,
		Likes:           []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	r.store.InsertComment(comment)

	return &CommentResolver{r: r, c: comment}, nil
}

// UpdateComment replaces the content of a comment the caller authored.
func (r *Resolver) UpdateComment(ctx context.Context, args struct {
	ID    graphql.ID
	Input UpdateCommentInput
}) (*CommentResolver, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.validate.Validate(args.Input); err != nil {
		return nil, err
	}

	comment, ok := r.store.CommentByID(string(args.ID))
	if !ok {
		return nil, apperrors.NotFound("Comment not found")
	}
	if comment.AuthorID != identity.UserID {
		return nil, apperrors.Forbidden("You are not the author of this comment")
	}

	comment.Content = args.Input.Content
	r.store.UpdateComment(comment)

	return &CommentResolver{r: r, c: comment}, nil
}

// DeleteComment removes a comment the caller authored together with its
// entire descendant subtree. Collection happens before any removal, so the
// delete never applies partially.
func (r *Resolver) DeleteComment(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return false, err
	}

	comment, ok := r.store.CommentByID(string(args.ID))
	if !ok {
		return false, apperrors.NotFound("Comment not found")
	}
	if comment.AuthorID != identity.UserID {
		return false, apperrors.Forbidden("You are not the author of this comment")
	}

	thread := r.store.CollectThread(comment.ID)
	r.store.RemoveComments(thread)
	return true, nil
}

// LikeComment records a like. Liking a comment twice is rejected.
func (r *Resolver) LikeComment(ctx context.Context, args struct{ ID graphql.ID }) (*CommentResolver, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	comment, ok := r.store.CommentByID(string(args.ID))
	if !ok {
		return nil, apperrors.NotFound("Comment not found")
	}
	if comment.HasLike(identity.UserID) {
		return nil, apperrors.Conflict("You already liked this comment")
	}

	comment.Likes = append(comment.Likes, identity.UserID)
	r.store.UpdateComment(comment)

	return &CommentResolver{r: r, c: comment}, nil
}

// UnlikeComment removes the caller's like; absent likes are a no-op success.
func (r *Resolver) UnlikeComment(ctx context.Context, args struct{ ID graphql.ID }) (*CommentResolver, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	comment, ok := r.store.CommentByID(string(args.ID))
	if !ok {
		return nil, apperrors.NotFound("Comment not found")
	}

	comment.Likes = removeID(comment.Likes, identity.UserID)
	r.store.UpdateComment(comment)

	return &CommentResolver{r: r, c: comment}, nil
}

// CommentResolver resolves the Comment type.
type CommentResolver struct {
	r *Resolver
	c *models.Comment
}

func (c *CommentResolver) ID() graphql.ID    { return graphql.ID(c.c.ID) }
func (c *CommentResolver) Content() string   { return c.c.Content }
func (c *CommentResolver) CreatedAt() string { return formatTime(c.c.CreatedAt) }
func (c *CommentResolver) UpdatedAt() string { return formatTime(c.c.UpdatedAt) }

func (c *CommentResolver) Author(ctx context.Context) (*UserResolver, error) {
	user, err := c.r.loaders(ctx).UserByID.Load(ctx, c.c.AuthorID)()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}
	return &UserResolver{r: c.r, u: user}, nil
}

func (c *CommentResolver) Post(ctx context.Context) (*PostResolver, error) {
	post, err := c.r.loaders(ctx).PostByID.Load(ctx, c.c.PostID)()
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperrors.NotFound("Post not found")
	}
	return &PostResolver{r: c.r, p: post}, nil
}

func (c *CommentResolver) ParentComment(ctx context.Context) (*CommentResolver, error) {
	if c.c.ParentCommentID == nil {
		return nil, nil
	}
	parent, err := c.r.loaders(ctx).CommentByID.Load(ctx, *c.c.ParentCommentID)()
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, nil
	}
	return &CommentResolver{r: c.r, c: parent}, nil
}

func (c *CommentResolver) Replies(ctx context.Context) ([]*CommentResolver, error) {
	replies, err := c.r.loaders(ctx).RepliesByParent.Load(ctx, c.c.ID)()
	if err != nil {
		return nil, err
	}
	return c.r.commentResolvers(replies), nil
}

func (c *CommentResolver) Likes(ctx context.Context) ([]*UserResolver, error) {
	users, err := c.r.loaders(ctx).UsersByIDs(ctx, c.c.Likes)
	if err != nil {
		return nil, err
	}
	return c.r.userResolvers(users), nil
}

func (r *Resolver) commentResolvers(comments []*models.Comment) []*CommentResolver {
	out := make([]*CommentResolver, 0, len(comments))
	for _, c := range comments {
		out = append(out, &CommentResolver{r: r, c: c})
	}
	return out
}
