package graph

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/blogql/backend/internal/apperrors"
	"github.com/blogql/backend/internal/auth"
	"github.com/blogql/backend/internal/models"
)

// Me returns the authenticated caller's own record.
func (r *Resolver) Me(ctx context.Context) (*UserResolver, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := r.store.UserByID(identity.UserID)
	if !ok {
		return nil, nil
	}
	return &UserResolver{r: r, u: user}, nil
}

// User looks up a single user by id.
func (r *Resolver) User(ctx context.Context, args struct{ ID graphql.ID }) (*UserResolver, error) {
	user, ok := r.store.UserByID(string(args.ID))
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}
	return &UserResolver{r: r, u: user}, nil
}

// Users lists users with an optional free-text filter over username, first
// name, last name and email, paginated.
func (r *Resolver) Users(ctx context.Context, args struct {
	Filter     *UserFilter
	Pagination *PaginationInput
}) (*UserConnectionResolver, error) {
	filtered := r.store.Users()

	if args.Filter != nil && args.Filter.Search != nil {
		term := strings.ToLower(*args.Filter.Search)
		matched := filtered[:0:0]
		for _, u := range filtered {
			if strings.Contains(strings.ToLower(u.Username), term) ||
				containsFold(u.FirstName, term) ||
				containsFold(u.LastName, term) ||
				strings.Contains(strings.ToLower(u.Email), term) {
				matched = append(matched, u)
			}
		}
		filtered = matched
	}

	pageItems, info := paginate(filtered, args.Pagination)
	return &UserConnectionResolver{r: r, users: pageItems, info: info}, nil
}

// Register creates an account. A collision on username OR email is a single
// conflict; success issues a credential immediately (auto-login).
func (r *Resolver) Register(ctx context.Context, args struct{ Input CreateUserInput }) (*AuthPayloadResolver, error) {
	input := args.Input
	if err := r.validate.Validate(input); err != nil {
		return nil, err
	}

	if _, exists := r.store.UserByEmailOrUsername(input.Email, input.Username); exists {
		return nil, apperrors.Conflict("User with this email or username already exists")
	}

	hashed, err := r.auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperrors.Internal("Failed to hash password")
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.NewString(),
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashed,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Bio:       input.Bio,
		Followers: []string{},
		Following: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.store.InsertUser(user)

	token, err := r.auth.IssueToken(user.ID)
	if err != nil {
		return nil, apperrors.Internal("Failed to generate token")
	}
	return &AuthPayloadResolver{token: token, user: &UserResolver{r: r, u: user}}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same message.
func (r *Resolver) Login(ctx context.Context, args struct{ Email, Password string }) (*AuthPayloadResolver, error) {
	if err := r.validate.Validate(loginInput{Email: args.Email, Password: args.Password}); err != nil {
		return nil, err
	}

	user, ok := r.store.UserByEmail(args.Email)
	if !ok || !r.auth.CheckPassword(user.Password, args.Password) {
		return nil, apperrors.AuthenticationRequired("Invalid email or password")
	}

	token, err := r.auth.IssueToken(user.ID)
	if err != nil {
		return nil, apperrors.Internal("Failed to generate token")
	}
	return &AuthPayloadResolver{token: token, user: &UserResolver{r: r, u: user}}, nil
}

// UpdateProfile applies the provided fields to the caller's own record.
func (r *Resolver) UpdateProfile(ctx context.Context, args struct{ Input UpdateUserInput }) (*UserResolver, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	input := args.Input
	if err := r.validate.Validate(input); err != nil {
		return nil, err
	}

	user, ok := r.store.UserByID(identity.UserID)
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}

	// Check each changed field on its own so a match on the caller's own
	// unchanged email cannot mask a collision on the new username.
	if input.Username != nil {
		if other, exists := r.store.UserByEmailOrUsername("", *input.Username); exists && other.ID != user.ID {
			return nil, apperrors.Conflict("Username or email already taken")
		}
	}
	if input.Email != nil {
		if other, exists := r.store.UserByEmailOrUsername(*input.Email, ""); exists && other.ID != user.ID {
			return nil, apperrors.Conflict("Username or email already taken")
		}
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = input.FirstName
	}
	if input.LastName != nil {
		user.LastName = input.LastName
	}
	if input.Bio != nil {
		user.Bio = input.Bio
	}
	if input.Avatar != nil {
		user.Avatar = input.Avatar
	}
	r.store.UpdateUser(user)

	return &UserResolver{r: r, u: user}, nil
}

// FollowUser adds the caller to the target's followers and the target to the
// caller's following, in one call. Self-follows and duplicate follows are
// rejected.
func (r *Resolver) FollowUser(ctx context.Context, args struct{ UserID graphql.ID }) (*UserResolver, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	targetID := string(args.UserID)

	if identity.UserID == targetID {
		return nil, apperrors.Conflict("You cannot follow yourself")
	}

	current, ok := r.store.UserByID(identity.UserID)
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}
	target, ok := r.store.UserByID(targetID)
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}

	if current.IsFollowing(targetID) {
		return nil, apperrors.Conflict("You are already following this user")
	}

	current.Following = append(current.Following, targetID)
	target.Followers = append(target.Followers, current.ID)
	r.store.UpdateUser(current)
	r.store.UpdateUser(target)

	return &UserResolver{r: r, u: target}, nil
}

// UnfollowUser removes both sides of the relation. Unfollowing someone the
// caller never followed is a no-op success.
func (r *Resolver) UnfollowUser(ctx context.Context, args struct{ UserID graphql.ID }) (*UserResolver, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	targetID := string(args.UserID)

	current, ok := r.store.UserByID(identity.UserID)
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}
	target, ok := r.store.UserByID(targetID)
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}

	current.Following = removeID(current.Following, targetID)
	target.Followers = removeID(target.Followers, current.ID)
	r.store.UpdateUser(current)
	r.store.UpdateUser(target)

	return &UserResolver{r: r, u: target}, nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func containsFold(s *string, lowerTerm string) bool {
	if s == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*s), lowerTerm)
}

// UserResolver resolves the User type. Relationship fields are derived views
// computed at read time through the request's loaders, never denormalized on
// the record.
type UserResolver struct {
	r *Resolver
	u *models.User
}

func (u *UserResolver) ID() graphql.ID     { return graphql.ID(u.u.ID) }
func (u *UserResolver) Username() string   { return u.u.Username }
func (u *UserResolver) Email() string      { return u.u.Email }
func (u *UserResolver) FirstName() *string { return u.u.FirstName }
func (u *UserResolver) LastName() *string  { return u.u.LastName }
func (u *UserResolver) Avatar() *string    { return u.u.Avatar }
func (u *UserResolver) Bio() *string       { return u.u.Bio }
func (u *UserResolver) CreatedAt() string  { return formatTime(u.u.CreatedAt) }
func (u *UserResolver) UpdatedAt() string  { return formatTime(u.u.UpdatedAt) }

func (u *UserResolver) Posts(ctx context.Context) ([]*PostResolver, error) {
	posts, err := u.r.loaders(ctx).PostsByAuthor.Load(ctx, u.u.ID)()
	if err != nil {
		return nil, err
	}
	return u.r.postResolvers(posts), nil
}

func (u *UserResolver) Comments(ctx context.Context) ([]*CommentResolver, error) {
	comments, err := u.r.loaders(ctx).CommentsByAuthor.Load(ctx, u.u.ID)()
	if err != nil {
		return nil, err
	}
	return u.r.commentResolvers(comments), nil
}

func (u *UserResolver) Followers(ctx context.Context) ([]*UserResolver, error) {
	users, err := u.r.loaders(ctx).UsersByIDs(ctx, u.u.Followers)
	if err != nil {
		return nil, err
	}
	return u.r.userResolvers(users), nil
}

func (u *UserResolver) Following(ctx context.Context) ([]*UserResolver, error) {
	users, err := u.r.loaders(ctx).UsersByIDs(ctx, u.u.Following)
	if err != nil {
		return nil, err
	}
	return u.r.userResolvers(users), nil
}

func (r *Resolver) userResolvers(users []*models.User) []*UserResolver {
	out := make([]*UserResolver, 0, len(users))
	for _, u := range users {
		out = append(out, &UserResolver{r: r, u: u})
	}
	return out
}

// UserConnectionResolver resolves one page of users.
type UserConnectionResolver struct {
	r     *Resolver
	users []*models.User
	info  pageInfo
}

func (c *UserConnectionResolver) Users() []*UserResolver {
	return c.r.userResolvers(c.users)
}

func (c *UserConnectionResolver) Pagination() *PaginationInfoResolver {
	return &PaginationInfoResolver{info: c.info}
}

// AuthPayloadResolver resolves the register/login response.
type AuthPayloadResolver struct {
	token string
	user  *UserResolver
}

func (a *AuthPayloadResolver) Token() string      { return a.token }
func (a *AuthPayloadResolver) User() *UserResolver { return a.user }
