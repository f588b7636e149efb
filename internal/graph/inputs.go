package graph

import graphql "github.com/graph-gophers/graphql-go"

// Mutation inputs. The validate tags define the structural contract for each
// input; all violations are aggregated by the validator before any store
// access happens.

type CreateUserInput struct {
	Username  string  `validate:"required,alphanum,min=3,max=30"`
	Email     string  `validate:"required,email"`
	Password  string  `validate:"required,min=6"`
	FirstName *string `validate:"omitempty,min=1,max=50"`
	LastName  *string `validate:"omitempty,min=1,max=50"`
	Bio       *string `validate:"omitempty,max=500"`
}

type UpdateUserInput struct {
	Username  *string `validate:"omitempty,alphanum,min=3,max=30"`
	Email     *string `validate:"omitempty,email"`
	FirstName *string `validate:"omitempty,min=1,max=50"`
	LastName  *string `validate:"omitempty,min=1,max=50"`
	Bio       *string `validate:"omitempty,max=500"`
	Avatar    *string `validate:"omitempty,url"`
}

type CreatePostInput struct {
	Title   string    `validate:"required,min=1,max=200"`
	Content string    `validate:"required,min=1"`
	Excerpt *string   `validate:"omitempty,max=300"`
	Tags    *[]string `validate:"omitempty,max=10,dive,min=1,max=50"`
	// Schema-defaulted fields bind as value types; the executor fills in the
	// defaults before the resolver runs.
	Published bool
}

type UpdatePostInput struct {
	Title     *string   `validate:"omitempty,min=1,max=200"`
	Content   *string   `validate:"omitempty,min=1"`
	Excerpt   *string   `validate:"omitempty,max=300"`
	Tags      *[]string `validate:"omitempty,max=10,dive,min=1,max=50"`
	Published *bool
}

type CreateCommentInput struct {
	Content         string     `validate:"required,min=1,max=1000"`
	PostID          graphql.ID `validate:"required"`
	ParentCommentID *graphql.ID
}

type UpdateCommentInput struct {
	Content string `validate:"required,min=1,max=1000"`
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Query inputs.

type PostFilter struct {
	Published *bool
	AuthorID  *graphql.ID
	Tags      *[]string
	Search    *string
}

type UserFilter struct {
	Search *string
}

type PostSort struct {
	Field string
	Order string
}

type PaginationInput struct {
	Page  int32
	Limit int32
}
