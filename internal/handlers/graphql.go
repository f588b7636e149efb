package handlers

import (
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"

	"github.com/blogql/backend/internal/loaders"
	"github.com/blogql/backend/internal/store"
)

// GraphQLHandler executes GraphQL operations against the parsed schema.
type GraphQLHandler struct {
	schema *graphql.Schema
	store  store.Store
}

// NewGraphQLHandler creates a new GraphQLHandler.
func NewGraphQLHandler(schema *graphql.Schema, st store.Store) *GraphQLHandler {
	return &GraphQLHandler{schema: schema, store: st}
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Query handles POST /graphql. Each operation gets a fresh loader set scoped
// to its context; the set is discarded with the request.
func (h *GraphQLHandler) Query(c echo.Context) error {
	var req graphqlRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	ctx := loaders.ToContext(c.Request().Context(), loaders.New(h.store))
	response := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
	return c.JSON(http.StatusOK, response)
}

// Playground serves the interactive query UI on GET /graphql.
func Playground(title, endpoint string) echo.HandlerFunc {
	return echo.WrapHandler(playground.Handler(title, endpoint))
}
