package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/blogql/backend/internal/auth"
	"github.com/blogql/backend/internal/graph"
	"github.com/blogql/backend/internal/handlers"
	"github.com/blogql/backend/internal/middleware"
	"github.com/blogql/backend/internal/store"
)

// SetupMiddleware configures global Echo middleware.
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Secure())
	log.Println("Global middleware configured.")
}

// SetupRoutes parses the schema, wires the resolver dependencies and
// registers all routes.
func SetupRoutes(e *echo.Echo, st store.Store, authSvc *auth.Service) error {
	schema, err := graph.ParseSchema(graph.NewResolver(st, authSvc))
	if err != nil {
		return err
	}
	log.Println("GraphQL schema parsed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	gqlHandler := handlers.NewGraphQLHandler(schema, st)
	gql := e.Group("/graphql", middleware.AuthContext(authSvc))
	gql.POST("", gqlHandler.Query)
	gql.GET("", handlers.Playground("BlogQL", "/graphql"))
	log.Println("GraphQL routes configured.")

	return nil
}
