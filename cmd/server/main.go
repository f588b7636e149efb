package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/blogql/backend/internal/auth"
	"github.com/blogql/backend/internal/router"
	"github.com/blogql/backend/internal/store"
	"github.com/blogql/backend/pkg/config"
	"github.com/blogql/backend/pkg/hostinfo"
	"github.com/blogql/backend/validators"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := config.Load()

	// In-memory store with the demo dataset
	st := store.NewMemoryStore()
	st.Seed()

	authSvc := auth.NewService(cfg.JWTSecret, cfg.JWTExpiresIn, cfg.BcryptCost)

	// Create Echo instance
	e := echo.New()
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, st, authSvc); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	bind := hostinfo.BindAddress(cfg.Env, cfg.Host)
	for _, url := range hostinfo.ServerURLs(cfg.Port) {
		log.Printf("GraphQL endpoint available at %s/graphql", url)
	}

	// Start server
	e.Logger.Fatal(e.Start(bind + ":" + cfg.Port))
}
