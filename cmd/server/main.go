package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"edu_backoffice/internal/config"
	"edu_backoffice/internal/logger"
	"edu_backoffice/internal/middleware"
	"edu_backoffice/internal/routes"
	"edu_backoffice/internal/storage"
)

func main() {
	// Structured logging to file before anything else logs
	logger.Setup()

	// Connect to the database, migrate, seed roles
	config.InitDB()

	// Object storage for uploads
	blob, err := storage.NewS3Store(context.Background())
	if err != nil {
		log.Fatalf("could not initialize blob store: %v", err)
	}
	storage.Blob = blob

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + port()
	log.Printf("server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
