package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"biorxiv-calendar/cmd/api/router"
	"biorxiv-calendar/config"
	"biorxiv-calendar/internal/logger"
)

// @title           bioRxiv Calendar API
// @version         1.0
// @description     Monthly calendar of bioRxiv preprints with AI abstract summaries
// @BasePath        /api/v1
func main() {
	config.InitApp()
	logger.Init(config.GetConfig().Logging.Level)

	r := router.New()

	// The calendar front-end is served from a different origin, so the API
	// sits behind a CORS handler.
	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id", "X-Span-Id"},
	}).Handler(r)

	if err := http.ListenAndServe(":8080", handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
