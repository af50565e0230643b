// Package web serves the component showcase: server-rendered catalog
// pages plus a small JSON API for ratings and playground snapshots.
package web

import (
	"plume/config"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// NewServer creates and configures the RWeb server
func NewServer(cfg *config.Config) *rweb.Server {
	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Address,
		Verbose: cfg.Verbose,
	})

	// Apply middleware
	s.Use(rweb.RequestInfo)          // Logs request info
	s.Use(CorsMiddleware)            // CORS headers for the JSON API
	s.Use(SecurityHeadersMiddleware) // Security headers
	s.Use(SessionMiddleware)         // Decode the admin session cookie
	s.Use(LoggingMiddleware)         // Request logging

	// Setup routes
	setupRoutes(s, cfg)

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, cfg *config.Config) error {
	logger.Info("Plume showcase starting", "address", cfg.Address)
	return s.Run()
}
