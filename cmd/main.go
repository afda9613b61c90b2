// @title Tours & Travels Backend API
// @version 1.0
// @description Backend for the Tours & Travels booking application
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@toursandtravels.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"github.com/rs/cors"

	_ "TOURSANDTRAVELS_BACK-END/docs" // This is required for swagger
	"TOURSANDTRAVELS_BACK-END/internal/apiclient"
	"TOURSANDTRAVELS_BACK-END/internal/config"
	"TOURSANDTRAVELS_BACK-END/internal/handlers"
	"TOURSANDTRAVELS_BACK-END/internal/logger"
	"TOURSANDTRAVELS_BACK-END/internal/middleware"
	"TOURSANDTRAVELS_BACK-END/internal/routes"
	"TOURSANDTRAVELS_BACK-END/internal/session"
	"TOURSANDTRAVELS_BACK-END/internal/store"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger config may itself be bad, so fail with the stdlib default.
		panic(err)
	}
	log := logger.New(&cfg.Logging)

	// In-memory stores
	state := store.New(cfg.Store.ReconcileRevenueOnRemove)
	if cfg.Store.SeedDemoData {
		store.Seed(state)
		log.WithField("tours", state.Tours.Len()).Info("demo data seeded")
	}

	// Browser sessions
	sessions := session.NewManager()
	resolver := middleware.NewResolver(sessions)

	// Upstream auth/profile client
	client, err := apiclient.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	if err != nil {
		log.WithError(err).Fatal("failed to build upstream client")
	}

	mailer := utils.NewEmailService(&cfg.Email)

	// Initialize handlers
	bookingsHandler := handlers.NewBookingsHandler(state, log)
	h := routes.Handlers{
		Auth:      handlers.NewAuthHandler(client, sessions, state, log),
		Profile:   handlers.NewProfileHandler(client, log),
		Tours:     handlers.NewToursHandler(state, log),
		Bookings:  bookingsHandler,
		Users:     handlers.NewUsersHandler(state, log),
		Wishlist:  handlers.NewWishlistHandler(state),
		Reviews:   handlers.NewReviewsHandler(state),
		Dashboard: handlers.NewDashboardHandler(state, bookingsHandler),
		Contact:   handlers.NewContactHandler(mailer, cfg.IsEmailConfigured(), log),
		Health:    handlers.NewHealthHandler(state),
	}

	// Setup all routes
	routes.SetupRoutes(resolver, h)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// Wrap the default mux with CORS
	handler := c.Handler(http.DefaultServeMux)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
	}

	go func() {
		log.WithField("port", cfg.Server.Port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown error")
	}
	log.Info("Server stopped.")
}
