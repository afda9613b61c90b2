package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"TOURSANDTRAVELS_BACK-END/internal/handlers"
	"TOURSANDTRAVELS_BACK-END/internal/middleware"
	"TOURSANDTRAVELS_BACK-END/internal/models"
)

// Handlers bundles the route handlers for registration.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Profile   *handlers.ProfileHandler
	Tours     *handlers.ToursHandler
	Bookings  *handlers.BookingsHandler
	Users     *handlers.UsersHandler
	Wishlist  *handlers.WishlistHandler
	Reviews   *handlers.ReviewsHandler
	Dashboard *handlers.DashboardHandler
	Contact   *handlers.ContactHandler
	Health    *handlers.HealthHandler
}

// SetupRoutes configures all application routes
func SetupRoutes(res *middleware.Resolver, h Handlers) {
	// Health check routes
	http.HandleFunc("/healthz", h.Health.Health)
	http.HandleFunc("/livez", h.Health.Live)
	http.HandleFunc("/readyz", h.Health.Ready)

	// Authentication routes
	http.HandleFunc("/api/auth/register", res.WithSession(h.Auth.Register))
	http.HandleFunc("/api/auth/login", res.WithSession(h.Auth.Login))
	http.HandleFunc("/api/auth/logout", res.WithSession(h.Auth.Logout))
	http.HandleFunc("/api/auth/session", res.WithSession(h.Auth.Session))
	http.HandleFunc("/api/auth/profile", res.WithSession(middleware.RequireIdentity(h.Profile.Update)))

	// Public catalog routes
	http.HandleFunc("/api/tours", res.WithSession(h.Tours.Tours))
	http.HandleFunc("/api/tours/", res.WithSession(h.Tours.Tours))
	http.HandleFunc("/api/contact", res.WithSession(h.Contact.Contact))

	// Traveler routes
	http.HandleFunc("/api/bookings", res.WithSession(middleware.RequireRole(models.RoleUser, h.Bookings.Create)))
	http.HandleFunc("/api/bookings/my", res.WithSession(middleware.RequireRole(models.RoleUser, h.Bookings.My)))
	http.HandleFunc("/api/wishlist", res.WithSession(middleware.RequireIdentity(h.Wishlist.Wishlist)))
	http.HandleFunc("/api/wishlist/", res.WithSession(middleware.RequireIdentity(h.Wishlist.Wishlist)))
	http.HandleFunc("/api/reviews", res.WithSession(middleware.RequireIdentity(h.Reviews.Reviews)))
	http.HandleFunc("/api/reviews/", res.WithSession(middleware.RequireIdentity(h.Reviews.Reviews)))
	http.HandleFunc("/api/user/dashboard", res.WithSession(middleware.RequireRole(models.RoleUser, h.Dashboard.Traveler)))

	// Admin routes
	http.HandleFunc("/api/admin/dashboard", res.WithSession(middleware.RequireRole(models.RoleAdmin, h.Dashboard.Admin)))
	http.HandleFunc("/api/admin/reports", res.WithSession(middleware.RequireRole(models.RoleAdmin, h.Dashboard.Reports)))
	http.HandleFunc("/api/admin/tours", res.WithSession(middleware.RequireRole(models.RoleAdmin, h.Tours.Manage)))
	http.HandleFunc("/api/admin/tours/", res.WithSession(middleware.RequireRole(models.RoleAdmin, h.Tours.Manage)))
	http.HandleFunc("/api/admin/bookings", res.WithSession(middleware.RequireRole(models.RoleAdmin, h.Bookings.Manage)))
	http.HandleFunc("/api/admin/bookings/", res.WithSession(middleware.RequireRole(models.RoleAdmin, h.Bookings.Manage)))
	http.HandleFunc("/api/admin/users", res.WithSession(middleware.RequireRole(models.RoleAdmin, h.Users.Manage)))
	http.HandleFunc("/api/admin/users/", res.WithSession(middleware.RequireRole(models.RoleAdmin, h.Users.Manage)))

	// Swagger UI
	http.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Tours & Travels backend is running."))
}
