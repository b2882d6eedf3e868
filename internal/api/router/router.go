package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/queensauto/brakes-booking/internal/http/handlers"
	httpmiddleware "github.com/queensauto/brakes-booking/internal/http/middleware"
	"github.com/queensauto/brakes-booking/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Availability       *handlers.AvailabilityHandler
	Bookings           *handlers.BookingHandler
	Confirmation       *handlers.ConfirmationHandler
	Preferences        *handlers.PreferencesHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api/v1", func(api chi.Router) {
		if cfg.Availability != nil {
			api.Get("/availability", cfg.Availability.GetMonth)
			api.Get("/availability/slots", cfg.Availability.GetSlots)
		}
		if cfg.Bookings != nil {
			api.Post("/bookings", cfg.Bookings.Create)
		}
		if cfg.Confirmation != nil {
			api.Get("/confirmation", cfg.Confirmation.Get)
		}
		if cfg.Preferences != nil {
			api.Get("/preferences/language", cfg.Preferences.GetLanguage)
			api.Put("/preferences/language", cfg.Preferences.SetLanguage)
		}
	})

	return r
}
