package api

import (
	"github.com/aldisn/contactbook-be/internal/api/handlers"
	"github.com/aldisn/contactbook-be/internal/auth"
	"github.com/aldisn/contactbook-be/internal/config"
	"github.com/aldisn/contactbook-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	cfg *config.Config,
	userService services.UserServiceProvider,
	contactService services.ContactServiceProvider,
	addressService services.AddressServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	contactHandler := handlers.NewContactHandler(contactService)
	addressHandler := handlers.NewAddressHandler(addressService)

	// Public endpoints
	r.Post("/users", userHandler.Register)
	r.Post("/users/login", userHandler.Login)

	// Everything else requires a valid session token
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(userService))

		r.Get("/users/current", userHandler.Profile)
		r.Patch("/users/current", userHandler.Update)
		r.Post("/users/logout", userHandler.Logout)

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", contactHandler.GetAll)
			r.Post("/", contactHandler.Create)
			r.Route("/{contactId}", func(r chi.Router) {
				r.Get("/", contactHandler.Get)
				r.Put("/", contactHandler.Update)
				r.Delete("/", contactHandler.Delete)

				r.Route("/addresses", func(r chi.Router) {
					r.Post("/", addressHandler.Create)
					r.Route("/{addressId}", func(r chi.Router) {
						r.Put("/", addressHandler.Update)
						r.Delete("/", addressHandler.Delete)
					})
				})
			})
		})
	})

	return r
}
