package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"visitorregistry/internal/delivery/http/controllers"
	"visitorregistry/internal/delivery/http/middleware"
	"visitorregistry/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(visitorController *controllers.VisitorController, authController *controllers.AuthController, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()

	// Public registration form endpoint
	mux.HandleFunc("POST /contact", visitorController.Register)

	// Staff API
	requireAuth := middleware.RequireAuth(verifier)
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("GET /registrations", requireAuth(visitorController.ListRegistrations))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
