package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/publishine/publishine-backend/internal/api/handlers"
	"github.com/publishine/publishine-backend/internal/auth"
	"github.com/publishine/publishine-backend/internal/config"
	"github.com/publishine/publishine-backend/internal/middleware"
	repo "github.com/publishine/publishine-backend/internal/repository"
	"github.com/publishine/publishine-backend/internal/services"
)

func NewRouter(cfg config.Config, svc *services.UserService, users repo.Users, tm *auth.TokenManager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.Handler())

	uh := handlers.NewUsersHandler(svc)
	guard := middleware.NewAuthMiddleware(tm, users)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", uh.Register)
		r.Post("/users/login", uh.Login)
		r.Post("/users/verify-otp", uh.VerifyOTP)
		r.Post("/users/resend-otp", uh.ResendOTP)

		r.Group(func(r chi.Router) {
			r.Use(guard.Auth)
			r.Post("/users/become-developer", uh.BecomeDeveloper)
			r.Post("/users/become-publisher", uh.BecomePublisher)
		})
	})

	return r
}
