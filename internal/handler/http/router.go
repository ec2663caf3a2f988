package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/lawding/leavecalc-api/internal/handler/http/middleware"
	"github.com/lawding/leavecalc-api/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	env string,
	calculationHandler CalculationHandler,
	feedbackHandler FeedbackHandler,
	ratingHandler RatingHandler,
	authHandler AuthHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leavecalc-api"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/annual-leaves/calculate", calculationHandler.Calculate)

		r.Post("/feedback", feedbackHandler.Submit)

		r.Route("/rating-prompt", func(r chi.Router) {
			r.Post("/launch", ratingHandler.Launch)
			r.Get("/can-show", ratingHandler.CanShow)
			r.Post("/submitted", ratingHandler.Submitted)
			r.Post("/dismissed", ratingHandler.Dismissed)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Get("/feedback", feedbackHandler.List)
		})
	})

	return r
}
