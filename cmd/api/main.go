package main

import (
	"fmt"
	"net/http"

	"github.com/lawding/leavecalc-api/internal/config"
	appHTTP "github.com/lawding/leavecalc-api/internal/handler/http"
	"github.com/lawding/leavecalc-api/internal/pkg/calcbackend"
	"github.com/lawding/leavecalc-api/internal/pkg/database"
	"github.com/lawding/leavecalc-api/internal/pkg/jwt"
	"github.com/lawding/leavecalc-api/internal/repository/postgresql"
	authService "github.com/lawding/leavecalc-api/internal/service/auth"
	calculationService "github.com/lawding/leavecalc-api/internal/service/calculation"
	feedbackService "github.com/lawding/leavecalc-api/internal/service/feedback"
	ratingService "github.com/lawding/leavecalc-api/internal/service/rating"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	feedbackRepo := postgresql.NewFeedbackRepository(db)
	ratingStateRepo := postgresql.NewRatingStateRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	calculator := calcbackend.NewClient(cfg.Upstream)

	calculationSvc := calculationService.NewCalculationService(calculator)
	feedbackSvc := feedbackService.NewFeedbackService(feedbackRepo)
	ratingSvc := ratingService.NewPromptService(ratingStateRepo)
	authSvc := authService.NewAuthService(cfg.Admin, jwtService)

	calculationHandler := appHTTP.NewCalculationHandler(calculationSvc)
	feedbackHandler := appHTTP.NewFeedbackHandler(feedbackSvc)
	ratingHandler := appHTTP.NewRatingHandler(ratingSvc)
	authHandler := appHTTP.NewAuthHandler(authSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.Env,
		calculationHandler,
		feedbackHandler,
		ratingHandler,
		authHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
