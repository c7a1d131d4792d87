package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Great2008/reads-web-app/internal/api"
	apiMiddleware "github.com/Great2008/reads-web-app/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.db,
		app.userStore,
		app.walletStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
	)
	userHandler := api.NewUserHandler(app.userStore, app.progressStore, app.rewardStore)
	learnHandler := api.NewLearnHandler(app.catalogStore, app.progressStore)
	quizHandler := api.NewQuizHandler(app.rewardService)
	walletHandler := api.NewWalletHandler(app.walletStore, app.rewardStore)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Authentication endpoints (public)
	r.Post("/auth/signup", authHandler.Signup)
	r.Post("/auth/login", authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/user/profile", userHandler.Profile)
		r.Get("/user/stats", userHandler.Stats)

		r.Get("/lessons/categories", learnHandler.Categories)
		r.Get("/lessons/category/{categoryID}", learnHandler.Lessons)
		r.Get("/lessons/{lessonID}", learnHandler.Lesson)
		r.Post("/lesson/{lessonID}/complete", learnHandler.CompleteLesson)

		r.Get("/quiz/start/{lessonID}", learnHandler.Questions)
		r.Post("/quiz/submit", quizHandler.Submit)

		r.Get("/wallet/balance", walletHandler.Balance)
		r.Get("/rewards/summary", walletHandler.RewardSummary)
	})

	// Health check endpoint
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
