package main

import (
	"database/sql"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/healthtrackai/health-tracker-backend/internal/ai"
	"github.com/healthtrackai/health-tracker-backend/internal/config"
	"github.com/healthtrackai/health-tracker-backend/internal/db"
	"github.com/healthtrackai/health-tracker-backend/internal/handler"
	"github.com/healthtrackai/health-tracker-backend/internal/middleware"
	"github.com/healthtrackai/health-tracker-backend/internal/repository"
)

const maxBodyBytes = 1 << 20

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	router := setupRouter(cfg, database)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-API-Key"},
	}).Handler(router)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("health tracker listening on :%s", cfg.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupRouter(cfg *config.Config, database *sql.DB) *mux.Router {
	accountRepo := repository.NewAccountRepository(database)
	entryRepo := repository.NewEntryRepository(database)
	goalRepo := repository.NewGoalRepository(database)
	insightRepo := repository.NewInsightRepository(database)

	aiClient := ai.NewClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)

	authHandler := handler.NewAuthHandler(cfg.JWTSecret, accountRepo)
	accountHandler := handler.NewAccountHandler(accountRepo)
	entryHandler := handler.NewEntryHandler(entryRepo)
	dashboardHandler := handler.NewDashboardHandler(entryRepo, accountRepo)
	goalHandler := handler.NewGoalHandler(goalRepo)
	insightHandler := handler.NewInsightHandler(entryRepo, goalRepo, insightRepo, aiClient)
	adminHandler := handler.NewAdminHandler(entryRepo, goalRepo)

	router := mux.NewRouter()
	router.Use(middleware.SecurityHeaders)
	router.Use(middleware.RequestLogger)
	router.Use(limitBody)
	router.Use(middleware.APIKeyMiddleware(cfg.APIKey))

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	loginLimiter := middleware.NewRateLimiter(5, 15*time.Minute)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Handle("/register", http.HandlerFunc(authHandler.Register)).Methods(http.MethodPost)
	auth.Handle("/login", loginLimiter.Middleware(http.HandlerFunc(authHandler.Login))).Methods(http.MethodPost)

	api.HandleFunc("/tips/{topic}", dashboardHandler.Tip).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	protected.HandleFunc("/account", accountHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/account", accountHandler.Update).Methods(http.MethodPatch)

	protected.HandleFunc("/entries", entryHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/entries", entryHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/entries/latest", entryHandler.Latest).Methods(http.MethodGet)
	protected.HandleFunc("/entries/{date}", entryHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/dashboard/summary", dashboardHandler.Summary).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/score", dashboardHandler.Score).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/trends", dashboardHandler.Trends).Methods(http.MethodGet)

	// AI generation burns upstream tokens, so it gets its own limiter.
	aiLimiter := middleware.NewRateLimiter(10, time.Hour)

	protected.HandleFunc("/goals", goalHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/goals", goalHandler.List).Methods(http.MethodGet)
	protected.Handle("/goals/recommendations", aiLimiter.Middleware(http.HandlerFunc(insightHandler.RecommendGoals))).Methods(http.MethodPost)
	protected.HandleFunc("/goals/{id}", goalHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/goals/{id}/progress", goalHandler.UpdateProgress).Methods(http.MethodPatch)
	protected.HandleFunc("/goals/{id}/status", goalHandler.UpdateStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/goals/{id}", goalHandler.Delete).Methods(http.MethodDelete)

	protected.Handle("/insights/generate", aiLimiter.Middleware(http.HandlerFunc(insightHandler.Generate))).Methods(http.MethodPost)
	protected.Handle("/insights/trends", aiLimiter.Middleware(http.HandlerFunc(insightHandler.AnalyzeTrends))).Methods(http.MethodPost)
	protected.HandleFunc("/insights", insightHandler.List).Methods(http.MethodGet)

	protected.HandleFunc("/admin/stats", adminHandler.Stats).Methods(http.MethodGet)
	protected.HandleFunc("/admin/export", adminHandler.Export).Methods(http.MethodGet)

	return router
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
