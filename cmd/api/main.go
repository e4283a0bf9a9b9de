package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"insighthub/cmd/app"
	"insighthub/internal/config"
	handlers "insighthub/internal/handler"
	"insighthub/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	db, services, mailer := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, mailer, db, cfg, logger)

	router := mux.NewRouter()
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// Public API routes.
	public := router.PathPrefix("/api").Subrouter()
	public.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	public.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	public.HandleFunc("/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)
	public.HandleFunc("/contact", handler.Contact).Methods(http.MethodPost)
	public.HandleFunc("/posts", handler.ListPosts).Methods(http.MethodGet)
	public.HandleFunc("/posts/{id:[0-9]+}", handler.GetPost).Methods(http.MethodGet)

	// Routes requiring an authenticated session.
	protected := router.PathPrefix("/api").Subrouter()
	protected.Use(mux.MiddlewareFunc(middleware.Auth(cfg)))
	protected.HandleFunc("/me", handler.GetCurrentUser).Methods(http.MethodGet)
	protected.HandleFunc("/me", handler.DeleteAccount).Methods(http.MethodDelete)
	protected.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/change-password", handler.ChangePassword).Methods(http.MethodPost)
	protected.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	protected.HandleFunc("/posts/{id:[0-9]+}/comments", handler.AddComment).Methods(http.MethodPost)
	protected.HandleFunc("/users/{id:[0-9]+}/profile", handler.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id:[0-9]+}/follow", handler.Follow).Methods(http.MethodPost)
	protected.HandleFunc("/users/{id:[0-9]+}/follow", handler.Unfollow).Methods(http.MethodDelete)
	protected.HandleFunc("/profile", handler.UpdateProfile).Methods(http.MethodPut)
	protected.HandleFunc("/profile/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	// Admin-only post mutations.
	admin := router.PathPrefix("/api").Subrouter()
	admin.Use(mux.MiddlewareFunc(middleware.Auth(cfg)), middleware.AdminOnly)
	admin.HandleFunc("/posts/{id:[0-9]+}", handler.UpdatePost).Methods(http.MethodPut)
	admin.HandleFunc("/posts/{id:[0-9]+}", handler.DeletePost).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.CORS,
		middleware.Logging(logger),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Info("server starting", slog.String("addr", addr), slog.String("db", cfg.DB.Name))

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
