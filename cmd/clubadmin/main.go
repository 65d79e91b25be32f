// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/profnitt/clubadmin/internal/cache"
	"github.com/profnitt/clubadmin/internal/config"
	"github.com/profnitt/clubadmin/internal/handler"
	"github.com/profnitt/clubadmin/internal/middleware"
	"github.com/profnitt/clubadmin/internal/service"
	"github.com/profnitt/clubadmin/internal/session"
	"github.com/profnitt/clubadmin/internal/store"
	"github.com/profnitt/clubadmin/internal/upload"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "clubadmin - ProfNITT website admin backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUBADMIN_SESSION_SECRET   Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUBADMIN_DB_PATH          SQLite database path (default: ./data/clubadmin.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUBADMIN_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUBADMIN_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUBADMIN_REDIS_URL        Redis URL for the dashboard cache (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUBADMIN_CLOUDINARY_URL   Cloudinary URL for image uploads (optional)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("clubadmin %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (optional)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}()

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	dashboardCache := cache.New(cfg.RedisURL, cfg.CachePrefix, cacheTTL)
	defer func() {
		if err := dashboardCache.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()

	var uploader upload.Uploader
	if cfg.UploadsEnabled() {
		cu, err := upload.NewCloudinaryUploader(cfg.CloudinaryURL, "clubadmin")
		if err != nil {
			return fmt.Errorf("configuring image uploads: %w", err)
		}
		uploader = cu
		slog.Info("image uploads enabled", "host", "cloudinary")
	} else {
		slog.Warn("image uploads disabled", "note", "CLUBADMIN_CLOUDINARY_URL not set")
	}

	coordinator := service.NewCoordinator(db, logger)

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	slog.Info("login protection initialized")

	globalLimiter := middleware.NewGlobalRateLimiter(10, 20)
	securityHeaders := middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment()))

	events := handler.NewEventsHandler(coordinator)
	projects := handler.NewProjectsHandler(coordinator)
	members := handler.NewMembersHandler(coordinator)
	gallery := handler.NewGalleryHandler(coordinator)
	actionLog := handler.NewActionLogHandler(coordinator.Audit())
	dashboard := handler.NewDashboardHandler(service.NewDashboardService(db), dashboardCache, cacheTTL)
	uploads := handler.NewUploadsHandler(uploader)
	authHandler := handler.NewAuthHandler(db, sessionManager, loginProtection)
	health := handler.NewHealthHandler(db)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(securityHeaders)
	r.Use(sessionManager.LoadAndSave)
	r.Use(globalLimiter.Middleware())

	r.Get("/health", health.Health)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.With(loginProtection.Middleware()).Post("/login", authHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(sessionManager), middleware.LoadAdmin(sessionManager, db))
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})
	})

	// Everything below requires an authenticated admin session.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(sessionManager))
		r.Use(middleware.LoadAdmin(sessionManager, db))

		registerCRUD(r, "/api/events", crudHandlers{
			List: events.List, Create: events.Create, Get: events.Get,
			Update: events.Update, Delete: events.Delete,
		})
		registerCRUD(r, "/api/projects", crudHandlers{
			List: projects.List, Create: projects.Create, Get: projects.Get,
			Update: projects.Update, Delete: projects.Delete,
		})
		registerCRUD(r, "/api/members", crudHandlers{
			List: members.List, Create: members.Create, Get: members.Get,
			Update: members.Update, Delete: members.Delete,
		})
		registerCRUD(r, "/api/gallery", crudHandlers{
			List: gallery.List, Create: gallery.Create, Get: gallery.Get,
			Update: gallery.Update, Delete: gallery.Delete,
		})

		r.Get("/api/action-log", actionLog.List)
		r.Post("/api/action-log", actionLog.Append)

		r.Get("/api/dashboard/summary", dashboard.Summary)
		r.Get("/api/dashboard/activity", dashboard.Activity)
		r.Get("/api/dashboard/logins", dashboard.Logins)

		r.Post("/api/uploads", uploads.Upload)
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// crudHandlers defines the standard CRUD handler methods.
type crudHandlers struct {
	List   http.HandlerFunc
	Create http.HandlerFunc
	Get    http.HandlerFunc
	Update http.HandlerFunc
	Delete http.HandlerFunc
}

// registerCRUD registers standard CRUD routes for a resource.
// Routes: GET /, POST /, GET /{id}, PUT /{id}, DELETE /{id}
func registerCRUD(r chi.Router, base string, h crudHandlers) {
	r.Get(base, h.List)
	r.Post(base, h.Create)
	r.Get(base+"/{id}", h.Get)
	r.Put(base+"/{id}", h.Update)
	r.Delete(base+"/{id}", h.Delete)
}
