package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/phluxx/gridtips/internal/config"
	"github.com/phluxx/gridtips/internal/handler/v1handler"
	"github.com/phluxx/gridtips/internal/store"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	mysql, err := store.NewMySQL(cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer mysql.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := mysql.Ping(ctx); err != nil {
		slog.Error("database unreachable", "error", err)
		os.Exit(1)
	}
	if err := mysql.EnsureSchema(ctx); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}
	if err := mysql.SeedAdmin(ctx, "admin", "admin123"); err != nil {
		slog.Error("failed to seed admin user", "error", err)
		os.Exit(1)
	}

	h := v1handler.New(cfg, mysql)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Http.CorsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		AllowCredentials: true,
	})

	addr := ":" + cfg.Http.Port
	slog.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, c.Handler(h)); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
