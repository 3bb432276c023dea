package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"therapycare-api/internal/config"
	"therapycare-api/internal/handler"
	"therapycare-api/internal/middleware"
	"therapycare-api/internal/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "therapycare-server",
		Short: "TherapyCare booking API server",
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := pool.Ping(context.Background()); err != nil {
				return err
			}
			log.Info().Msg("connected to postgres")

			if err := applyMigrations(context.Background(), pool, cfg.MigrationsDir, log); err != nil {
				log.Warn().Err(err).Msg("migrations")
			}

			st := store.New(pool)
			h := handler.New(st, cfg.JWTSecret, log)
			rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

			e := echo.New()
			e.HideBanner = true
			e.Use(echomw.Recover())
			e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
				AllowOrigins: cfg.CORSOrigins,
				AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
			}))
			e.Use(requestLogger(log))
			h.RegisterRoutes(e, rl)

			go func() {
				log.Info().Str("port", cfg.Port).Msg("http listening")
				if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("http server")
				}
			}()

			ch := make(chan os.Signal, 1)
			signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
			<-ch
			log.Info().Msg("shutting down")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(ctx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()
			return applyMigrations(context.Background(), pool, cfg.MigrationsDir, log)
		},
	}
}

// applyMigrations runs every .sql file in dir in name order. The files
// are idempotent (IF NOT EXISTS), so re-running on boot is fine.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool, dir string, log zerolog.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		sql, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return err
		}
		log.Info().Str("migration", name).Msg("applied")
	}
	return nil
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			log.Info().
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Msg("request")
			return err
		}
	}
}
