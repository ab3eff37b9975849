package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/projecthub/community-backend/internal/adapter/postgres"
	activityrepo "github.com/projecthub/community-backend/internal/adapter/postgres/activity"
	analyticsrepo "github.com/projecthub/community-backend/internal/adapter/postgres/analytics"
	bookmarkrepo "github.com/projecthub/community-backend/internal/adapter/postgres/bookmark"
	modlogrepo "github.com/projecthub/community-backend/internal/adapter/postgres/modlog"
	pollrepo "github.com/projecthub/community-backend/internal/adapter/postgres/poll"
	postrepo "github.com/projecthub/community-backend/internal/adapter/postgres/post"
	reactionrepo "github.com/projecthub/community-backend/internal/adapter/postgres/reaction"
	spacerepo "github.com/projecthub/community-backend/internal/adapter/postgres/space"
	"github.com/projecthub/community-backend/internal/auth"
	"github.com/projecthub/community-backend/internal/config"
	pollsvc "github.com/projecthub/community-backend/internal/service/poll"
	postsvc "github.com/projecthub/community-backend/internal/service/post"
	spacesvc "github.com/projecthub/community-backend/internal/service/space"
	"github.com/projecthub/community-backend/internal/transport/middleware"
	"github.com/projecthub/community-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services, and the HTTP transport, and
// serves until the context is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	spaces := spacerepo.New(pool)
	posts := postrepo.New(pool)
	polls := pollrepo.New(pool)
	reactions := reactionrepo.New(pool)
	bookmarks := bookmarkrepo.New(pool)
	modlog := modlogrepo.New(pool)
	analytics := analyticsrepo.New(pool)
	activity := activityrepo.New(pool)

	spaceService := spacesvc.NewService(logger, spaces, posts, analytics, txManager)
	postService := postsvc.NewService(logger, posts, spaces, polls, reactions, bookmarks, modlog, analytics, activity, txManager)
	pollService := pollsvc.NewService(logger, polls, txManager)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(cfg.CORS, rest.RouterDeps{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Spaces:    rest.NewSpaceHandler(logger, spaceService),
		Posts:     rest.NewPostHandler(logger, postService, pollService),
		Auth:      middleware.Auth(jwtManager),
		RateLimit: rateLimiter.Limit(cfg.Server.RateLimitPerMin),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
