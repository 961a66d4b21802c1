// Package app wires configuration into the lister service and HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/config"
	httpDelivery "github.com/svfranklindemo/saharan-luma-18022026-43226/internal/delivery/http"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/infrastructure/contentapi"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/infrastructure/environment"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/infrastructure/invocation"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/usecase"
)

// shutdownTimeout bounds graceful shutdown of in-flight requests
const shutdownTimeout = 10 * time.Second

// NewContentClient builds the persisted-query client from configuration
func NewContentClient(cfg *config.Config, logger *zap.Logger) *contentapi.Client {
	return contentapi.NewClient(
		contentapi.Endpoints{
			LegacyAuthor:  cfg.Content.LegacyAuthorURL,
			LegacyPublish: cfg.Content.LegacyPublishURL,
			Author:        cfg.Content.AuthorURL,
			Publish:       cfg.Content.PublishURL,
		},
		contentapi.ClientConfig{
			Timeout:   cfg.Content.Timeout,
			RateLimit: cfg.Content.RateLimit,
			RateBurst: cfg.Content.RateBurst,
		},
		logger,
	)
}

// NewLister wires a lister service. env decides the authoring context; a nil
// env falls back to the configured author host patterns.
func NewLister(cfg *config.Config, env domain.EnvironmentDetector, tracker domain.InvocationTracker, logger *zap.Logger) *usecase.ListerService {
	if env == nil {
		env = environment.NewHostDetector(cfg.Environment.AuthorHosts)
	}
	return usecase.NewListerService(NewContentClient(cfg, logger), env, tracker, logger)
}

// Server is the HTTP service and the resources it owns
type Server struct {
	Router  *gin.Engine
	tracker *invocation.Tracker
	logger  *zap.Logger
	addr    string
}

// NewServer builds the router and its dependencies
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	tracker := invocation.NewTracker(cfg.Invocation.TTL)
	lister := NewLister(cfg, nil, tracker, logger)
	handler := httpDelivery.NewHandler(lister, logger)

	return &Server{
		Router:  httpDelivery.SetupRouter(cfg, handler, logger),
		tracker: tracker,
		logger:  logger,
		addr:    fmt.Sprintf(":%s", cfg.Server.Port),
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Run(ctx context.Context) error {
	defer s.tracker.Close()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
