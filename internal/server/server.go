// Package server implements the /predict classification endpoint with gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DefaultMaxBodyBytes caps request bodies at 32 KB.
const DefaultMaxBodyBytes = 32 * 1024

// DefaultMinConfidence is the gating threshold used when none is configured.
const DefaultMinConfidence = 0.55

// Config holds the endpoint configuration.
type Config struct {
	Emoji         map[string]string
	MinConfidence float64
	MaxBodyBytes  int64
}

// DefaultConfig returns the default endpoint configuration.
func DefaultConfig() Config {
	emoji := make(map[string]string, len(DefaultEmoji))
	for k, v := range DefaultEmoji {
		emoji[k] = v
	}
	return Config{
		Emoji:         emoji,
		MinConfidence: DefaultMinConfidence,
		MaxBodyBytes:  DefaultMaxBodyBytes,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("min confidence must be in [0,1], got %v", c.MinConfidence)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive, got %d", c.MaxBodyBytes)
	}
	return nil
}

// Handler serves classification requests.
type Handler struct {
	scorer Scorer
	config Config
}

// NewHandler creates a handler backed by scorer.
func NewHandler(cfg Config, scorer Scorer) (*Handler, error) {
	if scorer == nil {
		return nil, errors.New("scorer is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Emoji == nil {
		cfg.Emoji = DefaultEmoji
	}
	return &Handler{scorer: scorer, config: cfg}, nil
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), limitBody(h.config.MaxBodyBytes))

	router.POST("/predict", h.Predict)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// Run serves router on addr until ctx is cancelled.
func Run(ctx context.Context, addr string, router http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("Classifier endpoint listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		slog.Info("Shutting down classifier endpoint")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	}
}

func limitBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("Handled request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"request_id", c.GetHeader("X-Request-ID"),
			"elapsed", time.Since(start))
	}
}
