// Package server serves random closed chains over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/philipparndt/polychain/pkg/chain"
	"github.com/philipparndt/polychain/pkg/config"
)

// ChainIDHeader carries a unique id for every generated chain
const ChainIDHeader = "X-Chain-Id"

// Service generates chains for the data endpoint
type Service struct {
	Length      int
	MaxAttempts int
	// Seed returns the seed for one request. Each request gets its own
	// random source.
	Seed func() uint64

	logger *slog.Logger
}

// NewService creates a service from the server settings
func NewService(cfg config.ServerConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	var counter atomic.Uint64
	return &Service{
		Length:      cfg.ChainLength,
		MaxAttempts: cfg.MaxAttempts,
		Seed: func() uint64 {
			return uint64(time.Now().UnixNano()) ^ counter.Add(1)<<32
		},
		logger: logger.With("component", "server"),
	}
}

// RegisterRoutes adds the service routes to r
func (s *Service) RegisterRoutes(r gin.IRoutes) {
	r.GET("/data_helper", s.HandleGetChain)
	r.POST("/data_helper", s.HandlePostChain)
	r.GET("/healthz", s.HandleHealth)
}

// HandleGetChain answers with a freshly generated closed chain. The trailing
// origin is left off; clients add it back when decoding.
func (s *Service) HandleGetChain(c *gin.Context) {
	started := time.Now()
	closed, attempts, err := chain.GenerateClosedChain(c.Request.Context(), s.Length, chain.NewRand(s.Seed()), s.MaxAttempts)
	if err != nil {
		s.logger.Error("chain generation failed", "length", s.Length, "attempts", attempts, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	body, err := chain.EncodePayload(closed[:len(closed)-1])
	if err != nil {
		s.logger.Error("failed to encode chain", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	id := uuid.NewString()
	s.logger.Info("chain generated",
		"id", id,
		"length", s.Length,
		"attempts", attempts,
		"duration", time.Since(started))

	c.Header(ChainIDHeader, id)
	c.Data(http.StatusOK, "application/json", body)
}

// HandlePostChain logs whatever JSON the client sends and acknowledges it
func (s *Service) HandlePostChain(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "failed to read body")
		return
	}
	s.logger.Info("received chain data", "body", string(data))
	c.String(http.StatusOK, "OK")
}

// HandleHealth reports liveness
func (s *Service) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NewRouter builds the gin engine serving svc
func NewRouter(svc *Service, debug bool) *gin.Engine {
	if debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(svc.logger))
	svc.RegisterRoutes(r)
	return r
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(started))
	}
}

// Server runs the chain service until its context is cancelled
type Server struct {
	Addr            string
	Handler         http.Handler
	ShutdownTimeout time.Duration

	logger *slog.Logger
}

// New creates a server for cfg
func New(cfg config.ServerConfig, logger *slog.Logger, debug bool) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	svc := NewService(cfg, logger)
	return &Server{
		Addr:            cfg.Addr,
		Handler:         NewRouter(svc, debug),
		ShutdownTimeout: 5 * time.Second,
		logger:          logger.With("component", "server"),
	}
}

// Run listens on Addr and shuts down gracefully when ctx is done
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
