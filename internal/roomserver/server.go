package roomserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roomvar/roomvar/internal/discovery"
	"github.com/roomvar/roomvar/internal/logging"
	"github.com/roomvar/roomvar/internal/roomapi"
	"github.com/roomvar/roomvar/internal/version"
)

// Config holds the server configuration
type Config struct {
	Host        string // Interface to bind (empty = all interfaces)
	Port        int    // HTTP port
	LogLevel    string
	Announce    bool   // Advertise the server over mDNS while running
	DefaultRoom string // Room pre-created at startup (empty = none)
}

// Server represents the practice room server
type Server struct {
	config     *Config
	store      *Store
	hub        *Hub
	router     *gin.Engine
	httpServer *http.Server
	announcer  *discovery.Announcer
}

// New creates a new Server instance
func New(config *Config) (*Server, error) {
	// Initialize logging
	if err := logging.Initialize(config.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	store := NewStore()
	if config.DefaultRoom != "" {
		store.EnsureRoom(config.DefaultRoom)
	}

	hub := newHub(func(roomID string) []roomapi.Variable {
		vars, _ := store.List(roomID)
		return vars
	})
	go hub.run()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())

	s := &Server{
		config: config,
		store:  store,
		hub:    hub,
		router: router,
	}
	s.registerRoutes(router)

	return s, nil
}

// requestLogger routes gin request logging through the structured logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		logging.LogHTTPRequest(c.ClientIP(), c.Request.Method, c.Request.URL.Path)

		c.Next()

		logging.LogHTTPResponse(c.ClientIP(), c.Writer.Status(), time.Since(start))
	}
}

// Start starts the server and blocks until shutdown
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	logging.Info("Starting room server",
		zap.String("addr", addr),
		zap.String("log_level", s.config.LogLevel),
		zap.String("default_room", s.config.DefaultRoom),
		zap.Bool("announce", s.config.Announce),
	)

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	if s.config.Announce {
		announcer, err := discovery.Announce("", s.config.Port, s.config.DefaultRoom, version.Version)
		if err != nil {
			// Discovery is a convenience; the API still works without it.
			logging.Warn("mDNS announcement failed", zap.Error(err))
		} else {
			s.announcer = announcer
			logging.Info("Announcing server over mDNS",
				zap.String("service", discovery.ServiceType),
				zap.Int("port", s.config.Port),
			)
		}
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Serve in a goroutine so we can watch for signals
	errChan := make(chan error, 1)
	go func() {
		logging.Info("Server listening for connections", zap.String("addr", addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
			return
		}
		errChan <- nil
	}()

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.Shutdown(ctx)
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	if s.announcer != nil {
		s.announcer.Shutdown()
	}

	var err error
	if s.httpServer != nil {
		if err = s.httpServer.Shutdown(ctx); err != nil {
			logging.Error("Error draining HTTP server", zap.Error(err))
		}
	}

	s.hub.Stop()

	// Sync logger
	logging.Sync()

	return err
}

// Store exposes the backing store for seeding and tests.
func (s *Server) Store() *Store {
	return s.store
}

// Handler exposes the HTTP handler for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
