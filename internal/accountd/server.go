package accountd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"foodnetwork/pkg/logger"
)

// Server manages the account service HTTP API
type Server struct {
	router *gin.Engine
	store  *Store
	config Config
	http   *http.Server
}

// NewServer creates a server with all routes registered
func NewServer(cfg Config, store *Store) *Server {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger())
	router.Use(RateLimitMiddleware(cfg.RateLimit, cfg.Burst))

	s := &Server{
		router: router,
		store:  store,
		config: cfg,
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthCheck)

	s.router.POST("/sign-up", s.signUp)
	s.router.GET("/api-keys/verify", s.verifyKey)

	authed := s.router.Group("", BasicAuthMiddleware(s.store))
	{
		authed.POST("/login", s.login)
		authed.POST("/api-keys", s.createKey)
		authed.DELETE("/api-keys/:id", s.rotateKey)
	}
}

// Router returns the gin router (for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start serves on the configured address until Shutdown is called
func (s *Server) Start() error {
	logger.Infof("account service listening on %s", s.config.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
