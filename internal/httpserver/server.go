// Package httpserver serves the placeholder backend the shell's hello call
// and mock resources can be pointed at.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tinytelemetry/dashshell/internal/model"
	"github.com/tinytelemetry/dashshell/internal/nav"
)

// Source is the narrow contract the resource endpoint needs.
type Source interface {
	Fetch(ctx context.Context, key string) (any, error)
}

// Server provides the placeholder HTTP API.
type Server struct {
	addr      string
	source    Source
	router    *nav.Router
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new HTTP API server. router may be nil, in which case
// the navigation endpoint is not registered.
func NewServer(addr string, source Source, router *nav.Router) *Server {
	if addr == "" {
		addr = model.DefaultAPIAddr
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		source: source,
		router: router,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Addr returns the listen address, resolved to the bound port after Start.
func (s *Server) Addr() string { return s.addr }

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/hello", s.handleHello)
	r.GET("/api/health", s.handleHealth)
	if s.router != nil {
		r.GET("/api/nav", s.handleNav)
	}
	r.GET("/api/:resource", s.handleResource)
	return r
}

// Start binds the listen address. Serve runs the accept loop; a bind
// failure is reported here, before anything is served.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.addr = listener.Addr().String()
	s.startTime = time.Now()
	return nil
}

// Serve accepts connections until Stop is called. A clean shutdown returns
// nil; any other failure of the accept loop is returned.
func (s *Server) Serve() error {
	if s.server == nil || s.listener == nil {
		return errors.New("httpserver: Serve called before Start")
	}
	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpserver: serving %s: %w", s.addr, err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.server.Shutdown(ctx)
	// Shutdown only closes listeners Serve has seen.
	if s.listener != nil {
		_ = s.listener.Close()
	}
	return err
}

func (s *Server) handleHello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello, world!"})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

type navEntry struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Parent   string `json:"parent,omitempty"`
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Resource string `json:"resource,omitempty"`
}

func (s *Server) handleNav(c *gin.Context) {
	flat := s.router.Flatten()
	entries := make([]navEntry, 0, len(flat))
	for _, d := range flat {
		entries = append(entries, navEntry{
			ID:       d.ID,
			Label:    d.Label,
			Parent:   d.ParentID,
			Kind:     d.Content.Kind.String(),
			Title:    d.Content.Title,
			Resource: d.Content.Resource,
		})
	}
	c.JSON(http.StatusOK, gin.H{"sections": entries})
}

func (s *Server) handleResource(c *gin.Context) {
	key := "/api/" + c.Param("resource")
	payload, err := s.source.Fetch(c.Request.Context(), key)
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			c.JSON(http.StatusServiceUnavailable, appErr)
			return
		}
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payload)
}
