package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"folio/internal/contact"
	"folio/internal/content"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server. Zero values select the defaults.
type Options struct {
	StaticDir string // served under /static when it exists
	Logger    *slog.Logger
	Tracer    oteltrace.Tracer
}

// Server serves the portfolio over HTTP. The site can be swapped while
// requests are in flight; each request sees one consistent site.
type Server struct {
	engine   *gin.Engine
	site     atomic.Pointer[content.Site]
	logger   *slog.Logger
	tracer   oteltrace.Tracer
	server   *http.Server
	listener net.Listener
}

// NewServer creates a server for site.
func NewServer(site *content.Site, opts Options) *Server {
	s := &Server{logger: opts.Logger, tracer: opts.Tracer}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.tracer == nil {
		s.tracer = noop.NewTracerProvider().Tracer("")
	}
	s.site.Store(site)

	r := gin.New()
	r.Use(gin.Recovery(), s.traceRequests(), s.logRequests())
	r.SetHTMLTemplate(templates)

	r.GET("/", s.handleIndex)
	r.GET("/projects/:slug", s.handleProject)
	r.POST("/contact", s.handleContact)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.StaticDir != "" {
		if info, err := os.Stat(opts.StaticDir); err == nil && info.IsDir() {
			r.Static("/static", opts.StaticDir)
		} else {
			s.logger.Debug("static dir not served", "dir", opts.StaticDir)
		}
	}
	s.engine = r
	return s
}

// Site returns the site currently served.
func (s *Server) Site() *content.Site {
	return s.site.Load()
}

// SetSite atomically replaces the served site.
func (s *Server) SetSite(site *content.Site) {
	s.site.Store(site)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens on addr and serves in the background. Listen errors are
// returned; serve errors are logged.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.listener = ln
	s.server = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server", "err", err)
		}
	}()
	s.logger.Info("serving", "addr", ln.Addr().String())
	return nil
}

// Addr returns the listening address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{Site: s.Site()})
}

func (s *Server) handleProject(c *gin.Context) {
	slug := strings.TrimSuffix(c.Param("slug"), ".html")
	p, err := s.Site().ProjectBySlug(slug)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, content.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.String(status, "project %q: %v", slug, err)
		return
	}
	c.HTML(http.StatusOK, "project.html", p)
}

type contactResult struct {
	Errors map[contact.Field]string
	Mailto string
}

// handleContact validates the form and answers with a mailto draft.
// Nothing is sent from the server.
func (s *Server) handleContact(c *gin.Context) {
	m := contact.Message{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}
	if err := m.Validate(); err != nil {
		c.HTML(http.StatusUnprocessableEntity, "contact.html", contactResult{Errors: contact.FieldErrors(err)})
		return
	}
	c.HTML(http.StatusOK, "contact.html", contactResult{Mailto: m.MailtoURI(s.Site().Contact.Email)})
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (s *Server) traceRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		ctx, span := s.tracer.Start(c.Request.Context(), c.Request.Method+" "+route,
			oteltrace.WithSpanKind(oteltrace.SpanKindServer))
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.String("http.target", c.Request.URL.Path),
			attribute.Int("http.status_code", status),
		)
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}
