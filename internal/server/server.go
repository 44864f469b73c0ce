// Package server serves the web landing page as static files.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/cors"
)

const (
	DefaultPort = 3000
	DefaultHost = "0.0.0.0"
	DefaultDir  = "public"

	shutdownTimeout = 5 * time.Second
	indexPage       = "index.html"
)

// Config says where to listen and what to serve.
type Config struct {
	Host string
	Port int
	Dir  string
}

// Addr returns host:port for net.Listen.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ConfigFromEnv builds a Config for dir from PORT and HOST, falling back to
// 3000 and 0.0.0.0. An empty dir serves DefaultDir.
func ConfigFromEnv(dir string) (Config, error) {
	cfg := Config{Host: DefaultHost, Port: DefaultPort, Dir: dir}
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	if h := os.Getenv("HOST"); h != "" {
		cfg.Host = h
	}
	if p := os.Getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port < 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", p)
		}
		cfg.Port = port
	}
	return cfg, nil
}

// Server is a static file server with CORS and request logging.
type Server struct {
	cfg    Config
	logger *log.Logger
}

// New returns a server for cfg. A nil logger writes to stderr.
func New(cfg Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(os.Stderr, "orbfolio ", log.LstdFlags)
	}
	return &Server{cfg: cfg, logger: logger}
}

// Handler returns the full handler chain: logging, CORS, then the files.
func (s *Server) Handler() http.Handler {
	files := readOnly(indexDirect(http.FileServer(http.Dir(s.cfg.Dir))))
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
		AllowedHeaders: []string{"*"},
	})
	return s.logRequests(c.Handler(files))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if fi, err := os.Stat(s.cfg.Dir); err != nil {
		return fmt.Errorf("static dir: %w (pass the web build directory: orbfolio serve DIR)", err)
	} else if !fi.IsDir() {
		return fmt.Errorf("static dir: %s is not a directory", s.cfg.Dir)
	}

	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	port := s.cfg.Port
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	s.logger.Printf("Listening on http://%s:%d", s.cfg.Host, port)

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// indexDirect serves ".../index.html" as its directory, so the page answers
// 200 instead of http.FileServer's redirect to "./".
func indexDirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if dir, ok := strings.CutSuffix(r.URL.Path, "/"+indexPage); ok {
			r2 := new(http.Request)
			*r2 = *r
			u := *r.URL
			u.Path = dir + "/"
			u.RawPath = ""
			r2.URL = &u
			r = r2
		}
		next.ServeHTTP(w, r)
	})
}

func readOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	})
}
