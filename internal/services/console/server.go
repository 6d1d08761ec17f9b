package console

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/inex/ixp-console/internal/platform/timeouts"
	"github.com/inex/ixp-console/internal/services/console/limits"
	"github.com/inex/ixp-console/internal/services/console/storage"
	consolesqlite "github.com/inex/ixp-console/internal/services/console/storage/sqlite"
	"github.com/inex/ixp-console/internal/services/console/templates"
	"github.com/inex/ixp-console/internal/services/console/viewfmt"
	"golang.org/x/text/language"
)

// Config defines the inputs for the console process.
type Config struct {
	HTTPAddr string
	DBPath   string
	// SeedDemo loads demo members into an empty store at startup.
	SeedDemo bool
	// Language selects number separators, e.g. "en" or "de".
	Language string
}

// Server hosts the console pages over HTTP.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      storage.Store
}

// NewServer builds a configured console server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	tag := language.English
	if lang := strings.TrimSpace(config.Language); lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("parse language %q: %w", lang, err)
		}
		tag = parsed
	}
	settings, err := limits.Load()
	if err != nil {
		return nil, fmt.Errorf("load upload limits: %w", err)
	}

	store, err := openConsoleStore(config.DBPath)
	if err != nil {
		return nil, err
	}
	if config.SeedDemo {
		seeded, err := storage.SeedDemo(ctx, store)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("seed demo members: %w", err)
		}
		if seeded > 0 {
			log.Printf("seeded %d demo member interfaces", seeded)
		}
	}

	formatter := viewfmt.NewFormatter(viewfmt.WithLanguage(tag), viewfmt.WithLimitSource(settings))
	renderer, err := templates.NewRenderer(formatter)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	handler, err := NewHandler(store, formatter, renderer)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store: store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("console server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("console listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the store held by the server.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close console store: %v", err)
	}
}

func openConsoleStore(path string) (*consolesqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = filepath.Join("data", "console.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := consolesqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open console sqlite store: %w", err)
	}
	return store, nil
}
