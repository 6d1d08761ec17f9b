package console

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inex/ixp-console/internal/services/console/routepath"
)

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{HTTPAddr: "  "}); err == nil {
		t.Fatal("expected error for empty http address")
	}
}

func TestNewServerRejectsInvalidLanguage(t *testing.T) {
	t.Parallel()

	_, err := NewServer(context.Background(), Config{
		HTTPAddr: "127.0.0.1:0",
		DBPath:   filepath.Join(t.TempDir(), "console.db"),
		Language: "not a language tag",
	})
	if err == nil {
		t.Fatal("expected error for invalid language")
	}
}

func TestNewServerSeedsAndServes(t *testing.T) {
	t.Setenv("IXP_CONSOLE_POST_MAX_SIZE", "16M")
	t.Setenv("IXP_CONSOLE_UPLOAD_MAX_FILESIZE", "4M")

	server, err := NewServer(context.Background(), Config{
		HTTPAddr: "127.0.0.1:0",
		DBPath:   filepath.Join(t.TempDir(), "nested", "console.db"),
		SeedDemo: true,
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	t.Cleanup(server.Close)

	rr := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Interfaces, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("interfaces status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "example-net-as64500-ipv4-vlanid1-vliid1") {
		t.Fatalf("seeded interfaces missing from %s", rr.Body.String())
	}

	rr = httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Upload, nil))
	if !strings.Contains(rr.Body.String(), "Maximum file size: 4.194 MBytes") {
		t.Fatalf("configured upload limit missing from %s", rr.Body.String())
	}
}

func TestNewServerUsesLanguageSeparators(t *testing.T) {
	server, err := NewServer(context.Background(), Config{
		HTTPAddr: "127.0.0.1:0",
		DBPath:   filepath.Join(t.TempDir(), "console.db"),
		SeedDemo: true,
		Language: "de",
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	t.Cleanup(server.Close)

	rr := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Interfaces, nil))
	if !strings.Contains(rr.Body.String(), "<td>8,450 Gbits</td>") {
		t.Fatalf("expected German decimal separator in %s", rr.Body.String())
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	server, err := NewServer(context.Background(), Config{
		HTTPAddr: "127.0.0.1:0",
		DBPath:   filepath.Join(t.TempDir(), "console.db"),
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	t.Cleanup(server.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := server.ListenAndServe(ctx); err != nil {
		t.Fatalf("ListenAndServe() error = %v", err)
	}
}

func TestNilServer(t *testing.T) {
	t.Parallel()

	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	server.Close()
}
