package alert

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAddAndReadAndClearRoundTrip(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	writeRR := httptest.NewRecorder()

	Add(writeRR, req, Success("Upload accepted"))
	cookie := responseCookie(t, writeRR)
	req.AddCookie(cookie)

	// a second alert in a later request keeps the first one
	writeRR = httptest.NewRecorder()
	Add(writeRR, req, Warning("File is close to the limit"))
	next := httptest.NewRequest(http.MethodGet, "/upload", nil)
	next.AddCookie(responseCookie(t, writeRR))

	readRR := httptest.NewRecorder()
	alerts := ReadAndClear(readRR, next)
	if len(alerts) != 2 {
		t.Fatalf("ReadAndClear() returned %d alerts, want 2", len(alerts))
	}
	if alerts[0].Kind != KindSuccess || alerts[0].Message != "Upload accepted" {
		t.Fatalf("alerts[0] = %+v", alerts[0])
	}
	if alerts[1].Kind != KindWarning {
		t.Fatalf("alerts[1].Kind = %q", alerts[1].Kind)
	}
	if readRR.Header().Get("Set-Cookie") == "" {
		t.Fatal("expected clear Set-Cookie header")
	}
}

func TestReadAndClearInvalidCookieValueStillClears(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/interfaces", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64!"})
	rr := httptest.NewRecorder()

	if alerts := ReadAndClear(rr, req); len(alerts) != 0 {
		t.Fatalf("ReadAndClear() = %+v, want none", alerts)
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatal("expected clear Set-Cookie header")
	}
}

func TestReadAndClearWithoutCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/interfaces", nil)
	rr := httptest.NewRecorder()
	if alerts := ReadAndClear(rr, req); alerts != nil {
		t.Fatalf("ReadAndClear() = %+v, want nil", alerts)
	}
	if got := rr.Header().Get("Set-Cookie"); got != "" {
		t.Fatalf("Set-Cookie = %q, want empty", got)
	}
}

func TestAddIgnoresInvalidAlert(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	Add(rr, req, Alert{Kind: KindSuccess, Message: "  "})
	Add(rr, req, Alert{Kind: "shout", Message: "hello"})
	if got := rr.Header().Get("Set-Cookie"); got != "" {
		t.Fatalf("Set-Cookie = %q, want empty", got)
	}
}

func TestAddCapsQueuedAlerts(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for i := 0; i < maxQueued+3; i++ {
		rr := httptest.NewRecorder()
		Add(rr, req, Info(strings.Repeat("x", i+1)))
		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(responseCookie(t, rr))
	}

	alerts := ReadAndClear(httptest.NewRecorder(), req)
	if len(alerts) != maxQueued {
		t.Fatalf("got %d alerts, want %d", len(alerts), maxQueued)
	}
	if alerts[len(alerts)-1].Message != strings.Repeat("x", maxQueued+3) {
		t.Fatalf("expected newest alert last, got %q", alerts[len(alerts)-1].Message)
	}
}

func TestAddMarksCookieSecureBehindTLSProxy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()
	Add(rr, req, Info("hi"))
	if cookie := responseCookie(t, rr); !cookie.Secure {
		t.Fatal("expected secure cookie")
	}
}

func TestContainerHTML(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	Add(rr, req, Danger("Upload <rejected>"))
	req.AddCookie(responseCookie(t, rr))

	container := NewContainer(httptest.NewRecorder(), req)
	container.Push(Alert{Kind: "error", Message: "second"})
	container.Push(Alert{Kind: KindInfo})

	if got := len(container.Alerts()); got != 2 {
		t.Fatalf("Alerts() has %d entries, want 2", got)
	}

	html := string(container.HTML())
	if !strings.Contains(html, `class="alert alert-danger alert-dismissible"`) {
		t.Fatalf("missing danger class in %q", html)
	}
	if !strings.Contains(html, "Upload &lt;rejected&gt;") {
		t.Fatalf("message not escaped in %q", html)
	}
	if strings.Count(html, `role="alert"`) != 2 {
		t.Fatalf("expected two alerts in %q", html)
	}
	if again := container.HTML(); again != "" {
		t.Fatalf("second HTML() = %q, want empty", again)
	}
}

func TestNilContainer(t *testing.T) {
	t.Parallel()

	var container *Container
	container.Push(Info("ignored"))
	if container.HTML() != "" || container.Alerts() != nil {
		t.Fatal("nil container should render nothing")
	}
}

func responseCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	header := rr.Header().Get("Set-Cookie")
	if header == "" {
		t.Fatal("expected Set-Cookie header")
	}
	cookies := (&http.Response{Header: http.Header{"Set-Cookie": {header}}}).Cookies()
	if len(cookies) != 1 {
		t.Fatalf("parse Set-Cookie %q: got %d cookies", header, len(cookies))
	}
	return cookies[0]
}
