// Package alert carries one-time operator notices across redirects and
// renders them into console pages.
package alert

import (
	"encoding/base64"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
)

// CookieName is the cookie holding alerts queued for the next page render.
const CookieName = "ixp_alerts"

// maxQueued caps how many alerts survive a redirect; older ones are dropped.
const maxQueued = 8

// Kind classifies alert presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindDanger  Kind = "danger"
)

// Alert is one operator notice.
type Alert struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Success creates a success alert.
func Success(message string) Alert {
	return Alert{Kind: KindSuccess, Message: message}
}

// Info creates an informational alert.
func Info(message string) Alert {
	return Alert{Kind: KindInfo, Message: message}
}

// Warning creates a warning alert.
func Warning(message string) Alert {
	return Alert{Kind: KindWarning, Message: message}
}

// Danger creates an error alert.
func Danger(message string) Alert {
	return Alert{Kind: KindDanger, Message: message}
}

// Add queues an alert for the next page render, keeping any alerts the
// request already carries.
func Add(w http.ResponseWriter, r *http.Request, a Alert) {
	if w == nil {
		return
	}
	normalized, ok := normalize(a)
	if !ok {
		return
	}
	queued := append(readCookie(r), normalized)
	if len(queued) > maxQueued {
		queued = queued[len(queued)-maxQueued:]
	}
	payload, err := json.Marshal(queued)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear returns the queued alerts and expires the cookie.
func ReadAndClear(w http.ResponseWriter, r *http.Request) []Alert {
	if r == nil {
		return nil
	}
	if _, err := r.Cookie(CookieName); err != nil {
		return nil
	}
	if w != nil {
		Clear(w, r)
	}
	return readCookie(r)
}

// Clear expires the alert cookie.
func Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// Container holds the alerts shown on one page: those queued by a previous
// request plus any pushed while handling this one.
type Container struct {
	alerts []Alert
}

// NewContainer drains the request's queued alerts into a Container.
func NewContainer(w http.ResponseWriter, r *http.Request) *Container {
	return &Container{alerts: ReadAndClear(w, r)}
}

// Push adds an alert to the current render.
func (c *Container) Push(a Alert) {
	if c == nil {
		return
	}
	if normalized, ok := normalize(a); ok {
		c.alerts = append(c.alerts, normalized)
	}
}

// Alerts returns a copy of the pending alerts.
func (c *Container) Alerts() []Alert {
	if c == nil {
		return nil
	}
	out := make([]Alert, len(c.alerts))
	copy(out, c.alerts)
	return out
}

// HTML renders the pending alerts and empties the container, so a layout
// that calls it twice shows each alert once.
func (c *Container) HTML() template.HTML {
	if c == nil || len(c.alerts) == 0 {
		return ""
	}
	html := Render(c.alerts)
	c.alerts = nil
	return html
}

// Render renders alerts as dismissible Bootstrap alert boxes.
func Render(alerts []Alert) template.HTML {
	var b strings.Builder
	for _, a := range alerts {
		normalized, ok := normalize(a)
		if !ok {
			continue
		}
		b.WriteString(`<div class="alert alert-`)
		b.WriteString(string(normalized.Kind))
		b.WriteString(` alert-dismissible" role="alert">`)
		b.WriteString(template.HTMLEscapeString(normalized.Message))
		b.WriteString(`<button type="button" class="close" data-dismiss="alert" aria-label="Close"><span aria-hidden="true">&times;</span></button></div>`)
		b.WriteByte('\n')
	}
	return template.HTML(b.String())
}

func readCookie(r *http.Request) []Alert {
	if r == nil {
		return nil
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return nil
	}
	return decode(cookie.Value)
}

func decode(raw string) []Alert {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var alerts []Alert
	if err := json.Unmarshal(decoded, &alerts); err != nil {
		return nil
	}
	valid := alerts[:0]
	for _, a := range alerts {
		if normalized, ok := normalize(a); ok {
			valid = append(valid, normalized)
		}
	}
	if len(valid) == 0 {
		return nil
	}
	return valid
}

func normalize(a Alert) (Alert, bool) {
	a.Message = strings.TrimSpace(a.Message)
	if a.Message == "" {
		return Alert{}, false
	}
	a.Kind = Kind(strings.ToLower(strings.TrimSpace(string(a.Kind))))
	switch a.Kind {
	case KindSuccess, KindInfo, KindWarning, KindDanger:
		return a, true
	case "error":
		a.Kind = KindDanger
		return a, true
	default:
		return Alert{}, false
	}
}

func isHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")), "https")
}
