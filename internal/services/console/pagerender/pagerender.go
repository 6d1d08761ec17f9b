// Package pagerender centralizes console page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/inex/ixp-console/internal/services/console/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/inex/ixp-console/internal/services/console/pagerender"

// Page describes one full console page response.
type Page struct {
	Title      string
	StatusCode int
	Body       templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders page inside the console layout. Nothing is written when
// rendering fails, so the caller can still send an error response.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}

	ctx := context.Background()
	currentPath := ""
	if r != nil {
		ctx = r.Context()
		currentPath = r.URL.Path
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, "console.render_page", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()
	span.SetAttributes(
		attribute.String("console.page.title", page.Title),
		attribute.String("url.path", currentPath),
	)

	var buf bytes.Buffer
	layout := templates.Layout(templates.LayoutOptions{Title: page.Title, CurrentPath: currentPath})
	if err := layout.Render(templ.WithChildren(ctx, body), &buf); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render page")
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WriteText writes a plain-text response produced by render.
func WriteText(w http.ResponseWriter, statusCode int, render func(io.Writer) error) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	var buf bytes.Buffer
	if render != nil {
		if err := render(&buf); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
