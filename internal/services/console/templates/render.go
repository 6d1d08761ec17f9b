package templates

import (
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	texttemplate "text/template"

	"github.com/a-h/templ"
	"github.com/inex/ixp-console/internal/services/console/viewfmt"
)

//go:embed views/*.html views/*.tmpl
var viewsFS embed.FS

// View names defined by the embedded templates.
const (
	ViewInterfaces = "interfaces"
	ViewUpload     = "upload"
	ViewNagios     = "nagios"
)

// Renderer executes the console views with the view helpers registered.
// It is safe for concurrent use.
type Renderer struct {
	pages  *htmltemplate.Template
	nagios *texttemplate.Template
}

// NewRenderer parses the embedded views against the helpers of formatter.
func NewRenderer(formatter *viewfmt.Formatter) (*Renderer, error) {
	funcs := viewfmt.Funcs(formatter, nil)

	pages, err := htmltemplate.New("pages").Funcs(funcs).ParseFS(viewsFS, "views/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page views: %w", err)
	}
	nagios, err := texttemplate.New("nagios").Funcs(texttemplate.FuncMap(funcs)).ParseFS(viewsFS, "views/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse nagios views: %w", err)
	}
	return &Renderer{pages: pages, nagios: nagios}, nil
}

// Page returns a component rendering the named html view with data. The
// view's "alerts" calls render alerts.
func (r *Renderer) Page(name string, data any, alerts viewfmt.AlertRenderer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		page, err := r.pages.Clone()
		if err != nil {
			return fmt.Errorf("clone views: %w", err)
		}
		page.Funcs(htmltemplate.FuncMap{viewfmt.FuncAlerts: viewfmt.AlertsFunc(alerts)})
		if err := page.ExecuteTemplate(w, name, data); err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		return nil
	})
}

// NagiosHost writes the Nagios host definition of one interface.
func (r *Renderer) NagiosHost(w io.Writer, data any) error {
	if err := r.nagios.ExecuteTemplate(w, ViewNagios, data); err != nil {
		return fmt.Errorf("render %s: %w", ViewNagios, err)
	}
	return nil
}
