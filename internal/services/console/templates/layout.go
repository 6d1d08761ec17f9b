package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/inex/ixp-console/internal/services/console/routepath"
)

// AppName is shown in the console title bar.
const AppName = "IXP Console"

// NavItem is one entry of the console navigation bar.
type NavItem struct {
	Label string
	Path  string
}

// DefaultNav lists the console sections.
func DefaultNav() []NavItem {
	return []NavItem{
		{Label: "Interfaces", Path: routepath.Interfaces},
		{Label: "Upload", Path: routepath.Upload},
	}
}

// LayoutOptions controls the page chrome around a view.
type LayoutOptions struct {
	Title       string
	CurrentPath string
	Nav         []NavItem
}

// Layout wraps the children in ctx with the console chrome.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := strings.TrimSpace(opts.Title)
		if title == "" {
			title = AppName
		} else {
			title = title + " | " + AppName
		}
		nav := opts.Nav
		if nav == nil {
			nav = DefaultNav()
		}

		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>")
		b.WriteString(templ.EscapeString(title))
		b.WriteString("</title>\n</head>\n<body>\n<nav class=\"navbar\">\n<span class=\"navbar-brand\">")
		b.WriteString(templ.EscapeString(AppName))
		b.WriteString("</span>\n<ul class=\"navbar-nav\">\n")
		for _, item := range nav {
			b.WriteString("<li class=\"nav-item")
			if isActive(opts.CurrentPath, item.Path) {
				b.WriteString(" active")
			}
			b.WriteString("\"><a class=\"nav-link\" href=\"")
			b.WriteString(templ.EscapeString(item.Path))
			b.WriteString("\">")
			b.WriteString(templ.EscapeString(item.Label))
			b.WriteString("</a></li>\n")
		}
		b.WriteString("</ul>\n</nav>\n<main class=\"container\">\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if children := templ.GetChildren(ctx); children != nil {
			if err := children.Render(templ.ClearChildren(ctx), w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "\n</main>\n</body>\n</html>\n")
		return err
	})
}

func isActive(currentPath, itemPath string) bool {
	currentPath = strings.TrimSpace(currentPath)
	if currentPath == "" || itemPath == "" {
		return false
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}
