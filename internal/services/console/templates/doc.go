// Package templates renders console pages.
//
// Page bodies are html/template views that call the helpers registered by
// viewfmt.Funcs; the surrounding layout is a templ component.
package templates
