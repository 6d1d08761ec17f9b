package viewfmt

import (
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LimitSource supplies the raw request size limits, each formatted as a
// number with an optional unit letter such as "8M" or "512k".
type LimitSource interface {
	PostMaxSize() string
	UploadMaxFilesize() string
}

// Option customizes a Formatter.
type Option func(*Formatter)

// WithLanguage renders numbers with the separators of tag instead of English.
func WithLanguage(tag language.Tag) Option {
	return func(f *Formatter) {
		f.printer = message.NewPrinter(tag)
	}
}

// WithLimitSource sets where MaxFileUploadSize reads its limits from.
func WithLimitSource(source LimitSource) Option {
	return func(f *Formatter) {
		f.limits = source
	}
}

// Formatter renders values for console views. It is safe for concurrent use.
type Formatter struct {
	printer *message.Printer
	limits  LimitSource

	uploadOnce  sync.Once
	uploadBytes float64
}

// NewFormatter builds a Formatter that renders English-style numbers
// ("1,234.500") unless configured otherwise.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{printer: message.NewPrinter(language.English)}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	if f.printer == nil {
		f.printer = message.NewPrinter(language.English)
	}
	return f
}
