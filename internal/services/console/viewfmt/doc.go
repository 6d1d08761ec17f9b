// Package viewfmt provides the formatting helpers exposed to console views.
//
// Every helper is a pure string or number transform evaluated while a page
// renders. The only state a Formatter carries is the upload-limit cell, which
// is computed from its LimitSource on first use and kept for the Formatter's
// lifetime.
package viewfmt
