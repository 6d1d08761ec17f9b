// Package sqlite provides SQLite-backed console persistence.
package sqlite
