// Package storage defines persistence contracts for the member VLAN
// interfaces the console lists.
//
// Handlers depend on these interfaces so views can be tested without a
// concrete SQLite schema.
package storage
