// Package console serves the IXP operator console.
//
// It lists member VLAN interfaces with their monitoring host names, traffic
// rates and AS macros, exports Nagios host definitions, and accepts
// configuration uploads within the configured size limits. Every page is
// rendered through the viewfmt helpers.
package console
