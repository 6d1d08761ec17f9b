// Package routepath names the console HTTP routes.
package routepath

import "strconv"

const (
	Root    = "/"
	Healthz = "/healthz"
)

const (
	Interfaces       = "/interfaces"
	InterfacesPrefix = "/interfaces/"
	NagiosSuffix     = "/nagios"
)

const (
	Upload = "/upload"
)

// InterfaceNagios returns the Nagios host definition path of one interface.
func InterfaceNagios(id int64) string {
	return InterfacesPrefix + strconv.FormatInt(id, 10) + NagiosSuffix
}
