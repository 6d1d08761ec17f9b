package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested interface does not exist.
var ErrNotFound = errors.New("record not found")

// VlanInterface is one member port configured on a peering LAN.
type VlanInterface struct {
	ID           int64
	CustomerName string
	// Abbreviation is the short customer name used in host names.
	Abbreviation string
	ASN          int64
	// Protocol is the IP version, 4 or 6.
	Protocol int
	VlanID   int64
	VlanTag  int
	Address  string
	// TrafficBits is the current average rate in bits per second.
	TrafficBits float64
	// TrafficBytes is the total transferred volume this month.
	TrafficBytes float64
	// ASMacro lists the ASNs announced behind the member's AS-SET.
	ASMacro []int64
}

// InterfaceStore reads and writes member VLAN interfaces.
type InterfaceStore interface {
	ListInterfaces(ctx context.Context) ([]VlanInterface, error)
	GetInterface(ctx context.Context, id int64) (VlanInterface, error)
	PutInterface(ctx context.Context, iface VlanInterface) (int64, error)
}

// Store is a composite interface for console storage concerns.
type Store interface {
	InterfaceStore
	Close() error
}
