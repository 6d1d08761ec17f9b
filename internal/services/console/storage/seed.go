package storage

import (
	"context"
	"fmt"
)

// DemoInterfaces returns a small fixed member set for local development.
func DemoInterfaces() []VlanInterface {
	return []VlanInterface{
		{
			CustomerName: "Example Networks Ltd",
			Abbreviation: "Example Net",
			ASN:          64500,
			Protocol:     4,
			VlanID:       1,
			VlanTag:      10,
			Address:      "192.0.2.10",
			TrafficBits:  8_450_000_000,
			TrafficBytes: 2_750_000_000_000,
			ASMacro:      []int64{64500, 64501, 64502, 64510, 64511},
		},
		{
			CustomerName: "Example Networks Ltd",
			Abbreviation: "Example Net",
			ASN:          64500,
			Protocol:     6,
			VlanID:       1,
			VlanTag:      10,
			Address:      "2001:db8::10",
			TrafficBits:  1_200_000_000,
			TrafficBytes: 410_000_000_000,
			ASMacro:      []int64{64500, 64501},
		},
		{
			CustomerName: "Documentation Transit (ISP!)",
			Abbreviation: "DocTransit!",
			ASN:          65550,
			Protocol:     4,
			VlanID:       2,
			VlanTag:      20,
			Address:      "198.51.100.7",
			TrafficBits:  640_000,
			TrafficBytes: 96_000_000,
			ASMacro:      []int64{65550},
		},
	}
}

// SeedDemo writes DemoInterfaces through store when it holds no interfaces.
func SeedDemo(ctx context.Context, store InterfaceStore) (int, error) {
	if store == nil {
		return 0, fmt.Errorf("interface store is required")
	}
	existing, err := store.ListInterfaces(ctx)
	if err != nil {
		return 0, fmt.Errorf("list interfaces: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}
	seeded := 0
	for _, iface := range DemoInterfaces() {
		if _, err := store.PutInterface(ctx, iface); err != nil {
			return seeded, fmt.Errorf("seed interface %s/%d: %w", iface.Abbreviation, iface.Protocol, err)
		}
		seeded++
	}
	return seeded, nil
}
