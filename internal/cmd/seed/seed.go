// Package seed parses seed command flags and loads demo member interfaces
// into a console database.
package seed

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	entrypoint "github.com/inex/ixp-console/internal/platform/cmd"
	"github.com/inex/ixp-console/internal/services/console/storage"
	consolesqlite "github.com/inex/ixp-console/internal/services/console/storage/sqlite"
	"github.com/inex/ixp-console/internal/services/console/viewfmt"
)

// Config holds seed command configuration.
type Config struct {
	DBPath string `env:"IXP_CONSOLE_DB_PATH" envDefault:"data/console.db"`
	// List prints the demo interfaces instead of writing them.
	List bool
}

// ParseConfig parses environment and flags into a Config. Flags win over
// the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.DBPath, "db-path", "", "Path to the console SQLite database (default: IXP_CONSOLE_DB_PATH or data/console.db)")
	fs.BoolVar(&cfg.List, "list", false, "list the demo member interfaces")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run seeds the configured database, or lists the demo interfaces.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if cfg.List {
		for _, iface := range storage.DemoInterfaces() {
			fmt.Fprintf(out, "%-24s AS%-8d IPv%d VLAN %d\n", iface.CustomerName, iface.ASN, iface.Protocol, iface.VlanTag)
		}
		return nil
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(ctx context.Context) error {
		path := strings.TrimSpace(cfg.DBPath)
		if path == "" {
			return fmt.Errorf("db path is required")
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create storage dir: %w", err)
			}
		}
		store, err := consolesqlite.Open(path)
		if err != nil {
			return fmt.Errorf("open console sqlite store: %w", err)
		}
		defer store.Close()

		seeded, err := storage.SeedDemo(ctx, store)
		if err != nil {
			return err
		}
		if seeded == 0 {
			fmt.Fprintln(out, "Database already holds member interfaces; nothing seeded.")
			return nil
		}
		ifaces, err := store.ListInterfaces(ctx)
		if err != nil {
			return fmt.Errorf("list interfaces: %w", err)
		}
		fmt.Fprintf(out, "Seeded %d member interfaces:\n", seeded)
		for _, iface := range ifaces {
			fmt.Fprintf(out, "  %s\n", viewfmt.NagiosHostname(iface.Abbreviation, iface.ASN, iface.Protocol, iface.VlanID, iface.ID))
		}
		return nil
	})
}
