// Package console parses console service flags and launches the service.
package console

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/inex/ixp-console/internal/platform/cmd"
	server "github.com/inex/ixp-console/internal/services/console"
)

// Config holds console command configuration.
type Config struct {
	HTTPAddr string `env:"IXP_CONSOLE_HTTP_ADDR" envDefault:"localhost:8095"`
	DBPath   string `env:"IXP_CONSOLE_DB_PATH" envDefault:"data/console.db"`
	SeedDemo bool   `env:"IXP_CONSOLE_SEED_DEMO"`
	Language string `env:"IXP_CONSOLE_LANGUAGE" envDefault:"en"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "The console HTTP server address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Path to the console SQLite database")
	fs.BoolVar(&cfg.SeedDemo, "seed-demo", cfg.SeedDemo, "Load demo member interfaces into an empty database")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "Language tag used for number formatting")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the console HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceConsole, func(ctx context.Context) error {
		srv, err := server.NewServer(ctx, server.Config{
			HTTPAddr: cfg.HTTPAddr,
			DBPath:   cfg.DBPath,
			SeedDemo: cfg.SeedDemo,
			Language: cfg.Language,
		})
		if err != nil {
			return fmt.Errorf("init console server: %w", err)
		}
		defer srv.Close()

		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve console: %w", err)
		}
		return nil
	})
}
