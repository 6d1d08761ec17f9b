package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"IXP_CONSOLE_TEST_PORT" envDefault:"123"`
}

type prefixedTestConfig struct {
	Name  string `env:"NAME" envDefault:"console"`
	Limit int    `env:"LIMIT"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("IXP_CONSOLE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvWithPrefix(t *testing.T) {
	t.Setenv("IXP_TEST_NAME", "edge")
	t.Setenv("IXP_TEST_LIMIT", "7")
	t.Setenv("NAME", "unprefixed")

	var cfg prefixedTestConfig
	if err := ParseEnvWithPrefix(&cfg, "IXP_TEST_"); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Name != "edge" || cfg.Limit != 7 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseEnvWithPrefixError(t *testing.T) {
	t.Setenv("IXP_TEST_LIMIT", "many")

	var cfg prefixedTestConfig
	err := ParseEnvWithPrefix(&cfg, "IXP_TEST_")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env IXP_TEST_*:") {
		t.Fatalf("expected prefixed error, got %v", err)
	}
}

func TestParseEnvWithEmptyPrefixFallsBack(t *testing.T) {
	t.Setenv("NAME", "plain")

	var cfg prefixedTestConfig
	if err := ParseEnvWithPrefix(&cfg, " "); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Name != "plain" {
		t.Fatalf("expected plain name, got %q", cfg.Name)
	}
}
