package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestServerTemplateLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eftpd.toml")
	if err := WriteTemplate(path, "server", false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := LoadServerConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Name != "eftpd" || cfg.Addr != ":9400" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.MaxFileSize != 16777215 || cfg.ReceivedPrefix != "rcvd-" {
		t.Fatalf("unexpected transfer settings: %+v", cfg)
	}
	if len(cfg.CorsOrigins) != 1 {
		t.Fatalf("unexpected cors origins: %+v", cfg.CorsOrigins)
	}
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eftpd.toml")
	if err := WriteTemplate(path, "server", false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := WriteTemplate(path, "server", false); err == nil {
		t.Fatalf("expected overwrite refusal")
	}
	if err := WriteTemplate(path, "server", true); err != nil {
		t.Fatalf("forced overwrite: %v", err)
	}
	if _, err := Template("relay"); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}

func TestLoadServerConfigDefaultsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	if err := os.WriteFile(path, []byte("addr = \"127.0.0.1:7000\"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadServerConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:7000" || cfg.Name != "eftpd" || cfg.DataDir != "data" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestValidateServerConfig(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.ReceivedPrefix = "../"
	if err := ValidateServerConfig(cfg); err == nil {
		t.Fatalf("expected prefix validation error")
	}
	cfg = DefaultServerConfig()
	cfg.CorsOrigins = []string{" "}
	if err := ValidateServerConfig(cfg); err == nil {
		t.Fatalf("expected cors validation error")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	b, err := Marshal(DefaultServerConfig())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), "data_dir = 'data'") && !strings.Contains(string(b), `data_dir = "data"`) {
		t.Fatalf("unexpected toml:\n%s", b)
	}
}
