package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ServerConfig configures eftpd.
type ServerConfig struct {
	Name           string   `toml:"name"`
	Addr           string   `toml:"addr"`
	CorsOrigins    []string `toml:"cors_origins"`
	LogLevel       string   `toml:"log_level"`
	DataDir        string   `toml:"data_dir"`
	ReceivedPrefix string   `toml:"received_prefix"`
	MaxFileSize    int      `toml:"max_file_size"`
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Name:           "eftpd",
		Addr:           ":9400",
		CorsOrigins:    []string{"http://localhost:3000"},
		LogLevel:       "info",
		DataDir:        "data",
		ReceivedPrefix: "rcvd-",
	}
}

func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()
	if err := loadToml(path, &cfg); err != nil {
		return ServerConfig{}, err
	}
	if cfg.Name == "" {
		cfg.Name = "eftpd"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":9400"
	}
	if err := ValidateServerConfig(cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateServerConfig(cfg ServerConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("server config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("server config missing addr")
	}
	if strings.TrimSpace(cfg.DataDir) == "" {
		return fmt.Errorf("server config missing data_dir")
	}
	if strings.ContainsAny(cfg.ReceivedPrefix, `/\`) {
		return fmt.Errorf("received_prefix must not contain path separators")
	}
	if cfg.MaxFileSize < 0 {
		return fmt.Errorf("max_file_size must not be negative")
	}
	for i, origin := range cfg.CorsOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("cors_origins[%d] is empty", i)
		}
	}
	return nil
}

// Marshal renders cfg as TOML.
func Marshal(cfg ServerConfig) ([]byte, error) {
	return toml.Marshal(cfg)
}
