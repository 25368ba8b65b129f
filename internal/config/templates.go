package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "server", "eftpd":
		return serverTemplate, nil
	case "shell", "eftp":
		return shellTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const serverTemplate = `name = "eftpd"
addr = ":9400"
cors_origins = ["http://localhost:3000"]
log_level = "info"
data_dir = "data"
received_prefix = "rcvd-"
max_file_size = 16777215
`

const shellTemplate = `prompt = "eftp> "
echo = false
log_level = "info"
data_dir = "."
received_prefix = "rcvd-"
verify_sequence = true
`
