// config/overlay.go
package config

import (
	"os"
	"strconv"
	"strings"
)

// OverlayEnv lets the environment override a loaded config. Unset or
// unparsable variables leave the file value alone.
func OverlayEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("ONDEMAND_API_BASE_URL")); v != "" {
		cfg.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("ONDEMAND_API_TIMEOUT_MS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.API.TimeoutMS = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("ONDEMAND_STORAGE_BACKEND")); v != "" {
		cfg.Storage.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("ONDEMAND_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = n
		}
	}
}
