// Package config loads the watcher's run configuration from a JSON5 file,
// so park preference lists can carry comments alongside the entries.
package config

import (
	"fmt"
	"os"

	"github.com/titanous/json5"
)

type Park struct {
	Name           string   `json:"name"`
	PreferredSites []string `json:"preferredSites"`
}

type Config struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	PartySize int    `json:"partySize"`

	CookieFile    string   `json:"cookieFile"`
	AvailableCode int      `json:"availableCode"`
	Keywords      []string `json:"keywords"`
	Parks         []Park   `json:"parks"`

	AutoReserve       bool   `json:"autoReserve"`
	ReserveMode       string `json:"reserveMode"`
	AllowExistingCart bool   `json:"allowExistingCart"`

	AppVersion  string `json:"appVersion"`
	AppLanguage string `json:"appLanguage"`
}

func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}
