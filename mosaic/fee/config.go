// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fee

import (
	"encoding/json"
	"errors"
	"fmt"
)

var errInvalidConcurrency = errors.New("max concurrent lookups must be positive")

var DefaultConfig = Config{
	ExponentMode:         ExponentPow,
	StrictDefinitions:    false,
	MaxConcurrentLookups: 8,
}

type Config struct {
	// Supply term used by the regular fee schedule
	ExponentMode ExponentMode `json:"exponentMode"`

	// If true, an entry whose mosaic is not defined in its namespace fails
	// the whole fee computation instead of contributing nothing
	StrictDefinitions bool `json:"strictDefinitions"`

	// Number of definition lookups that may be in flight at once. 1 issues
	// them one after another.
	MaxConcurrentLookups int `json:"maxConcurrentLookups"`
}

func (c *Config) Verify() error {
	if err := c.ExponentMode.Verify(); err != nil {
		return err
	}
	if c.MaxConcurrentLookups <= 0 {
		return fmt.Errorf("%w: %d", errInvalidConcurrency, c.MaxConcurrentLookups)
	}
	return nil
}

// ParseConfig overlays configBytes on DefaultConfig.
func ParseConfig(configBytes []byte) (Config, error) {
	if len(configBytes) == 0 {
		return DefaultConfig, nil
	}

	cfg := DefaultConfig
	if err := json.Unmarshal(configBytes, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Verify()
}
