// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"

	"github.com/ManuGH/chain/internal/validate"
)

// Validate validates an AppConfig using the centralized validation package
func Validate(cfg AppConfig) error {
	v := validate.New()

	v.Level("logLevel", cfg.LogLevel)
	v.SnapshotPath("output", cfg.Output)
	v.ExistingFile("input", cfg.Input)
	v.TextfilePath("metricsFile", cfg.MetricsFile)

	for i, value := range cfg.Values {
		v.NotEmpty(fmt.Sprintf("values[%d]", i), value)
	}

	return v.Err()
}
