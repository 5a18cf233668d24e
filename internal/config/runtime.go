package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Runtime holds runner settings sourced from the environment. Flags
// override these; they exist so deployments can configure the runner
// without a wrapper script.
type Runtime struct {
	DBPath  string `env:"LIFESIM_DB" envDefault:"data/lifesim.db"`
	APIPort int    `env:"LIFESIM_PORT" envDefault:"8080"`
	Balance string `env:"LIFESIM_BALANCE"` // Preset name: default, gentle, or harsh
}

// LoadRuntime parses runner settings from the environment.
func LoadRuntime() (Runtime, error) {
	var rt Runtime
	if err := env.Parse(&rt); err != nil {
		return rt, fmt.Errorf("parse environment: %w", err)
	}
	return rt, nil
}
