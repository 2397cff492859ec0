package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
)

const EnvPrefix = "LAUNCHKEEPER_"

// parseEnv overrides fields whose LAUNCHKEEPER_* variable is set.
func parseEnv(config *Config) error {
	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("%w: environment: %v", common.ErrorConfiguration, err)
	}
	return nil
}
