package dispatch

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ConfigFromEnv builds a Config from TAPLOG_* environment variables:
// TAPLOG_MAX_SUBSCRIBERS, TAPLOG_MAX_MESSAGE_LENGTH and
// TAPLOG_WITH_CALLER. Unset variables take the package defaults.
func ConfigFromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("dispatch: parse env config: %w", err)
	}
	return cfg, nil
}
