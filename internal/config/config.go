// Package config loads application configuration from the environment and
// bootstraps logging.
package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config groups all tunables. Values are taken from environment variables
// with the prefix "WANDERPLAN_". Example: WANDERPLAN_SERVICE_URL=... .
type Config struct {
	ServiceURL string `envconfig:"SERVICE_URL" default:"http://localhost:5000"`
	UserIDFile string `envconfig:"USER_ID_FILE" default:""`
	LogLevel   string `envconfig:"LOG_LEVEL"   default:"info"`
}

// Load populates Config from environment variables (prefix WANDERPLAN_).
func Load() (Config, error) {
	var c Config
	return c, envconfig.Process("WANDERPLAN", &c)
}

// Init initializes logging from the loaded configuration.
func (c Config) Init() {
	InitLogger()
	SetLogLevel(ParseLogLevel(c.LogLevel))

	log.Info().
		Str("service_url", c.ServiceURL).
		Str("log_level", c.LogLevel).
		Msg("Application configuration loaded")
}
