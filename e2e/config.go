package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

// Config points the end-to-end suites at running infrastructure.
// A suite whose address is empty is skipped.
type Config struct {
	RedisURL    string `envconfig:"REDIS_URL"`
	NatsURL     string `envconfig:"NATS_URL"`
	GatewayAddr string `envconfig:"GATEWAY_ADDR"`
	// E2E_DEBUG_JSON dumps every frame received from the gateway
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
