package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	DataDir     string `env:"DATA_DIR,default=./data" validate:"required"`
	SnapshotDir string `env:"SNAPSHOT_DIR,default=./data/snapshots" validate:"required"`

	BusTransport string `env:"BUS_TRANSPORT,default=memory" validate:"oneof=memory mangos redis nats"`
	BusAddress   string `env:"BUS_ADDRESS" validate:"required_unless=BusTransport memory"`

	PresenceSweepInterval time.Duration `env:"PRESENCE_SWEEP_INTERVAL,default=5s" validate:"gt=0"`
	PresenceTimeout       time.Duration `env:"PRESENCE_TIMEOUT,default=30s" validate:"gte=1s"`

	RateCapacity     int     `env:"RATE_CAPACITY,default=5" validate:"gte=1"`
	RateRefillPerSec float64 `env:"RATE_REFILL_PER_SEC,default=1" validate:"gt=0"`

	RetentionDays     uint64        `env:"RETENTION_DAYS,default=30"`
	RetentionInterval time.Duration `env:"RETENTION_INTERVAL,default=1h" validate:"gt=0"`
	SnapshotInterval  time.Duration `env:"SNAPSHOT_INTERVAL,default=15m" validate:"gt=0"`
	StatsInterval     time.Duration `env:"STATS_INTERVAL,default=5s" validate:"gt=0"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`

	Host         string `env:"HOST,default=0.0.0.0" validate:"required"`
	Port         int    `env:"PORT,default=8080" validate:"gte=1,lte=65535"`
	DefaultRoom  string `env:"DEFAULT_ROOM,default=general" validate:"required"`
	HistoryLimit int    `env:"HISTORY_LIMIT,default=50" validate:"gte=1,lte=1000"`

	LogLevel string `env:"LOG_LEVEL,default=INFO"`
	LogFile  string `env:"LOG_FILE"`
}

// LoadConfig reads the configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
