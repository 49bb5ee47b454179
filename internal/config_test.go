package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_LoadConfig_Defaults(t *testing.T) {
	req := require.New(t)

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal("memory", config.BusTransport)
	req.Equal(5*time.Second, config.PresenceSweepInterval)
	req.Equal(30*time.Second, config.PresenceTimeout)
	req.Equal(5, config.RateCapacity)
	req.Equal(uint64(30), config.RetentionDays)
	req.Equal("0.0.0.0:8080", config.Address())
}

func Test_LoadConfig_Reads_Environment(t *testing.T) {
	req := require.New(t)
	t.Setenv("BUS_TRANSPORT", "nats")
	t.Setenv("BUS_ADDRESS", "nats://localhost:4222")
	t.Setenv("RATE_REFILL_PER_SEC", "0.5")
	t.Setenv("RETENTION_DAYS", "0")
	t.Setenv("PORT", "9090")

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal("nats", config.BusTransport)
	req.Equal("nats://localhost:4222", config.BusAddress)
	req.InDelta(0.5, config.RateRefillPerSec, 1e-9)
	req.Zero(config.RetentionDays)
	req.Equal(9090, config.Port)
}

func Test_LoadConfig_Rejects_Unknown_Transport(t *testing.T) {
	req := require.New(t)
	t.Setenv("BUS_TRANSPORT", "carrier-pigeon")

	_, err := LoadConfig()
	req.Error(err)
}

func Test_LoadConfig_Network_Transport_Needs_Address(t *testing.T) {
	req := require.New(t)
	t.Setenv("BUS_TRANSPORT", "redis")

	_, err := LoadConfig()
	req.Error(err)
}

func Test_LoadConfig_Rejects_Zero_Capacity(t *testing.T) {
	req := require.New(t)
	t.Setenv("RATE_CAPACITY", "0")

	_, err := LoadConfig()
	req.Error(err)
}

func Test_NewLogger_Writes_To_File(t *testing.T) {
	req := require.New(t)
	file := filepath.Join(t.TempDir(), "relay.log")

	// Given a logger with a rotating file
	log := NewLogger("DEBUG", file)

	// When a record is logged
	log.Info("Relay started", "port", 8080)

	// Then it is found in the file as JSON
	content, err := os.ReadFile(file)
	req.NoError(err)
	req.Contains(string(content), `"msg":"Relay started"`)
	req.Contains(string(content), `"port":8080`)
}
