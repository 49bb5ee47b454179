package e2e

import (
	"chat-relay/bus"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// Step prints a colorized header so each phase stands out in the logs
func (s *BaseSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// WithTransport builds a transport of the given kind and hands it a bounded context.
// The test is skipped when no address is configured for that kind.
func (s *BaseSuite) WithTransport(name string, kind bus.Kind, address string, fn func(ctx context.Context, transport bus.Transport, address string)) {
	if address == "" {
		s.T().Skipf("no address configured for %s transport", kind)
	}
	s.Step(name)

	transport, err := bus.New(kind, s.logger())
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fn(ctx, transport, address)
}

func (s *BaseSuite) logger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}
