package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-forge/internal/telemetry"
)

type TelemetryTestSuite struct {
	suite.Suite
}

func TestTelemetrySuite(t *testing.T) {
	suite.Run(t, new(TelemetryTestSuite))
}

func (s *TelemetryTestSuite) TestSetup_NoopWhenEndpointEmpty() {
	shutdown, err := telemetry.Setup(context.Background(), "rpg-forge-test", "")
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.NoError(shutdown(ctx))
}

func (s *TelemetryTestSuite) TestSetup_WithEndpoint() {
	// non-routable address, nothing is exported before shutdown
	shutdown, err := telemetry.Setup(context.Background(), "rpg-forge-test", "http://192.0.2.1:4318")
	s.Require().NoError(err)
	s.NoError(shutdown(context.Background()))
}
