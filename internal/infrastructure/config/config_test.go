package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 8080, c.Port)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, LogFormatText, c.LogFormat)
	assert.Equal(t, "payment_flows", c.Tables.Flows)
	assert.Equal(t, 5*time.Second, c.MinProcessing)
	assert.Equal(t, 95, c.MaxProgress)
	assert.Equal(t, 30*time.Minute, c.FlowTTL)
	assert.Equal(t, 256, c.TelemetryQueueSize)
	assert.False(t, c.PaymentGatewayMock)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("FLOW_MIN_PROCESSING", "1500ms")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")

	c, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 9090, c.Port)
	assert.True(t, c.PaymentGatewayMock)
	assert.Equal(t, 1500*time.Millisecond, c.MinProcessing)
	assert.Equal(t, "http://localhost:8000", c.DynamoEndpoint)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")

	c, err := Load([]string{"--port=7070", "--log-format=json"})
	require.NoError(t, err)

	assert.Equal(t, 7070, c.Port)
	assert.Equal(t, LogFormatJSON, c.LogFormat)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string][]string{
		"progress at cap":    {"--max-progress=100"},
		"unknown log level":  {"--log-level=loud"},
		"zero queue":         {"--telemetry-queue-size=0"},
		"negative minimum":   {"--min-processing=-1s"},
		"unknown log format": {"--log-format=xml"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(args)
			assert.Error(t, err)
		})
	}
}

func TestConfig_ConfigureLogger(t *testing.T) {
	c := &Config{LogLevel: "debug", LogFormat: LogFormatJSON}
	logger := logrus.New()
	var buf bytes.Buffer

	require.NoError(t, c.ConfigureLogger(logger, &buf))
	logger.WithField("component", "test").Debug("hello")

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), `"component":"test"`)
}
