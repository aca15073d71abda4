package config

import (
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/sirupsen/logrus"
)

const (
	// LogFormatText is the logrus text formatter.
	LogFormatText = "text"
	// LogFormatJSON is the logrus JSON formatter.
	LogFormatJSON = "json"
)

// Tables are the DynamoDB table names the repositories write to.
type Tables struct {
	Products       string
	PaymentMethods string
	Subscriptions  string
	Flows          string
	Telemetry      string
}

// Config is the service configuration. Every flag can also be set through
// the environment variable named next to it.
type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	DynamoRegion          string
	DynamoEndpoint        string
	AWSAccessKeyID        string
	AWSSecretAccessKey    string
	Tables                Tables
	MercadoPagoToken      string
	PaymentGatewayMock    bool
	MinProcessing         time.Duration
	MaxProgress           int
	FlowTTL               time.Duration
	JanitorInterval       time.Duration
	SupportLink           string
	TelemetryQueueSize    int
	ShutdownGraceDuration time.Duration
}

// Load parses args (without the program name) into a Config.
func Load(args []string) (*Config, error) {
	c := &Config{}
	app := kingpin.New("cloud-checkout", "Checkout service running payment verification flows.")

	app.Flag("port", "HTTP listen port.").Envar("PORT").Default("8080").IntVar(&c.Port)
	app.Flag("log-level", "Log level.").Envar("LOG_LEVEL").Default("info").
		EnumVar(&c.LogLevel, "trace", "debug", "info", "warn", "error")
	app.Flag("log-format", "Log format.").Envar("LOG_FORMAT").Default(LogFormatText).
		EnumVar(&c.LogFormat, LogFormatText, LogFormatJSON)

	app.Flag("dynamodb-region", "AWS region of DynamoDB.").Envar("AWS_REGION").Default("us-east-1").StringVar(&c.DynamoRegion)
	app.Flag("dynamodb-endpoint", "DynamoDB endpoint override, e.g. a local DynamoDB.").Envar("DYNAMODB_ENDPOINT").StringVar(&c.DynamoEndpoint)
	app.Flag("aws-access-key-id", "Static AWS access key.").Envar("AWS_ACCESS_KEY_ID").StringVar(&c.AWSAccessKeyID)
	app.Flag("aws-secret-access-key", "Static AWS secret key.").Envar("AWS_SECRET_ACCESS_KEY").StringVar(&c.AWSSecretAccessKey)

	app.Flag("products-table", "Products table.").Envar("DYNAMODB_PRODUCTS_TABLE").Default("products").StringVar(&c.Tables.Products)
	app.Flag("payment-methods-table", "Payment methods table.").Envar("DYNAMODB_PAYMENT_METHODS_TABLE").Default("payment_methods").StringVar(&c.Tables.PaymentMethods)
	app.Flag("subscriptions-table", "Subscriptions table.").Envar("DYNAMODB_SUBSCRIPTIONS_TABLE").Default("subscriptions").StringVar(&c.Tables.Subscriptions)
	app.Flag("flows-table", "Payment flows table.").Envar("DYNAMODB_FLOWS_TABLE").Default("payment_flows").StringVar(&c.Tables.Flows)
	app.Flag("telemetry-table", "Telemetry events table.").Envar("DYNAMODB_TELEMETRY_TABLE").Default("telemetry_events").StringVar(&c.Tables.Telemetry)

	app.Flag("mercadopago-access-token", "Mercado Pago seller access token.").Envar("MERCADOPAGO_ACCESS_TOKEN").StringVar(&c.MercadoPagoToken)
	app.Flag("payment-gateway-mock", "Approve payment methods without calling the provider.").Envar("PAYMENT_GATEWAY_MOCK").BoolVar(&c.PaymentGatewayMock)

	app.Flag("min-processing", "Minimum time the processing screen is shown.").Envar("FLOW_MIN_PROCESSING").Default("5s").DurationVar(&c.MinProcessing)
	app.Flag("max-progress", "Progress the bar may reach before the outcome is known.").Envar("FLOW_MAX_PROGRESS").Default("95").IntVar(&c.MaxProgress)
	app.Flag("flow-ttl", "How long finished flows stay in memory.").Envar("FLOW_TTL").Default("30m").DurationVar(&c.FlowTTL)
	app.Flag("janitor-interval", "How often finished flows are swept.").Envar("FLOW_JANITOR_INTERVAL").Default("1m").DurationVar(&c.JanitorInterval)
	app.Flag("support-link", "Contact support link shown on failure.").Envar("SUPPORT_LINK").
		Default("https://support.example.com/hc/en-us/requests/new").StringVar(&c.SupportLink)

	app.Flag("telemetry-queue-size", "Buffered telemetry events before dropping.").Envar("TELEMETRY_QUEUE_SIZE").Default("256").IntVar(&c.TelemetryQueueSize)
	app.Flag("shutdown-grace", "Time given to in-flight HTTP requests on shutdown.").Envar("SHUTDOWN_GRACE").Default("10s").DurationVar(&c.ShutdownGraceDuration)

	if _, err := app.Parse(args); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.MaxProgress <= 0 || c.MaxProgress >= 100 {
		return fmt.Errorf("max progress must be in (0, 100), got %d", c.MaxProgress)
	}
	if c.MinProcessing <= 0 {
		return fmt.Errorf("min processing must be positive, got %s", c.MinProcessing)
	}
	if c.TelemetryQueueSize <= 0 {
		return fmt.Errorf("telemetry queue size must be positive, got %d", c.TelemetryQueueSize)
	}
	return nil
}

// ConfigureLogger applies level and format to logger.
func (c *Config) ConfigureLogger(logger *logrus.Logger, out io.Writer) error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	logger.SetOutput(out)

	switch c.LogFormat {
	case LogFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
