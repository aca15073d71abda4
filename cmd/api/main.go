package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "cloud_checkout/docs"
	"cloud_checkout/internal/adapter/http/handlers"
	"cloud_checkout/internal/adapter/http/routes"
	"cloud_checkout/internal/adapter/persistence/repository"
	"cloud_checkout/internal/infrastructure/config"
	"cloud_checkout/internal/infrastructure/database"
	"cloud_checkout/internal/infrastructure/payments"
	"cloud_checkout/internal/infrastructure/telemetry"
	"cloud_checkout/internal/usecase"
	"cloud_checkout/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/oklog/run"
	"github.com/sirupsen/logrus"
)

// @title           Cloud Checkout API
// @version         1.0
// @description     Checkout service running payment verification flows, backed by DynamoDB and Mercado Pago.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

var log = logrus.WithField("component", "main")

// Run wires the service and blocks until a signal arrives or a component fails.
func Run(ctx context.Context, args []string, stderr io.Writer) error {
	cfg, err := config.Load(args[1:])
	if err != nil {
		return err
	}
	if err := cfg.ConfigureLogger(logrus.StandardLogger(), stderr); err != nil {
		return fmt.Errorf("could not configure logger: %w", err)
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "trace" {
		gin.SetMode(gin.ReleaseMode)
	}

	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBConfig{
		Region:          cfg.DynamoRegion,
		Endpoint:        cfg.DynamoEndpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	})
	if err != nil {
		return fmt.Errorf("could not connect to dynamodb: %w", err)
	}

	productRepo := repository.NewProductDynamoRepository(ddb, cfg.Tables.Products)
	paymentMethodRepo := repository.NewPaymentMethodDynamoRepository(ddb, cfg.Tables.PaymentMethods)
	subscriptionRepo := repository.NewSubscriptionDynamoRepository(ddb, cfg.Tables.Subscriptions)
	flowRepo := repository.NewFlowDynamoRepository(ddb, cfg.Tables.Flows)
	telemetryRepo := repository.NewTelemetryDynamoRepository(ddb, cfg.Tables.Telemetry)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Warnf("[main] Mercado Pago gateway not configured err=%v", err)
	} else {
		paymentGateway = mpGateway
	}

	recorder := telemetry.NewRecorder(telemetryRepo, cfg.TelemetryQueueSize)
	productUseCase := usecase.NewProductUseCase(productRepo)
	paymentMethodUseCase := usecase.NewPaymentMethodUseCase(paymentMethodRepo, paymentGateway, usecase.PaymentMethodConfig{})
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, productRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(productRepo, paymentMethodUseCase, subscriptionUseCase, recorder, flowRepo, usecase.CheckoutConfig{
		MinProcessing: cfg.MinProcessing,
		MaxProgress:   cfg.MaxProgress,
		FlowTTL:       cfg.FlowTTL,
		SupportLink:   cfg.SupportLink,
	})
	defer checkoutUseCase.Shutdown()

	router := routes.NewRouter(routes.Handlers{
		Product:       handlers.NewProductHandler(productUseCase),
		PaymentMethod: handlers.NewPaymentMethodHandler(paymentMethodUseCase),
		Checkout:      handlers.NewCheckoutHandler(checkoutUseCase),
	})
	server := &http.Server{
		Addr:    net.JoinHostPort("", strconv.Itoa(cfg.Port)),
		Handler: router,
	}

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				log.Infof("[main] termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// HTTP server.
	{
		g.Add(
			func() error {
				log.Infof("[main] http server listening addr=%s", server.Addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("http server failed: %w", err)
				}
				return nil
			},
			func(_ error) {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGraceDuration)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					log.Errorf("[main] http server shutdown failed err=%v", err)
				}
			},
		)
	}

	// Telemetry writer.
	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(
			func() error {
				return recorder.Run(ctx)
			},
			func(_ error) {
				cancel()
			},
		)
	}

	// Finished flow janitor.
	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(
			func() error {
				return checkoutUseCase.RunJanitor(ctx, cfg.JanitorInterval)
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

func main() {
	ctx := context.Background()
	if err := Run(ctx, os.Args, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
