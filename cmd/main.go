package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-crosschain-bridge/docs"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/clients/bitget"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/facades"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/handlers"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/logger"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/middlewares"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/repositories"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// depositTargetCacheTTL bounds how long a cached deposit target is reused.
const depositTargetCacheTTL = 24 * time.Hour

// @title gw-crosschain-bridge API
// @version 1.0.0
// @description Service bridging RLUSD on the XRPL to USDC on other chains via a custodial exchange
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		xrplURL, xrplNetwork, rlusdIssuer,
		bitgetKey, bitgetSecret, bitgetPassphrase, bitgetBaseURL,
		redisAddr, redisPassword, redisDB,
		kafkaBroker, kafkaTopic,
		confirmPollInterval, confirmMaxWait, confirmLookback,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		xrplURL, xrplNetwork, rlusdIssuer,
		bitgetKey, bitgetSecret, bitgetPassphrase, bitgetBaseURL,
		redisAddr, redisPassword, redisDB,
		kafkaBroker, kafkaTopic,
		confirmPollInterval, confirmMaxWait, confirmLookback,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, ledger, exchange, Redis, Kafka and polling configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	xrplURL, xrplNetwork, rlusdIssuer string,
	bitgetKey, bitgetSecret, bitgetPassphrase, bitgetBaseURL string,
	redisAddr, redisPassword string, redisDB int,
	kafkaBroker, kafkaTopic string,
	confirmPollInterval, confirmMaxWait, confirmLookback time.Duration,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvDuration := func(key string, defaultValue time.Duration) (time.Duration, error) {
		val, ok := os.LookupEnv(key)
		if !ok || val == "" {
			return defaultValue, nil
		}
		return time.ParseDuration(val)
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// XRPL config
	xrplURL = getEnv("XRPL_WEBSOCKET_URL", "wss://xrplcluster.com/")
	xrplNetwork = getEnv("XRPL_NETWORK", "mainnet")
	rlusdIssuer = getEnv("RLUSD_ISSUER", facades.DefaultRLUSDIssuer)

	// Bitget config; leaving the key empty runs the exchange side in
	// simulation mode.
	bitgetKey = getEnv("BITGET_API_KEY", "")
	bitgetSecret = getEnv("BITGET_SECRET_KEY", "")
	bitgetPassphrase = getEnv("BITGET_PASSPHRASE", "")
	bitgetBaseURL = getEnv("BITGET_BASE_URL", bitget.DefaultBaseURL)

	// Redis config; empty address disables the deposit-target cache.
	redisAddr = getEnv("REDIS_ADDR", "")
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}

	// Kafka config; empty broker disables transfer event publishing.
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "transfer-events")

	// Deposit confirmation polling
	if confirmPollInterval, err = getEnvDuration("CONFIRM_POLL_INTERVAL", 30*time.Second); err != nil {
		return
	}
	if confirmMaxWait, err = getEnvDuration("CONFIRM_MAX_WAIT", 15*time.Minute); err != nil {
		return
	}
	if confirmLookback, err = getEnvDuration("CONFIRM_LOOKBACK", 30*time.Minute); err != nil {
		return
	}

	return
}

// run initializes the logger, optional Redis and Kafka clients, the gateway
// facades and the HTTP server. It sets up routes, applies middleware, and
// handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	xrplURL, xrplNetwork, rlusdIssuer string,
	bitgetKey, bitgetSecret, bitgetPassphrase, bitgetBaseURL string,
	redisAddr, redisPassword string, redisDB int,
	kafkaBroker, kafkaTopic string,
	confirmPollInterval, confirmMaxWait, confirmLookback time.Duration,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)
	logger.Log.Infof("XRPL network: %s (%s)", xrplNetwork, xrplURL)

	// Optional deposit-target cache
	var depositTargetCache facades.DepositTargetCache
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unreachable, running without deposit target cache", "addr", redisAddr, "error", err)
		} else {
			defer rdb.Close()
			depositTargetCache = repositories.NewDepositTargetCacheRepository(rdb, depositTargetCacheTTL)
			logger.Log.Infof("Deposit target cache enabled at %s", redisAddr)
		}
	}

	// Optional transfer event publishing
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		kafkaWriter = writer
		logger.Log.Infof("Transfer events published to %s on %s", kafkaTopic, kafkaBroker)
	}

	// Initialize gateway clients and facades
	bitgetClient := bitget.NewClient(bitgetBaseURL, bitget.Credentials{
		APIKey:     bitgetKey,
		SecretKey:  bitgetSecret,
		Passphrase: bitgetPassphrase,
	})
	if bitgetClient.Simulated() {
		logger.Log.Warn("Bitget credentials not configured, exchange gateway runs in simulation mode")
	}

	exchangeFacade := facades.NewExchangeFacade(bitgetClient, depositTargetCache, confirmPollInterval, confirmLookback)
	ledgerFacade := facades.NewLedgerFacade(xrplURL, rlusdIssuer)

	// Initialize services
	transferService := services.NewTransferService(ledgerFacade, exchangeFacade, kafkaWriter, confirmMaxWait)
	accountService := services.NewAccountService(ledgerFacade)

	// Initialize handlers
	networksHandler := handlers.NewSupportedNetworksHandler()
	accountInfoHandler := handlers.NewAccountInfoHandler(accountService)
	transferHandler := handlers.NewStartTransferHandler(transferService)
	balanceHandler := handlers.NewTokenBalanceHandler(accountService)
	sendHandler := handlers.NewSendHandler(ledgerFacade)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/api/crosschain/supported-networks", networksHandler)
	r.Post("/api/crosschain/start-crosschain", transferHandler)
	r.Post("/api/xrpl/account-info", accountInfoHandler)
	r.Get("/api/xrpl/balance/{address}", balanceHandler)
	r.Post("/api/xrpl/send", sendHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
