package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-transfer-ledger/internal/config"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/grpcserver"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/handlers"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/sbilibin2017/gw-transfer-ledger/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const serviceName = "gw-transfer-ledger"

// @title gw-transfer-ledger API
// @version 1.0.0
// @description Double-entry ledger of money transfers between users
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath, testInstance := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if testInstance {
		cfg.Instance = config.InstanceTest
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags returns the config file path and whether the test instance was requested.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	test := flag.Bool("test", false, "Use the test ledger instance")
	flag.Parse()
	return *c, *test
}

// ledgerStore is what the services need from a storage backend.
type ledgerStore interface {
	services.TransactionWriter
	services.TransactionReader
}

type postgresStore struct {
	*repositories.TransactionWriterRepository
	*repositories.TransactionReaderRepository
}

// openStore connects the configured backend. db is nil for the memory backend.
func openStore(ctx context.Context, cfg *config.Config) (ledgerStore, *sqlx.DB, error) {
	if cfg.Backend == config.BackendMemory {
		logger.Log.Infow("Using in-memory ledger", "instance", cfg.Instance)
		return repositories.NewTransactionMemoryRepository(), nil, nil
	}

	logger.Log.Infow("Connecting to PostgreSQL",
		"driver", cfg.PGDriver, "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB, "table", cfg.TableName())

	connectCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout())
	defer cancel()

	db, err := sqlx.ConnectContext(connectCtx, cfg.PGDriver, cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	writer := repositories.NewTransactionWriterRepository(db, cfg.TableName(), middlewares.GetTxFromContext)
	if err := writer.CreateSchema(connectCtx); err != nil {
		db.Close()
		return nil, nil, err
	}

	return postgresStore{
		TransactionWriterRepository: writer,
		TransactionReaderRepository: repositories.NewTransactionReaderRepository(db, cfg.TableName()),
	}, db, nil
}

// openCache returns nil when Redis is not configured.
func openCache(ctx context.Context, cfg *config.Config) (*redis.Client, *repositories.BalanceCacheRepository, error) {
	addr := cfg.RedisAddr()
	if addr == "" {
		return nil, nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
		ReadTimeout:  cfg.StoreTimeout(),
		WriteTimeout: cfg.StoreTimeout(),
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("Redis connection error: %w", err)
	}
	logger.Log.Infow("Balance cache enabled", "addr", addr)

	return rdb, repositories.NewBalanceCacheRepository(rdb, cfg.CachePrefix(), cfg.RedisExp()), nil
}

// newRouter wires the HTTP routes. db may be nil, in which case writes run without a request transaction.
func newRouter(cfg *config.Config, db *sqlx.DB, recorder *services.RecorderService, query *services.QueryService) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/health", handlers.NewHealthHandler())

	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.Timeout(cfg.StoreTimeout()))
		r.Get("/transactions", handlers.NewSearchTransfersHandler(query))
		r.Get("/balance", handlers.NewGetBalanceHandler(query))
	})

	// The timeout sits inside the transaction so a deadline rolls it back.
	r.Group(func(r chi.Router) {
		if db != nil {
			r.Use(middlewares.TxMiddleware(db))
		}
		r.Use(chimiddleware.Timeout(cfg.StoreTimeout()))
		r.Post("/transactions", handlers.NewCreateTransferHandler(recorder))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

// run initializes the logger, storage, cache, event writer, and HTTP and gRPC servers.
// It blocks until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, serviceName, cfg.Instance); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	store, db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	rdb, cache, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}

	// Nil dependencies must reach the services as untyped nils.
	var (
		invalidator  services.BalanceInvalidator
		balanceCache services.BalanceCache
		kafkaWriter  services.KafkaWriter
	)
	if cache != nil {
		defer rdb.Close()
		invalidator, balanceCache = cache, cache
	}
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.Hash{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Transfer events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	recorder := services.NewRecorderService(store, invalidator, kafkaWriter, middlewares.AfterCommit)
	query := services.NewQueryService(store, balanceCache)

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, db, recorder, query),
	}

	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if cfg.GRPCPort != "" {
		lis, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCPort))
		if err != nil {
			return fmt.Errorf("gRPC listen failed: %w", err)
		}
		grpcSrv := grpcserver.New(grpcserver.NewServer(recorder, query, query), cfg.StoreTimeout())
		defer grpcSrv.GracefulStop()

		go func() {
			logger.Log.Infof("gRPC server listening on %s", lis.Addr())
			if err := grpcSrv.Serve(lis); err != nil {
				errChan <- fmt.Errorf("gRPC server failed: %w", err)
			}
		}()
	}

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("Servers stopped gracefully")
	return nil
}
