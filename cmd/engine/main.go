package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bulbafloor/auction-engine/internal/adapter"
	"github.com/bulbafloor/auction-engine/internal/admin"
	"github.com/bulbafloor/auction-engine/internal/api/server"
	"github.com/bulbafloor/auction-engine/internal/config"
	"github.com/bulbafloor/auction-engine/internal/domain"
	"github.com/bulbafloor/auction-engine/internal/engine"
	"github.com/bulbafloor/auction-engine/internal/logger"
	ethereumProvider "github.com/bulbafloor/auction-engine/internal/providers/ethereum"
	"github.com/bulbafloor/auction-engine/internal/providers/jetstream"
	"github.com/bulbafloor/auction-engine/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadEngineConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:       cfg.Debug,
		SentryDSN:   cfg.SentryDSN,
		Environment: cfg.Environment,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting auction engine")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	if err := store.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store and seed the marketplace record. Seed values only
	// apply on first boot.
	clock := adapter.NewClock()
	dataStore := store.NewPGStore(db, clock)
	if !common.IsHexAddress(cfg.Market.Owner) || !common.IsHexAddress(cfg.Market.FeeRecipient) {
		logger.Fatal("Invalid market owner or fee recipient address",
			zap.String("owner", cfg.Market.Owner),
			zap.String("fee_recipient", cfg.Market.FeeRecipient),
		)
	}
	if err := dataStore.SeedGlobalConfig(ctx, &domain.GlobalConfig{
		Owner:          common.HexToAddress(cfg.Market.Owner),
		FeeBasisPoints: cfg.Market.FeeBasisPoints,
		FeeRecipient:   common.HexToAddress(cfg.Market.FeeRecipient),
	}); err != nil {
		logger.Fatal("Failed to seed global config", zap.Error(err))
	}

	// Connect to the Ethereum RPC node and build the settlement wallet
	ethClient, err := adapter.DialEthClient(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.Fatal("Failed to connect to Ethereum node", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	transferor, err := ethereumProvider.NewTransferor(ctx, ethClient, cfg.Ethereum.CustodianKey, cfg.Ethereum.ReceiptTTL)
	if err != nil {
		logger.Fatal("Failed to initialize transferor", zap.Error(err))
	}
	defer transferor.Close()
	logger.InfoCtx(ctx, "Connected to Ethereum node",
		zap.String("custodian", transferor.Custodian().Hex()),
	)

	// Connect to NATS JetStream
	publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectTimeout: cfg.NATS.ConnectTimeout,
		ConnectionName: cfg.NATS.ConnectionName,
	})
	if err != nil {
		logger.Fatal("Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	// Assemble the engine and admin controller
	auctionEngine := engine.New(dataStore, transferor, publisher, clock)
	adminController := admin.New(dataStore, transferor, publisher, clock)

	// Create and start server
	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		JWTPublicKey: cfg.Auth.JWTPublicKey,
	}, auctionEngine, adminController)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Use a fresh context for shutdown since the main one is canceled
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Auction engine stopped")
}
