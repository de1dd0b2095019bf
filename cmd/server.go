package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"

	"github.com/0Selene/DRManagerProject-Complete/internal/config"
	"github.com/0Selene/DRManagerProject-Complete/internal/core"
	"github.com/0Selene/DRManagerProject-Complete/internal/db"
	"github.com/0Selene/DRManagerProject-Complete/internal/ethereum"
	"github.com/0Selene/DRManagerProject-Complete/internal/http/handler"
	"github.com/0Selene/DRManagerProject-Complete/internal/http/handler/middleware"
	"github.com/0Selene/DRManagerProject-Complete/internal/http/payload"
	"github.com/0Selene/DRManagerProject-Complete/internal/http/server"
	"github.com/0Selene/DRManagerProject-Complete/internal/ipfs"
	"github.com/0Selene/DRManagerProject-Complete/internal/repository"
	"github.com/0Selene/DRManagerProject-Complete/pkg/log"
)

func Start() error {
	logger := log.NewZapLogger("drmanager", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewRegistryRepository(dbConn)

	if err := repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// storage gateway
	pinClient := ipfs.NewPinClient(config.StorageAPIURL, config.StorageAuthToken)
	storageService := ipfs.NewService(pinClient, config.GatewayPattern, "")

	// ledger client
	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("ethereum node connection failed", "error", err)
		return err
	}

	ledgerService := ethereum.NewNodeService(client)

	// registry
	registry := core.NewRegistry(
		logger,
		repo,
		storageService,
		ledgerService)

	// background confirmation verifier
	verifier := core.NewVerifier(logger, repo, ledgerService, config.VerifyInterval)
	verifierCtx, stopVerifier := context.WithCancel(context.Background())
	defer stopVerifier()
	go verifier.Run(verifierCtx)

	// handler
	registryHlr := handler.NewRegistryHandler(
		logger,
		payload.DecodeValidator{},
		registry,
		config.MaxUploadBytes)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.UploadFile, registryHlr.HandleUploadFile)
	mux.HandleFunc(handler.RegisterContent, registryHlr.HandleRegisterContent)
	mux.HandleFunc(handler.UserContent, registryHlr.HandleUserContent)
	mux.HandleFunc(handler.Marketplace, registryHlr.HandleMarketplace)
	mux.HandleFunc(handler.RecordTransaction, registryHlr.HandleRecordTransaction)
	mux.HandleFunc(handler.UploadStatus, registryHlr.HandleUploadStatus)
	mux.HandleFunc(handler.HealthCheck, registryHlr.HandleHealth)
	mux.HandleFunc(handler.GlobalStats, registryHlr.HandleGlobalStats)
	mux.HandleFunc(handler.UserStats, registryHlr.HandleUserStats)
	mux.HandleFunc("/", registryHlr.HandleNotFound)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
