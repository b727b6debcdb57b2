package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"openfund/internal/checkpoint"
	"openfund/internal/config"
	"openfund/internal/core"
	"openfund/internal/db"
	"openfund/internal/ethereum"
	"openfund/internal/http/handler"
	"openfund/internal/http/handler/middleware"
	"openfund/internal/http/payload"
	"openfund/internal/http/server"
	"openfund/internal/ledger"
	"openfund/internal/metrics"
	"openfund/internal/publisher"
	"openfund/internal/reconciler"
	"openfund/internal/repository"
	"openfund/internal/scanner"
	"openfund/internal/scheduler"
	"openfund/internal/wallet"
	"openfund/pkg/jwt"
	"openfund/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	appName        = "openfund"
	checkpointName = "event_scanner"
)

func Start() error {
	logger := log.NewZapLogger(appName, zapcore.InfoLevel)

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	if cfg.LogFile != "" {
		logger = log.NewRotatingZapLogger(appName, log.ParseLevel(cfg.LogLevel), cfg.LogFile)
	} else {
		logger = log.NewZapLogger(appName, log.ParseLevel(cfg.LogLevel))
	}
	defer logger.Sync()

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewRepository(dbConn)

	if err = repo.MigrateTables(&checkpoint.Checkpoint{}); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	client, err := ethclient.Dial(cfg.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}
	defer client.Close()

	contract, err := ethereum.NewContract(cfg.ContractAddress)
	if err != nil {
		logger.Errorw("invalid contract address", "error", err)
		return err
	}

	ethService := ethereum.NewEthService(client, contract)
	appMetrics := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	var loops loopGroup

	if cfg.Enabled(config.ComponentScanner) {
		sc := scanner.New(
			logger.Named("scanner"),
			ethService,
			checkpoint.NewStore(dbConn, checkpointName),
			ledger.NewWriter(logger.Named("ledger"), repo, appMetrics),
			appMetrics,
			scanner.Config{
				StartBlock:   cfg.Scanner.StartBlock,
				ChunkSize:    cfg.Scanner.ChunkSize,
				PollInterval: cfg.Scanner.PollInterval,
				Backoff:      cfg.Scanner.Backoff,
			})

		loops.Add(sc.Run)
	}

	if cfg.Enabled(config.ComponentReconciler) {
		rec, err := reconciler.New(logger.Named("reconciler"), repo, ethService, appMetrics, reconciler.Config{
			Interval: cfg.Reconciler.Interval,
			Backoff:  cfg.Reconciler.Backoff,
			Workers:  cfg.Reconciler.Workers,
		})
		if err != nil {
			logger.Errorw("failed to create reconciler", "error", err)
			return err
		}
		defer rec.Close()

		loops.Add(rec.Run)
	}

	jobs, err := scheduler.NewManager(logger.Named("scheduler"))
	if err != nil {
		logger.Errorw("failed to create scheduler", "error", err)
		return err
	}

	if cfg.Enabled(config.ComponentPublisher) {
		if err := registerPublisher(ctx, logger, cfg, client, contract, ethService, repo, appMetrics, jobs); err != nil {
			logger.Errorw("failed to set up publisher", "error", err)
			return err
		}
	}

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", appMetrics.Handler())

	if cfg.Enabled(config.ComponentAPI) {
		nonces := wallet.NewNonceIssuer(cfg.Nonce.TTL)
		if cfg.Nonce.TTL > 0 {
			err := jobs.Register(ctx, scheduler.NewFuncJob("nonce_purge", cfg.Nonce.TTL, func(context.Context) {
				if purged := nonces.Purge(); purged > 0 {
					logger.Debugw("expired nonces purged", "count", purged)
				}
			}))
			if err != nil {
				logger.Errorw("failed to schedule nonce purge", "error", err)
				return err
			}
		}

		openFund := core.NewOpenFund(
			logger.Named("core"),
			repo,
			jwt.NewService([]byte(cfg.JWTSecret)),
			nonces,
			wallet.NewAuthenticator(nonces, wallet.NewVerifier(), cfg.Nonce.SingleUse))

		handler.NewOpenFundHandler(logger.Named("http"), payload.DecodeValidator{}, openFund).Register(mux)
	}

	loops.Start(ctx)
	jobs.Start()

	// middleware
	hdlr := middleware.NewSessionMiddleware(cfg.Session.MaxAge, cfg.Session.SecureCookie).Session(mux)
	hdlr = middleware.NewLoggingMiddleware(logger.Named("http")).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	err = run(ctx, srv)

	// a scanner mid-chunk finishes the chunk before returning
	stop()
	loops.Wait()
	if sdErr := jobs.Stop(); sdErr != nil {
		logger.Errorw("failed to stop scheduler", "error", sdErr)
	}

	logger.Infow("shutdown complete")
	return err
}

func registerPublisher(ctx context.Context, logger *zap.SugaredLogger, cfg config.App, client *ethclient.Client,
	contract *ethereum.Contract, chain *ethereum.EthService, repo *repository.Repository, m *metrics.Metrics, jobs *scheduler.Manager) error {
	if cfg.OperatorPrivateKey == "" {
		logger.Warnw("publisher disabled, no operator key configured")
		return nil
	}

	creator, err := ethereum.NewProjectCreator(ctx, client, contract, cfg.OperatorPrivateKey)
	if err != nil {
		return fmt.Errorf("create project transactor: %w", err)
	}

	pub := publisher.New(logger.Named("publisher"), repo, creator, chain, m, cfg.Publisher.Interval)
	return jobs.Register(ctx, pub)
}

func run(ctx context.Context, server *server.HTTPServer) error {
	errChan := server.Run()

	var err error
	select {
	case <-ctx.Done():
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
