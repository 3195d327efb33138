package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/bitcoin-exporter/internal/bitcoin"
	"github.com/goodnatureofminers/bitcoin-exporter/internal/config"
	"github.com/goodnatureofminers/bitcoin-exporter/internal/exporter"
	"github.com/goodnatureofminers/bitcoin-exporter/internal/logging"
	"github.com/goodnatureofminers/bitcoin-exporter/internal/metrics"
)

const version = "1.0.0"

type options struct {
	Port        int           `short:"p" long:"port" env:"BITCOIN_EXPORTER_PORT" description:"exporter HTTP server port (default 8000)"`
	HostIP      string        `long:"host-ip" env:"BITCOIN_EXPORTER_HOST_IP" description:"bitcoin node host IP (default 127.0.0.1)"`
	RPCPort     int           `long:"rpc-port" env:"BITCOIN_EXPORTER_RPC_PORT" description:"bitcoin node RPC port (default 8332)"`
	RPCUser     string        `long:"rpc-user" env:"BITCOIN_RPC_USER" description:"bitcoin RPC username"`
	RPCPassword string        `long:"rpc-password" env:"BITCOIN_RPC_PASSWORD" description:"bitcoin RPC password"`
	RPCTimeout  time.Duration `long:"rpc-timeout" env:"BITCOIN_EXPORTER_RPC_TIMEOUT" description:"HTTP timeout for RPC requests" default:"30s"`
	RPCRate     int           `long:"rpc-rps" env:"BITCOIN_EXPORTER_RPC_RPS" description:"max RPC requests per second, 0 disables the limit" default:"0"`
	Interval    time.Duration `long:"interval" env:"BITCOIN_EXPORTER_INTERVAL" description:"poll interval (default 60s)"`
	Concurrency int           `long:"concurrency" env:"BITCOIN_EXPORTER_CONCURRENCY" description:"RPC calls in flight per poll cycle" default:"1"`
	AppDir      string        `long:"app-dir" env:"BITCOIN_EXPORTER_APP_DIR" description:"exporter state directory holding exporter.yaml and logs"`
	BitcoinDir  string        `long:"bitcoin-dir" env:"BITCOIN_EXPORTER_BITCOIN_DIR" description:"bitcoin data directory holding bitcoin.conf"`
	LogLevel    string        `long:"log-level" env:"BITCOIN_EXPORTER_LOG_LEVEL" description:"log level" default:"info"`
	Version     bool          `short:"v" long:"version" description:"print version and exit"`
}

func main() {
	opts := options{}
	if _, err := flags.ParseArgs(&opts, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}
	if opts.Version {
		fmt.Println(version)
		return
	}

	if opts.AppDir == "" {
		opts.AppDir = config.AppDir()
	}
	if opts.BitcoinDir == "" {
		opts.BitcoinDir = config.NodeDir()
	}
	if err := os.MkdirAll(opts.AppDir, 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "create app dir %s: %v\n", opts.AppDir, err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Options{
		Level:      opts.LogLevel,
		Filename:   filepath.Join(opts.AppDir, "exporter.log"),
		MaxSize:    10,
		MaxBackups: 3,
	})
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		logger.Fatal("bitcoin exporter failed", zap.Error(err))
	}
}

func run(ctx context.Context, opts options, logger *zap.Logger) error {
	file, err := config.LoadFile(opts.AppDir)
	if err != nil {
		logger.Warn("exporter config not fully loaded, using defaults for missing keys", zap.Error(err))
	}
	settings := config.Resolve(config.Overrides{
		Port:     opts.Port,
		HostIP:   opts.HostIP,
		RPCPort:  opts.RPCPort,
		Interval: opts.Interval,
	}, file)
	if err := settings.Validate(); err != nil {
		return err
	}

	creds, err := config.ResolveCredentials(opts.RPCUser, opts.RPCPassword, opts.BitcoinDir)
	if err != nil {
		return err
	}
	logger.Info("got rpc credentials", zap.String("source", creds.Source))

	registry := metrics.NewRegistry()
	client, err := bitcoin.NewRPCClient(bitcoin.Config{
		Host:     settings.HostIP,
		Port:     settings.RPCPort,
		User:     creds.User,
		Password: creds.Password,
		Timeout:  opts.RPCTimeout,
		RPS:      opts.RPCRate,
	}, metrics.NewRPCClient(registry.Registerer()), logger.Named("rpc"))
	if err != nil {
		return fmt.Errorf("init bitcoin rpc client: %w", err)
	}

	svc, err := exporter.NewService(client, registry, settings.Interval, opts.Concurrency, logger.Named("exporter"))
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", ":"+strconv.Itoa(settings.Port))
	if err != nil {
		return fmt.Errorf("listen metrics server: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serverDone := serveMetrics(ctx, cancel, listener, registry.Handler(), logger)
	logger.Info("starting bitcoin exporter",
		zap.Int("pid", os.Getpid()),
		zap.String("node", net.JoinHostPort(settings.HostIP, strconv.Itoa(settings.RPCPort))),
	)

	err = svc.Run(ctx)
	if serveErr := <-serverDone; serveErr != nil {
		return fmt.Errorf("metrics server: %w", serveErr)
	}
	logger.Info("stopped bitcoin exporter")
	return err
}

// serveMetrics serves handler on listener until ctx is done. A serve failure
// cancels ctx so the poll loop stops too. The returned channel yields the
// serve error, or nil, once the server has shut down.
func serveMetrics(
	ctx context.Context,
	cancel context.CancelFunc,
	listener net.Listener,
	handler http.Handler,
	logger *zap.Logger,
) <-chan error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	mux.Handle("/", handler)

	srv := &http.Server{
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	done := make(chan error, 1)
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting metrics server", zap.String("addr", listener.Addr().String()))
		err := srv.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		if err != nil {
			logger.Error("metrics server failed", zap.Error(err))
			cancel()
		}
		serveErr <- err
	}()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down metrics server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
		done <- <-serveErr
	}()

	return done
}
