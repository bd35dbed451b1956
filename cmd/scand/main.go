package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/zecscope/zecscope-backend/internal/metrics"
	"github.com/zecscope/zecscope-backend/internal/model"
	"github.com/zecscope/zecscope-backend/internal/notecrypt"
	"github.com/zecscope/zecscope-backend/internal/scan"
	"github.com/zecscope/zecscope-backend/internal/transport"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

var config struct {
	Addr    string `long:"addr" env:"SCAND_ADDR" description:"listen address" default:":8080"`
	Network string `long:"network" env:"SCAND_NETWORK" description:"zcash network (mainnet|testnet)" default:"mainnet"`
	Workers int    `long:"workers" env:"SCAND_WORKERS" description:"trial decryption workers per block" default:"4"`
	ScanRPS int    `long:"scan-rps" env:"SCAND_SCAN_RPS" description:"scan requests per second" default:"5"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	network := model.Network(config.Network)
	if network != model.Mainnet && network != model.Testnet {
		logger.Fatal("Unknown network", zap.String("network", config.Network))
	}

	scanner, err := scan.NewScanner(
		network,
		notecrypt.NewEngine(),
		metrics.NewScanner(network),
		config.Workers,
		logger.Named("scanner"),
	)
	if err != nil {
		logger.Fatal("Build scanner", zap.Error(err))
	}
	handler, err := transport.NewScanHandler(scanner, logger.Named("transport"))
	if err != nil {
		logger.Fatal("Build scan handler", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("", rateLimited(ratelimit.New(config.ScanRPS)))
	handler.Register(api)

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(router),
		ReadTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr), zap.String("network", config.Network))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}

func rateLimited(rl ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		rl.Take()
		c.Next()
	}
}
