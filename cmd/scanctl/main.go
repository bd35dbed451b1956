// Command scanctl runs an offline scan over a compact block range
// saved as a scan-request JSON file and prints the discovered
// transactions to stdout.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/zecscope/zecscope-backend/internal/metrics"
	"github.com/zecscope/zecscope-backend/internal/model"
	"github.com/zecscope/zecscope-backend/internal/notecrypt"
	"github.com/zecscope/zecscope-backend/internal/scan"
	"go.uber.org/zap"
)

var config struct {
	File    string `long:"file" env:"SCANCTL_FILE" description:"scan request JSON file" required:"true"`
	Network string `long:"network" env:"SCANCTL_NETWORK" description:"zcash network (mainnet|testnet)" default:"mainnet"`
	Workers int    `long:"workers" env:"SCANCTL_WORKERS" description:"trial decryption workers per block" default:"4"`
	Summary bool   `long:"summary" description:"print a summary envelope instead of the bare transaction list"`
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		os.Exit(1)
	}

	network := model.Network(config.Network)
	if network != model.Mainnet && network != model.Testnet {
		logger.Fatal("Unknown network", zap.String("network", config.Network))
	}

	raw, err := os.ReadFile(config.File)
	if err != nil {
		logger.Fatal("Read request file", zap.Error(err))
	}
	var req model.ScanRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		logger.Fatal("Decode request file", zap.Error(err))
	}

	scanner, err := scan.NewScanner(network, notecrypt.NewEngine(), metrics.NewScanner(network), config.Workers, logger)
	if err != nil {
		logger.Fatal("Build scanner", zap.Error(err))
	}

	var out any
	if config.Summary {
		out, err = scanner.ScanSummary(context.Background(), &req)
	} else {
		out, err = scanner.Scan(context.Background(), &req)
	}
	if err != nil {
		logger.Fatal("Scan failed", zap.Error(err))
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		logger.Fatal("Encode result", zap.Error(err))
	}
	os.Stdout.Write(append(encoded, '\n'))
}
