// Buy a configured amount of crypto on Kraken at market.
//
// Usage:
//
//	go run ./cmd                        # validate-only order from ./config.json
//	go run ./cmd -config order.yaml     # alternate order file
//	go run ./cmd -live                  # actually execute the order
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/google/uuid"

	"github.com/charleschow/kraken-buy/internal/adapters/kraken_auth"
	"github.com/charleschow/kraken-buy/internal/adapters/outbound/kraken_http"
	"github.com/charleschow/kraken-buy/internal/config"
	"github.com/charleschow/kraken-buy/internal/process"
	"github.com/charleschow/kraken-buy/internal/telemetry"
)

func main() {
	cfg := config.Load()

	configPath := flag.String("config", cfg.OrderConfigPath, "Order file (.json, .yaml or .yml)")
	live := flag.Bool("live", false, "Execute the order instead of validating it")
	flag.Parse()

	telemetry.Init(telemetry.ParseLogLevel(cfg.LogLevel))
	os.Exit(run(cfg, *configPath, *live))
}

func run(cfg *config.Config, configPath string, live bool) int {
	defer telemetry.LogSummary()

	// ── Order file ──────────────────────────────────────────────
	order, err := config.LoadOrderConfig(configPath)
	if err != nil {
		telemetry.Errorf("Config: %v", err)
		return 1
	}
	if live {
		order.Validate = false
	}

	// ── Kraken auth + client ────────────────────────────────────
	signer, err := kraken_auth.NewSigner(order.APIKey, order.APISecret)
	if err != nil {
		telemetry.Errorf("Config: %s: %v", configPath, err)
		return 1
	}
	client := kraken_http.NewClient(cfg.KrakenBaseURL, signer, kraken_http.WithTimeout(cfg.HTTPTimeout))
	telemetry.Debugf("Kraken api=%s pair=%s spend=%v validate=%t", cfg.KrakenBaseURL, order.Pair, order.Spend, order.Validate)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RunTimeout)
	defer cancel()

	receipt, err := process.Buy(ctx, client, order, uuid.NewString, os.Stdout)
	if err != nil {
		var apiErr *kraken_http.APIError
		if errors.As(err, &apiErr) && apiErr.Payload != "" {
			telemetry.Debugf("Kraken payload: %s", apiErr.Payload)
		}
		telemetry.Errorf("%v", err)
		return 1
	}

	telemetry.Infof("Done pair=%s volume=%s validate=%t cl_ord_id=%s",
		receipt.Pair, receipt.Volume, receipt.Validated, receipt.ClientOrderID)
	return 0
}
