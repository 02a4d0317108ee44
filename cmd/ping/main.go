// Measure round-trip latency to the Kraken public Ticker endpoint.
//
// Each sample is a full GetSpotPrice call, so response validation and
// ticker parsing are included in the timing.
//
// Usage:
//
//	go run ./cmd/ping                 # default: 10 requests for XBTUSD
//	go run ./cmd/ping -n 50 -pair ethgbp
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charleschow/kraken-buy/internal/adapters/outbound/kraken_http"
	"github.com/charleschow/kraken-buy/internal/config"
	"github.com/charleschow/kraken-buy/internal/telemetry"
)

func main() {
	n := flag.Int("n", 10, "Number of requests")
	pair := flag.String("pair", "xbtusd", "Currency pair to query")
	flag.Parse()

	cfg := config.Load()
	telemetry.Init(telemetry.ParseLogLevel(cfg.LogLevel))

	client := kraken_http.NewClient(cfg.KrakenBaseURL, nil, kraken_http.WithTimeout(cfg.HTTPTimeout))

	fmt.Printf("\n%s\n", strings.Repeat("=", 55))
	fmt.Printf("  KRAKEN Ticker %s — %s\n", strings.ToUpper(*pair), cfg.KrakenBaseURL)
	fmt.Printf("%s\n", strings.Repeat("=", 55))

	latencies := make([]float64, 0, *n)
	failures := 0
	pad := len(fmt.Sprintf("%d", *n))
	for i := 1; i <= *n; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
		start := time.Now()
		price, err := client.GetSpotPrice(ctx, *pair)
		elapsed := time.Since(start)
		cancel()
		if err != nil {
			failures++
			fmt.Printf("  [%*d/%d]  FAILED — %v\n", pad, i, *n, err)
			continue
		}
		ms := float64(elapsed.Microseconds()) / 1000
		latencies = append(latencies, ms)
		fmt.Printf("  [%*d/%d]  %7.1f ms  (ask %v)\n", pad, i, *n, ms, price)
	}
	printStats(latencies)
	fmt.Println()

	if failures == *n {
		os.Exit(1)
	}
}

func printStats(latencies []float64) {
	if len(latencies) < 2 {
		fmt.Printf("\n  Not enough samples for statistics.\n")
		return
	}
	sorted := make([]float64, len(latencies))
	copy(sorted, latencies)
	sort.Float64s(sorted)

	mean := 0.0
	for _, v := range latencies {
		mean += v
	}
	mean /= float64(len(latencies))

	variance := 0.0
	for _, v := range latencies {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(latencies) - 1)

	p95Idx := int(float64(len(sorted)) * 0.95)
	if p95Idx >= len(sorted) {
		p95Idx = len(sorted) - 1
	}

	fmt.Printf("\n  --- Stats (%d requests) ---\n", len(latencies))
	fmt.Printf("  Min:    %7.1f ms\n", sorted[0])
	fmt.Printf("  Max:    %7.1f ms\n", sorted[len(sorted)-1])
	fmt.Printf("  Mean:   %7.1f ms\n", mean)
	fmt.Printf("  Median: %7.1f ms\n", sorted[len(sorted)/2])
	fmt.Printf("  Stdev:  %7.1f ms\n", math.Sqrt(variance))
	fmt.Printf("  p95:    %7.1f ms\n", sorted[p95Idx])
}
