package process

import (
	"context"

	"github.com/charleschow/kraken-buy/internal/adapters/outbound/kraken_http"
)

// Exchange is what a buy run needs from the exchange.
// Satisfied by *kraken_http.Client.
type Exchange interface {
	GetSpotPrice(ctx context.Context, pair string) (float64, error)
	PlaceOrder(ctx context.Context, req kraken_http.OrderRequest) (*kraken_http.OrderConfirmation, error)
}
