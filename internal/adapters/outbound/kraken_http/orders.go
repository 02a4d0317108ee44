package kraken_http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/charleschow/kraken-buy/internal/telemetry"
)

// OrderRequest describes a market buy. Volume is in base currency and is sent
// exactly as given.
type OrderRequest struct {
	Pair          string
	Volume        string
	Validate      bool   // dry run: Kraken checks the order but does not execute it
	ClientOrderID string // optional cl_ord_id
}

// OrderConfirmation is the AddOrder result. TxIDs is empty for validate-only orders.
type OrderConfirmation struct {
	Description struct {
		Order string `json:"order"`
		Close string `json:"close,omitempty"`
	} `json:"descr"`
	TxIDs []string `json:"txid"`
}

func (r OrderRequest) params() url.Values {
	v := url.Values{}
	v.Set("pair", r.Pair)
	v.Set("volume", r.Volume)
	v.Set("type", "buy")
	v.Set("ordertype", "market")
	v.Set("validate", strconv.FormatBool(r.Validate))
	if r.ClientOrderID != "" {
		v.Set("cl_ord_id", r.ClientOrderID)
	}
	return v
}

// PlaceOrder submits a signed market buy via AddOrder.
func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) (*OrderConfirmation, error) {
	if _, _, err := SplitPair(req.Pair); err != nil {
		return nil, err
	}
	if req.Volume == "" {
		return nil, fmt.Errorf("place order: volume is empty")
	}

	result, err := c.Private(ctx, EndpointAddOrder, req.params())
	if err != nil {
		telemetry.Metrics.OrderErrors.Inc()
		return nil, err
	}

	var conf OrderConfirmation
	if err := json.Unmarshal(result, &conf); err != nil {
		telemetry.Metrics.OrderErrors.Inc()
		return nil, unexpectedFormat(result, fmt.Errorf("%w: %v", errBadOrderBody, err))
	}

	telemetry.Metrics.OrdersSent.Inc()
	telemetry.Infof("kraken: order accepted pair=%s volume=%s validate=%t -> %q txid=%v",
		req.Pair, req.Volume, req.Validate, conf.Description.Order, conf.TxIDs)

	return &conf, nil
}
