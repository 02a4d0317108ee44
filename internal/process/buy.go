package process

import (
	"context"
	"fmt"
	"io"

	"github.com/charleschow/kraken-buy/internal/adapters/outbound/kraken_http"
	"github.com/charleschow/kraken-buy/internal/config"
	"github.com/charleschow/kraken-buy/internal/core/sizing"
	"github.com/charleschow/kraken-buy/internal/telemetry"
)

type Stage string

const (
	StageSpotPrice  Stage = "fetch spot price"
	StageSizing     Stage = "size order"
	StagePlaceOrder Stage = "place order"
)

// StageError attributes a failure to the step of the run that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("unable to %s: %v", e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// Receipt summarizes a completed run.
type Receipt struct {
	Pair          string
	Price         float64
	Volume        string
	ClientOrderID string
	Validated     bool
	Confirmation  *kraken_http.OrderConfirmation
}

// Buy fetches the ask for order.Pair, sizes a market buy from order.Spend and
// submits it. Report lines go to out. newClientID may be nil.
func Buy(ctx context.Context, ex Exchange, order config.OrderConfig, newClientID func() string, out io.Writer) (*Receipt, error) {
	base, quote, err := kraken_http.SplitPair(order.Pair)
	if err != nil {
		return nil, &StageError{Stage: StageSpotPrice, Err: err}
	}

	price, err := ex.GetSpotPrice(ctx, order.Pair)
	if err != nil {
		return nil, &StageError{Stage: StageSpotPrice, Err: err}
	}

	vol, err := sizing.Volume(order.Spend, price)
	if err != nil {
		return nil, &StageError{Stage: StageSizing, Err: err}
	}
	volume := sizing.FormatVolume(vol)

	fmt.Fprintf(out, "Current %s price: %v %s\n", base, price, quote)
	fmt.Fprintf(out, "Order Value: %v %s -> %s %s\n", order.Spend, quote, volume, base)

	req := kraken_http.OrderRequest{
		Pair:     order.Pair,
		Volume:   volume,
		Validate: order.Validate,
	}
	if newClientID != nil {
		req.ClientOrderID = newClientID()
	}
	if !req.Validate {
		telemetry.Warnf("validate=false: order will be executed cl_ord_id=%s", req.ClientOrderID)
	}

	conf, err := ex.PlaceOrder(ctx, req)
	if err != nil {
		return nil, &StageError{Stage: StagePlaceOrder, Err: err}
	}

	if req.Validate {
		fmt.Fprintf(out, "Order validated, not executed: %s\n", conf.Description.Order)
	} else {
		fmt.Fprintf(out, "Order placed: %s txid=%v\n", conf.Description.Order, conf.TxIDs)
	}

	return &Receipt{
		Pair:          order.Pair,
		Price:         price,
		Volume:        volume,
		ClientOrderID: req.ClientOrderID,
		Validated:     req.Validate,
		Confirmation:  conf,
	}, nil
}
