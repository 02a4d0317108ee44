package sizing

import (
	"errors"
	"math"
	"strconv"
)

// VolumeDecimals is the precision Kraken accepts for XBT order volume.
const VolumeDecimals = 8

var (
	ErrNonPositiveSpend = errors.New("spend must be greater than zero")
	ErrNonPositivePrice = errors.New("price must be greater than zero")
)

// Volume converts a quote-currency spend into base-currency volume at price.
func Volume(spend, price float64) (float64, error) {
	if !(spend > 0) || math.IsInf(spend, 0) {
		return 0, ErrNonPositiveSpend
	}
	if !(price > 0) || math.IsInf(price, 0) {
		return 0, ErrNonPositivePrice
	}
	return spend / price, nil
}

// FormatVolume renders v with VolumeDecimals places, the form sent as the
// AddOrder volume parameter.
func FormatVolume(v float64) string {
	return strconv.FormatFloat(v, 'f', VolumeDecimals, 64)
}
