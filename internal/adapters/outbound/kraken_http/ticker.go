package kraken_http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PairKey returns the ticker result key for a 6-letter pair: X<BASE>Z<QUOTE>,
// uppercased. "xbtusd" -> "XXBTZUSD".
func PairKey(pair string) (string, error) {
	base, quote, err := SplitPair(pair)
	if err != nil {
		return "", err
	}
	return "X" + base + "Z" + quote, nil
}

// SplitPair splits a 6-letter pair into uppercased base and quote codes.
func SplitPair(pair string) (base, quote string, err error) {
	if len(pair) != 6 {
		return "", "", fmt.Errorf("%w: %q must be 6 letters", ErrInvalidPair, pair)
	}
	for _, r := range pair {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return "", "", fmt.Errorf("%w: %q must be 6 letters", ErrInvalidPair, pair)
		}
	}
	up := strings.ToUpper(pair)
	return up[:3], up[3:], nil
}

type tickerEntry struct {
	Ask []json.RawMessage `json:"a"`
}

// GetSpotPrice returns the current ask price for pair.
func (c *Client) GetSpotPrice(ctx context.Context, pair string) (float64, error) {
	key, err := PairKey(pair)
	if err != nil {
		return 0, err
	}

	result, err := c.Public(ctx, EndpointTicker, url.Values{"pair": {pair}})
	if err != nil {
		return 0, err
	}
	return parseAsk(result, key)
}

func parseAsk(result json.RawMessage, key string) (float64, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(result, &entries); err != nil {
		return 0, unexpectedFormat(result, err)
	}
	raw, ok := entries[key]
	if !ok {
		return 0, unexpectedFormat(result, fmt.Errorf("%w: %s", errMissingKey, key))
	}

	var entry tickerEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return 0, unexpectedFormat(result, fmt.Errorf("%w: %v", errBadShape, err))
	}
	if len(entry.Ask) == 0 {
		return 0, unexpectedFormat(result, errBadShape)
	}

	var s string
	if err := json.Unmarshal(entry.Ask[0], &s); err != nil {
		return 0, unexpectedFormat(result, fmt.Errorf("%w: %s", errBadPrice, entry.Ask[0]))
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, unexpectedFormat(result, fmt.Errorf("%w: %q", errBadPrice, s))
	}
	return price, nil
}
