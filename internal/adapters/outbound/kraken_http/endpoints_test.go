package kraken_http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		wantURL string
		private bool
	}{
		{EndpointTicker, "https://api.kraken.com/0/public/Ticker", false},
		{EndpointAddOrder, "https://api.kraken.com/0/private/AddOrder", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep, err := ResolveEndpoint(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, ep.URL(DefaultBaseURL))
			assert.Equal(t, tt.private, ep.RequiresSigning())
		})
	}
}

func TestResolveEndpoint_Unknown(t *testing.T) {
	for _, name := range []string{"Time", "Balance", "ticker", "addorder", ""} {
		_, err := ResolveEndpoint(name)
		assert.ErrorIs(t, err, ErrInvalidEndpoint, name)
	}
}

func TestPairKey(t *testing.T) {
	for _, pair := range []string{"xbtusd", "XBTUSD", "XbTuSd"} {
		key, err := PairKey(pair)
		require.NoError(t, err)
		assert.Equal(t, "XXBTZUSD", key)
	}

	key, err := PairKey("ethgbp")
	require.NoError(t, err)
	assert.Equal(t, "XETHZGBP", key)
}

func TestPairKey_Invalid(t *testing.T) {
	for _, pair := range []string{"", "xbt", "xbtusdt", "xbt-sd", "xbtus1"} {
		_, err := PairKey(pair)
		assert.ErrorIs(t, err, ErrInvalidPair, pair)
	}
}
