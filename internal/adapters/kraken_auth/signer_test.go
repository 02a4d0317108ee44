package kraken_auth

import (
	"encoding/base64"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addOrderPath = "/0/private/AddOrder"

func addOrderParams() url.Values {
	v := url.Values{}
	v.Set("nonce", "1700000000000")
	v.Set("pair", "XBTUSD")
	v.Set("volume", "1")
	v.Set("type", "buy")
	v.Set("ordertype", "market")
	v.Set("validate", "true")
	return v
}

func TestSign_Golden(t *testing.T) {
	s, err := NewSigner("key", base64.StdEncoding.EncodeToString([]byte("test-secret")))
	require.NoError(t, err)

	body := addOrderParams().Encode()
	require.Equal(t, "nonce=1700000000000&ordertype=market&pair=XBTUSD&type=buy&validate=true&volume=1", body)

	got := s.Sign(addOrderPath, "1700000000000", body)
	assert.Equal(t, "yuXqOovXmsGCrQ//NCT1qGGQ4gQ8vxWjuOeSAh5dTvSmgQRnw/O/MzbnricdembNqmykxA9YPu28AYauaWOh/A==", got)
}

// Vector published in Kraken's REST authentication guide.
func TestSign_KrakenDocumentationVector(t *testing.T) {
	s, err := NewSigner("key", "kQH5HW/8p1uGOVjbgWA7FunAmGO8lsSUXNsu3eow76sz84Q18fWxnyRzBHCd3pd5nE9qa99HAZtuZuj6F1huXg==")
	require.NoError(t, err)

	body := "nonce=1616492376594&ordertype=limit&pair=XBTUSD&price=37500&type=buy&volume=1.25"
	got := s.Sign(addOrderPath, "1616492376594", body)
	assert.Equal(t, "4/dpxb3iT4tp/ZCVEwSnEsLxx0bqyhLpdfOpc6fn7OR8+UClSV5n9E6aSS8MPtnRfp32bAb0nmbRn6H8ndwLUQ==", got)
}

func TestSign_DeterministicAndSensitive(t *testing.T) {
	s, err := NewSigner("key", base64.StdEncoding.EncodeToString([]byte("test-secret")))
	require.NoError(t, err)

	body := addOrderParams().Encode()
	base := s.Sign(addOrderPath, "1700000000000", body)
	assert.Equal(t, base, s.Sign(addOrderPath, "1700000000000", body))

	assert.NotEqual(t, base, s.Sign(addOrderPath, "1700000000001", body), "nonce change")
	assert.NotEqual(t, base, s.Sign("/0/private/AddOrdeR", "1700000000000", body), "path change")
	assert.NotEqual(t, base, s.Sign(addOrderPath, "1700000000000", body[:len(body)-1]+"2"), "body change")

	other, err := NewSigner("key", base64.StdEncoding.EncodeToString([]byte("test-secreT")))
	require.NoError(t, err)
	assert.NotEqual(t, base, other.Sign(addOrderPath, "1700000000000", body), "secret change")
}

func TestNewSigner_Rejects(t *testing.T) {
	_, err := NewSigner("", "c2VjcmV0")
	assert.Error(t, err)

	_, err = NewSigner("key", "")
	assert.Error(t, err)

	_, err = NewSigner("key", "not base64!")
	assert.ErrorContains(t, err, "decode api secret")
}

func TestSignRequest_SetsHeaders(t *testing.T) {
	s, err := NewSigner("my-key", base64.StdEncoding.EncodeToString([]byte("test-secret")))
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "https://api.kraken.com"+addOrderPath, nil)
	require.NoError(t, err)

	body := addOrderParams().Encode()
	require.NoError(t, s.SignRequest(req, "1700000000000", body))

	assert.Equal(t, "my-key", req.Header.Get("API-Key"))
	assert.Equal(t, s.Sign(addOrderPath, "1700000000000", body), req.Header.Get("API-Sign"))
}

func TestSignRequest_NilSigner(t *testing.T) {
	var s *Signer
	req, err := http.NewRequest(http.MethodPost, "https://api.kraken.com"+addOrderPath, nil)
	require.NoError(t, err)

	require.NoError(t, s.SignRequest(req, "1", ""))
	assert.Empty(t, req.Header.Get("API-Sign"))
	assert.False(t, s.Enabled())
}

func TestNonceSource_StrictlyIncreasing(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	clock := fixed
	n := NewNonceSourceWithClock(func() time.Time { return clock })

	assert.Equal(t, "1700000000000", n.Next())
	assert.Equal(t, "1700000000001", n.Next(), "stalled clock")

	clock = fixed.Add(-time.Second)
	assert.Equal(t, "1700000000002", n.Next(), "clock stepped back")

	clock = fixed.Add(time.Second)
	assert.Equal(t, "1700000001000", n.Next())
}
