package kraken_http

import (
	"errors"
	"fmt"
)

const (
	DefaultBaseURL = "https://api.kraken.com"
	apiVersion     = "0"

	EndpointTicker   = "Ticker"
	EndpointAddOrder = "AddOrder"
)

// ErrInvalidEndpoint is returned for names missing from the endpoint registry.
var ErrInvalidEndpoint = errors.New("invalid endpoint")

type Visibility int

const (
	Public Visibility = iota
	Private
)

func (v Visibility) String() string {
	if v == Private {
		return "private"
	}
	return "public"
}

// Endpoint is a resolved registry entry.
type Endpoint struct {
	Name       string
	Visibility Visibility
	Path       string // e.g. /0/public/Ticker
}

// URL joins the endpoint path onto baseURL.
func (e Endpoint) URL(baseURL string) string {
	return baseURL + e.Path
}

// RequiresSigning reports whether requests to e must carry API-Key/API-Sign.
func (e Endpoint) RequiresSigning() bool {
	return e.Visibility == Private
}

var registry = map[string]Visibility{
	EndpointTicker:   Public,
	EndpointAddOrder: Private,
}

// ResolveEndpoint maps an endpoint name to its versioned path and visibility.
func ResolveEndpoint(name string) (Endpoint, error) {
	vis, ok := registry[name]
	if !ok {
		return Endpoint{}, fmt.Errorf("%w: %q", ErrInvalidEndpoint, name)
	}
	return Endpoint{
		Name:       name,
		Visibility: vis,
		Path:       fmt.Sprintf("/%s/%s/%s", apiVersion, vis, name),
	}, nil
}
