package kraken_http

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPair        = errors.New("invalid currency pair")
	ErrMissingCredentials = errors.New("private endpoint requires credentials")

	// Causes wrapped by APIError so callers can tell failure points apart.
	errMissingKey   = errors.New("pair key not in result")
	errBadShape     = errors.New("ticker entry has no ask price")
	errBadPrice     = errors.New("ask price is not a number")
	errBadOrderBody = errors.New("order result did not decode")
)

type ErrorKind int

const (
	KindUnreachable ErrorKind = iota
	KindNotJSON
	KindRemote
	KindUnexpectedFormat
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnreachable:
		return "unreachable"
	case KindNotJSON:
		return "not_json"
	case KindRemote:
		return "remote"
	case KindUnexpectedFormat:
		return "unexpected_format"
	default:
		return "unknown"
	}
}

// APIError is any failure talking to the Kraken API. It is terminal for the run.
type APIError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int      // set for non-2xx responses
	Remote     []string // Kraken's "error" array, verbatim
	Payload    string   // raw body kept for diagnostics
	Err        error
}

func (e *APIError) Error() string {
	if e == nil {
		return "kraken API error"
	}
	switch {
	case e.Kind == KindRemote:
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Remote, ", "))
	case e.Kind == KindUnreachable && e.StatusCode != 0:
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	case e.Kind == KindUnreachable && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Kind == KindUnexpectedFormat:
		return fmt.Sprintf("%s: %s", e.Message, e.Payload)
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

func unreachable(status int, err error) *APIError {
	return &APIError{Kind: KindUnreachable, Message: "unable to contact API", StatusCode: status, Err: err}
}

func notJSON(body []byte, err error) *APIError {
	return &APIError{Kind: KindNotJSON, Message: "response was not JSON", Payload: string(body), Err: err}
}

func remote(errs []string, body []byte) *APIError {
	return &APIError{Kind: KindRemote, Message: "API returned error", Remote: errs, Payload: string(body)}
}

func unexpectedFormat(payload []byte, cause error) *APIError {
	return &APIError{Kind: KindUnexpectedFormat, Message: "unexpected response format", Payload: string(payload), Err: cause}
}
