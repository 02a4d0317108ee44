package kraken_http

import (
	"encoding/json"
)

// envelope is the wrapper Kraken puts around every response. Error is
// normally an array of strings; a bare string is accepted too.
type envelope struct {
	Error  json.RawMessage `json:"error"`
	Result json.RawMessage `json:"result"`
}

// validateResponse turns a raw HTTP response into the result member or an
// *APIError. Non-2xx bodies are never parsed.
func validateResponse(status int, body []byte) (json.RawMessage, error) {
	if status < 200 || status >= 300 {
		return nil, unreachable(status, nil)
	}
	if !json.Valid(body) {
		return nil, notJSON(body, nil)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, unexpectedFormat(body, err)
	}
	if errs := remoteErrors(env.Error); len(errs) > 0 {
		return nil, remote(errs, body)
	}
	return env.Result, nil
}

func remoteErrors(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single == "" {
			return nil
		}
		return []string{single}
	}
	// Unknown shape: surface it verbatim rather than dropping it.
	return []string{string(raw)}
}
