// Package types holds the wire envelopes shared by every API response.
package types

// SuccessEnvelope wraps all 2xx payloads under a single "data" key.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error body. Details is only populated for
// validation failures; internal errors never leak their cause here.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
