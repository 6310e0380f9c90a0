package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"mandiprice/internal/quote"
)

// ErrInvalidJSON is returned when the body is not parseable JSON.
var ErrInvalidJSON = errors.New("invalid json")

// FieldError reports a missing or mistyped request field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Reason) }

// decodePriceRequest requires product, quantity, location and language to be
// present as JSON strings. Empty strings are accepted; null is not.
func decodePriceRequest(body []byte) (quote.Request, error) {
	if !json.Valid(body) {
		return quote.Request{}, ErrInvalidJSON
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		return quote.Request{}, &FieldError{Field: "body", Reason: "must be a JSON object"}
	}
	var req quote.Request
	fields := []struct {
		key string
		dst *string
	}{
		{"product", &req.Product},
		{"quantity", &req.Quantity},
		{"location", &req.Location},
		{"language", &req.Language},
	}
	for _, f := range fields {
		v, err := requireString(payload, f.key)
		if err != nil {
			return quote.Request{}, err
		}
		*f.dst = v
	}
	return req, nil
}

func requireString(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", &FieldError{Field: key, Reason: "field required"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldError{Field: key, Reason: "must be a string"}
	}
	return s, nil
}
