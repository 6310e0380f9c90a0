package server

import (
	"errors"
	"testing"
)

func TestDecodePriceRequest(t *testing.T) {
	req, err := decodePriceRequest([]byte(`{"product":"Tomato","quantity":"3 kg","location":"Kolkata","language":"bn","extra":1}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.Product != "Tomato" || req.Quantity != "3 kg" || req.Location != "Kolkata" || req.Language != "bn" {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestDecodePriceRequest_Errors(t *testing.T) {
	if _, err := decodePriceRequest([]byte(`{`)); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
	_, err := decodePriceRequest([]byte(`{"product":"x","quantity":true,"location":"y","language":"en"}`))
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "quantity" || fe.Reason != "must be a string" {
		t.Fatalf("unexpected error: %v", err)
	}
	// first missing field in declaration order is reported
	_, err = decodePriceRequest([]byte(`{}`))
	if !errors.As(err, &fe) || fe.Field != "product" {
		t.Fatalf("unexpected error: %v", err)
	}
}
