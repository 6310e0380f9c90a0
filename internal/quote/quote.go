// Package quote runs the price estimation pipeline for a single request.
package quote

import (
	"mandiprice/internal/catalog"
	"mandiprice/internal/locale"
	"mandiprice/internal/quantity"
	"mandiprice/internal/rate"
)

// Request is the caller's free-text description of what they want priced.
type Request struct {
	Product  string `json:"product"`
	Quantity string `json:"quantity"`
	Location string `json:"location"`
	Language string `json:"language"`
}

type Response struct {
	Product        string  `json:"product"`
	QuantityKg     float64 `json:"quantity_kg"`
	Location       string  `json:"location"`
	PriceRange     string  `json:"price_range"`
	NegotiationTip string  `json:"negotiation_tip"`

	Low      int    `json:"-"`
	High     int    `json:"-"`
	Language string `json:"-"`
}

type Service struct {
	cat *catalog.Catalog
	est rate.Estimator
}

// NewService falls back to the built-in catalog and the randomized estimator
// for nil arguments.
func NewService(cat *catalog.Catalog, est rate.Estimator) *Service {
	if cat == nil {
		cat = catalog.Default()
	}
	if est == nil {
		est = rate.NewHeuristic(cat, nil)
	}
	return &Service{cat: cat, est: est}
}

func (s *Service) Catalog() *catalog.Catalog { return s.cat }

// Quote never fails: unknown products, quantities and languages all have defaults.
func (s *Service) Quote(req Request) Response {
	key := s.cat.Normalize(req.Product)
	qty := quantity.Extract(req.Quantity)
	band := s.est.Estimate(key, qty, req.Location)
	phrases := locale.Format(band.Low, band.High, req.Language)
	return Response{
		Product:        key,
		QuantityKg:     qty,
		Location:       req.Location,
		PriceRange:     phrases.PriceRange,
		NegotiationTip: phrases.NegotiationTip,
		Low:            band.Low,
		High:           band.High,
		Language:       phrases.Language,
	}
}
