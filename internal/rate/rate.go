package rate

import (
	"strings"

	"mandiprice/internal/catalog"
)

// Adjustments applied to the per-kg base price.
const (
	BulkThresholdKg   = 50.0
	SmallLotKg        = 5.0
	BulkDiscount      = 2
	SmallLotSurcharge = 2
	MetroSurcharge    = 1
)

// Range is a negotiable per-kg price band.
type Range struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Estimator defines the interface for price estimation engines.
type Estimator interface {
	Estimate(productKey string, quantityKg float64, location string) Range
}

// Heuristic prices from the catalog's base price with quantity and metro
// adjustments, then spreads the result with a bounded random draw.
type Heuristic struct {
	cat *catalog.Catalog
	src Source
}

// NewHeuristic uses the global source when src is nil.
func NewHeuristic(cat *catalog.Catalog, src Source) *Heuristic {
	if src == nil {
		src = GlobalSource()
	}
	return &Heuristic{cat: cat, src: src}
}

// Base returns the adjusted per-kg price before randomization.
func (h *Heuristic) Base(productKey string, quantityKg float64, location string) int {
	base := h.cat.BasePrice(productKey)
	if quantityKg > BulkThresholdKg {
		base -= BulkDiscount
	} else if quantityKg < SmallLotKg {
		base += SmallLotSurcharge
	}
	if h.cat.IsMetro(location) {
		base += MetroSurcharge
	}
	return base
}

func (h *Heuristic) Estimate(productKey string, quantityKg float64, location string) Range {
	base := h.Base(productKey, quantityKg, location)
	low := max(base+between(h.src, -1, 0), 1)
	high := low + between(h.src, 2, 4)
	return Range{Low: low, High: high}
}

// NewByName returns an Estimator by provider name. "fixed" always takes the
// narrowest band; anything else is the randomized mandi heuristic.
func NewByName(name string, cat *catalog.Catalog, src Source) Estimator {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fixed":
		return NewHeuristic(cat, MinSource{})
	case "mandi", "":
		return NewHeuristic(cat, src)
	default:
		return NewHeuristic(cat, src)
	}
}
