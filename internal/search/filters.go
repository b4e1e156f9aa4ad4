// Package search narrows and orders the worker directory for browsing.
package search

import (
	"fmt"
	"strings"

	"ondemand-engine/internal/domain"
)

// PriceBand is a preset hourly-rate bracket.
type PriceBand int

const (
	PriceAny PriceBand = iota
	PriceUnder25
	PriceUnder35
	PriceUnder50
	PriceOver50
)

var priceBands = []struct {
	band  PriceBand
	key   string
	label string
}{
	{PriceAny, "any", "Any"},
	{PriceUnder25, "under25", "Under $25"},
	{PriceUnder35, "under35", "Under $35"},
	{PriceUnder50, "under50", "Under $50"},
	{PriceOver50, "50plus", "$50+"},
}

// PriceBands lists every band in display order.
func PriceBands() []PriceBand {
	out := make([]PriceBand, len(priceBands))
	for i, b := range priceBands {
		out[i] = b.band
	}
	return out
}

func (b PriceBand) String() string {
	for _, pb := range priceBands {
		if pb.band == b {
			return pb.key
		}
	}
	return fmt.Sprintf("PriceBand(%d)", int(b))
}

func (b PriceBand) Label() string {
	for _, pb := range priceBands {
		if pb.band == b {
			return pb.label
		}
	}
	return ""
}

// Match reports whether an hourly rate falls in the band. Under bands are
// inclusive of their bound; 50+ is inclusive of 50.
func (b PriceBand) Match(rate float64) bool {
	switch b {
	case PriceUnder25:
		return rate <= 25
	case PriceUnder35:
		return rate <= 35
	case PriceUnder50:
		return rate <= 50
	case PriceOver50:
		return rate >= 50
	default:
		return true
	}
}

// ParsePriceBand accepts a band key; empty means any.
func ParsePriceBand(s string) (PriceBand, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PriceAny, nil
	}
	for _, pb := range priceBands {
		if pb.key == s {
			return pb.band, nil
		}
	}
	return PriceAny, fmt.Errorf("unknown price band %q", s)
}

func (b PriceBand) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *PriceBand) UnmarshalText(text []byte) error {
	v, err := ParsePriceBand(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// RatingOptions are the minimum-rating presets; 0 means any rating.
func RatingOptions() []float64 {
	return []float64{0, 4.0, 4.2, 4.5, 4.7, 4.8}
}

// Filters is the worker filter set. The zero value filters nothing.
type Filters struct {
	Province      string    `json:"province,omitempty"`
	District      string    `json:"district,omitempty"`
	City          string    `json:"city,omitempty"`
	Category      string    `json:"category,omitempty"`
	MinRating     float64   `json:"minRating,omitempty"`
	Price         PriceBand `json:"price"`
	AvailableOnly bool      `json:"availableOnly,omitempty"`
	VerifiedOnly  bool      `json:"verifiedOnly,omitempty"`
}

// ActiveCount is the number of filters currently narrowing results.
func (f Filters) ActiveCount() int {
	n := 0
	for _, on := range []bool{
		f.Province != "",
		f.District != "",
		f.City != "",
		f.Category != "",
		f.MinRating > 0,
		f.Price != PriceAny,
		f.AvailableOnly,
		f.VerifiedOnly,
	} {
		if on {
			n++
		}
	}
	return n
}

// Clear returns the empty filter set.
func (f Filters) Clear() Filters { return Filters{} }

func (f Filters) Match(w domain.Worker) bool {
	if f.Province != "" && !containsFold(w.DetailedLocation.Province, f.Province) {
		return false
	}
	if f.District != "" && !containsFold(w.DetailedLocation.District, f.District) {
		return false
	}
	if f.City != "" && !containsFold(w.DetailedLocation.City, f.City) {
		return false
	}
	if f.Category != "" && w.Category != f.Category {
		return false
	}
	if f.MinRating > 0 && w.Rating < f.MinRating {
		return false
	}
	if !f.Price.Match(w.HourlyRate) {
		return false
	}
	if f.AvailableOnly && !w.IsAvailable {
		return false
	}
	if f.VerifiedOnly && !w.IsVerified {
		return false
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
