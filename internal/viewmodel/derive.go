// Package viewmodel turns raw API payloads into the presentation shapes
// the views render. Every function here is pure: derivers are recomputed
// on each render from the latest snapshot and never mutate their input.
package viewmodel

import (
	"github.com/recoverops/dca-console/internal/api"
)

// AgingPoint is one bar of the aging breakdown. Amount is expressed in
// thousands to keep chart labels readable.
type AgingPoint struct {
	Name   string
	Amount float64
	Count  int
}

// AgingSeries maps aging buckets onto chart points in document order.
// A missing or empty bucket map yields an empty series.
func AgingSeries(buckets api.AgingBuckets) []AgingPoint {
	if len(buckets) == 0 {
		return nil
	}
	series := make([]AgingPoint, 0, len(buckets))
	for _, bucket := range buckets {
		series = append(series, AgingPoint{
			Name:   bucket.Label,
			Amount: bucket.TotalAmount / 1000,
			Count:  bucket.Count,
		})
	}
	return series
}

// RiskSlice is one slice of the risk distribution.
type RiskSlice struct {
	Name  string
	Value int
}

// RiskSeries maps risk tiers onto distribution slices in document order.
// Slice colors are assigned by the theme from the positional index.
func RiskSeries(tiers api.RiskTiers) []RiskSlice {
	if len(tiers) == 0 {
		return nil
	}
	series := make([]RiskSlice, 0, len(tiers))
	for _, tier := range tiers {
		series = append(series, RiskSlice{Name: tier.Tier, Value: tier.Count})
	}
	return series
}
