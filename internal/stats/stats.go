// Package stats computes aggregate transcript metrics over a record
// collection. Every function is pure: no I/O and no retained state.
package stats

import (
	"math"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

// DefaultProjectionWeight is the share of the primary metric in the projected
// metric. The remainder goes to the coverage average.
const DefaultProjectionWeight = 0.9

// Policy holds the tunable parts of the computation.
//
// The coverage average gets the complement 1-ProjectionWeight, rounded to
// twelve decimal places so that the default 0.9 leaves exactly 0.1 rather
// than 0.09999999999999998.
type Policy struct {
	// ProjectionWeight must lie in [0, 1].
	ProjectionWeight float64
}

// DefaultPolicy returns the product default policy.
func DefaultPolicy() Policy {
	return Policy{ProjectionWeight: DefaultProjectionWeight}
}

// Engine computes [models.Stats] under a fixed policy.
type Engine struct {
	policy         Policy
	coverageWeight float64
}

// NewEngine returns an Engine for p. Weights outside [0, 1] are clamped.
func NewEngine(p Policy) *Engine {
	switch {
	case p.ProjectionWeight < 0:
		p.ProjectionWeight = 0
	case p.ProjectionWeight > 1:
		p.ProjectionWeight = 1
	}
	return &Engine{policy: p, coverageWeight: complement(p.ProjectionWeight)}
}

// complement returns 1-w without the binary rounding residue.
func complement(w float64) float64 {
	return math.Round((1-w)*1e12) / 1e12
}

// Policy returns the effective policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Compute derives the aggregate metrics of records.
//
// Only verified records contribute to the primary metric. A verified record
// without a stored value counts as zero. The coverage average runs over every
// record, verified or not.
func (e *Engine) Compute(records []models.Record) models.Stats {
	var s models.Stats
	s.TotalCount = len(records)
	if len(records) == 0 {
		return s
	}

	var tagSum int64
	for _, r := range records {
		tagSum += r.PublicTag1
		if !r.Verified {
			continue
		}

		var value int64
		if r.RevealedValue != nil {
			value = *r.RevealedValue
		}
		s.VerifiedCount++
		s.TotalWeight += r.Weight
		s.WeightedScore += value * r.Weight
	}

	if s.TotalWeight > 0 {
		s.PrimaryMetric = float64(s.WeightedScore) / float64(s.TotalWeight)
	}
	s.CoverageAverage = float64(tagSum) / float64(len(records))

	// explicit conversions keep each product rounded on its own (no FMA)
	s.ProjectedMetric = float64(s.PrimaryMetric*e.policy.ProjectionWeight) + float64(s.CoverageAverage*e.coverageWeight)

	return s
}

// Compute is [Engine.Compute] under [DefaultPolicy].
func Compute(records []models.Record) models.Stats {
	return NewEngine(DefaultPolicy()).Compute(records)
}
