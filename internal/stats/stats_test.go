package stats

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

func verified(id string, value, weight, tag1 int64) models.Record {
	return models.Record{ID: id, Weight: weight, Verified: true, RevealedValue: &value, PublicTag1: tag1}
}

func encrypted(id string, weight, tag1 int64) models.Record {
	return models.Record{ID: id, Weight: weight, PublicTag1: tag1}
}

func TestCompute_Empty(t *testing.T) {
	assert.Equal(t, models.Stats{}, Compute(nil))
	assert.Equal(t, models.Stats{}, Compute([]models.Record{}))
}

func TestCompute_WeightedAverage(t *testing.T) {
	s := Compute([]models.Record{
		verified("a", 90, 3, 3),
		verified("b", 80, 2, 2),
	})

	assert.InDelta(t, 86.0, s.PrimaryMetric, 1e-9)
	assert.Equal(t, int64(5), s.TotalWeight)
	assert.Equal(t, int64(430), s.WeightedScore)
	assert.Equal(t, 2, s.VerifiedCount)
	assert.Equal(t, 2, s.TotalCount)
}

func TestCompute_UnverifiedExcludedFromPrimary(t *testing.T) {
	s := Compute([]models.Record{
		verified("a", 90, 3, 3),
		verified("b", 80, 2, 2),
		encrypted("c", 4, 4),
	})

	assert.InDelta(t, 86.0, s.PrimaryMetric, 1e-9)
	assert.Equal(t, 2, s.VerifiedCount)
	assert.Equal(t, 3, s.TotalCount)
	assert.InDelta(t, 3.0, s.CoverageAverage, 1e-9)
}

func TestCompute_Projection(t *testing.T) {
	// primary 86.0, coverage 70.0
	records := []models.Record{
		verified("a", 90, 3, 70),
		verified("b", 80, 2, 70),
	}

	s := Compute(records)
	assert.InDelta(t, 84.4, s.ProjectedMetric, 1e-9)

	s = NewEngine(Policy{ProjectionWeight: 0.5}).Compute(records)
	assert.InDelta(t, 78.0, s.ProjectedMetric, 1e-9)
}

func TestCompute_ProjectionUsesExactComplement(t *testing.T) {
	assert.Equal(t, 0.1, complement(0.9))
	assert.Equal(t, 0.5, complement(0.5))
	assert.Equal(t, 1.0, complement(0))
	assert.Equal(t, 0.0, complement(1))

	records := []models.Record{
		verified("a", 90, 3, 70),
		verified("b", 80, 2, 70),
	}

	primary, coverage := 86.0, 70.0
	w, c := 0.9, 0.1
	want := float64(primary*w) + float64(coverage*c)

	assert.Equal(t, want, Compute(records).ProjectedMetric)
}

func TestCompute_NoVerifiedRecords(t *testing.T) {
	s := Compute([]models.Record{encrypted("a", 3, 3), encrypted("b", 1, 1)})

	assert.Zero(t, s.PrimaryMetric)
	assert.Zero(t, s.TotalWeight)
	assert.InDelta(t, 2.0, s.CoverageAverage, 1e-9)
	assert.InDelta(t, 0.2, s.ProjectedMetric, 1e-9)
}

func TestCompute_VerifiedWithoutValueCountsAsZero(t *testing.T) {
	s := Compute([]models.Record{
		{ID: "a", Weight: 1, Verified: true},
		verified("b", 100, 1, 1),
	})

	assert.InDelta(t, 50.0, s.PrimaryMetric, 1e-9)
}

func TestNewEngine_ClampsWeight(t *testing.T) {
	assert.Equal(t, 0.0, NewEngine(Policy{ProjectionWeight: -1}).Policy().ProjectionWeight)
	assert.Equal(t, 1.0, NewEngine(Policy{ProjectionWeight: 3}).Policy().ProjectionWeight)
	assert.Equal(t, DefaultProjectionWeight, NewEngine(DefaultPolicy()).Policy().ProjectionWeight)
}

func TestCompute_PrimaryWithinGradeRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		n := rng.IntN(20)
		records := make([]models.Record, 0, n)
		for i := range n {
			value := rng.Int64N(models.MaxGrade + 1)
			weight := models.MinWeight + rng.Int64N(models.MaxWeight)
			r := verified(string(rune('a'+i)), value, weight, weight)
			r.Verified = rng.IntN(2) == 0
			records = append(records, r)
		}

		s := Compute(records)
		require.GreaterOrEqual(t, s.PrimaryMetric, float64(models.MinGrade))
		require.LessOrEqual(t, s.PrimaryMetric, float64(models.MaxGrade))
		require.LessOrEqual(t, s.VerifiedCount, s.TotalCount)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	records := []models.Record{verified("a", 71, 4, 4), encrypted("b", 2, 2), verified("c", 93, 1, 1)}
	assert.Equal(t, Compute(records), Compute(records))
}
