package models

// Stats holds the aggregate metrics derived from a record collection.
type Stats struct {
	// PrimaryMetric is the weight-averaged verified grade (GPA-like).
	PrimaryMetric float64 `json:"primary_metric"`

	// TotalWeight is the sum of weights over verified records.
	TotalWeight int64 `json:"total_weight"`

	// WeightedScore is the sum of value*weight over verified records.
	WeightedScore int64 `json:"weighted_score"`

	// CoverageAverage is the mean of PublicTag1 over all records.
	CoverageAverage float64 `json:"coverage_average"`

	// VerifiedCount is the number of verified records.
	VerifiedCount int `json:"verified_count"`

	// TotalCount is the number of records the stats were computed over.
	TotalCount int `json:"total_count"`

	// ProjectedMetric blends PrimaryMetric and CoverageAverage by policy.
	ProjectedMetric float64 `json:"projected_metric"`
}
