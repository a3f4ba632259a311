package stats

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

// AllCategories disables category filtering.
const AllCategories = "all"

// Filter keeps the views whose label contains query, ignoring case, and
// whose category equals category. An empty category or [AllCategories]
// matches everything. Order is preserved.
func Filter(views []models.RecordView, query, category string) []models.RecordView {
	query = strings.ToLower(strings.TrimSpace(query))
	anyCategory := category == "" || category == AllCategories

	out := make([]models.RecordView, 0, len(views))
	for _, v := range views {
		if query != "" && !strings.Contains(strings.ToLower(v.Label), query) {
			continue
		}
		if !anyCategory && v.Category != category {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Categories lists the distinct categories of records in sorted order.
func Categories(records []models.Record) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, 4)
	for _, r := range records {
		if _, ok := seen[r.Category]; ok || r.Category == "" {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	slices.Sort(out)
	return out
}
