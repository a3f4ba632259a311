package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

func views() []models.RecordView {
	return []models.RecordView{
		{Record: models.Record{ID: "1", Label: "Linear Algebra", Category: "Fall 2024"}},
		{Record: models.Record{ID: "2", Label: "Organic Chemistry", Category: "Spring 2025"}},
		{Record: models.Record{ID: "3", Label: "Abstract algebra", Category: "Spring 2025"}},
	}
}

func ids(vs []models.RecordView) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{"no filter", "", "", []string{"1", "2", "3"}},
		{"all keyword", "", AllCategories, []string{"1", "2", "3"}},
		{"case insensitive query", "ALGEBRA", "", []string{"1", "3"}},
		{"category only", "", "Spring 2025", []string{"2", "3"}},
		{"query and category", "algebra", "Spring 2025", []string{"3"}},
		{"no match", "physics", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(views(), tt.query, tt.category)))
		})
	}
}

func TestCategories(t *testing.T) {
	records := []models.Record{
		{Category: "Spring 2025"}, {Category: "Fall 2024"}, {Category: "Spring 2025"}, {Category: ""},
	}
	assert.Equal(t, []string{"Fall 2024", "Spring 2025"}, Categories(records))
	assert.Empty(t, Categories(nil))
}
