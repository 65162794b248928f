package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestSortedCompaniesNilIndexLast(t *testing.T) {
	doc := NewDocument()
	doc.Companies["c-legacy"] = &Company{Name: "Legacy"}
	doc.Companies["c-b"] = &Company{Name: "Second", SortIndex: intPtr(1)}
	doc.Companies["c-a"] = &Company{Name: "First", SortIndex: intPtr(0)}

	entries := SortedCompanies(doc)

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"c-a", "c-b", "c-legacy"}, ids)
}

func TestSortedCompaniesTiesKeepKeyOrder(t *testing.T) {
	doc := NewDocument()
	doc.Companies["c-z"] = &Company{Name: "Z", SortIndex: intPtr(0)}
	doc.Companies["c-a"] = &Company{Name: "A", SortIndex: intPtr(0)}
	doc.Companies["c-m"] = &Company{Name: "M"}
	doc.Companies["c-b"] = &Company{Name: "B"}

	entries := SortedCompanies(doc)

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"c-a", "c-z", "c-b", "c-m"}, ids)
}

func TestSortedVehicles(t *testing.T) {
	c := &Company{
		Name: "Acme",
		Vehicles: map[string]*Vehicle{
			"v-1": {Plate: "ABC 123", SortIndex: intPtr(2)},
			"v-2": {Plate: "DEF 456", SortIndex: intPtr(0)},
			"v-3": {Plate: "GHI 789"},
		},
	}

	entries := SortedVehicles(c)

	plates := make([]string, 0, len(entries))
	for _, e := range entries {
		plates = append(plates, e.Vehicle.Plate)
	}
	assert.Equal(t, []string{"DEF 456", "ABC 123", "GHI 789"}, plates)
}
