package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *Document {
	doc := NewDocument()
	doc.Companies["c-1"] = &Company{
		Name:      "Nile Cement",
		SortIndex: intPtr(0),
		Vehicles: map[string]*Vehicle{
			"v-1": {
				Plate:     "ABC 123",
				Type:      VehicleTypeCementMixer,
				SortIndex: intPtr(0),
				Records: []Record{
					{Date: "2024-01-01", Items: []RecordItem{{Name: "Engine Wash", Price: 100}, {Name: "Body Washing", Price: 50}}, Remarks: "first visit"},
					{Date: "2024-06-01", Items: []RecordItem{{Name: "Tire Wash", Price: 80}}, PaymentType: PaymentTypePayable},
				},
			},
			"v-2": {
				Plate:     "DEF 456",
				Type:      VehicleTypeTrailer,
				SortIndex: intPtr(1),
				Records: []Record{
					{Date: "2024-03-15", Items: []RecordItem{{Name: "Interior Wash", Price: 120}}, Remarks: "urgent"},
				},
			},
		},
	}
	doc.Companies["c-2"] = &Company{
		Name:      "Delta Haulage",
		SortIndex: intPtr(1),
		Vehicles: map[string]*Vehicle{
			"v-3": {
				Plate: "GHI 789",
				Type:  VehicleTypeHeavyTruck,
				Records: []Record{
					{Date: "2024-02-10", Items: []RecordItem{{Name: "Engine Wash", Price: 100}}},
				},
			},
		},
	}
	return doc
}

func TestListRecordsAll(t *testing.T) {
	rows := ListRecords(testDocument(), FilterAll, FilterAll)
	require.Len(t, rows, 4)

	// Company order then vehicle order then record order.
	dates := make([]string, 0, len(rows))
	for _, r := range rows {
		dates = append(dates, r.Date)
	}
	assert.Equal(t, []string{"2024-01-01", "2024-06-01", "2024-03-15", "2024-02-10"}, dates)
}

func TestListRecordsCompanyFilter(t *testing.T) {
	rows := ListRecords(testDocument(), "c-2", FilterAll)
	require.Len(t, rows, 1)
	assert.Equal(t, "Delta Haulage", rows[0].CompanyName)
	assert.Equal(t, "GHI 789", rows[0].VehiclePlate)
}

func TestListRecordsVehicleFilter(t *testing.T) {
	rows := ListRecords(testDocument(), "c-1", "v-2")
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-03-15", rows[0].Date)
}

func TestListRecordsVehicleFilterIgnoredUnderAllCompanies(t *testing.T) {
	rows := ListRecords(testDocument(), FilterAll, "v-2")
	assert.Len(t, rows, 4)
}

func TestListRecordsUnknownIDsYieldEmpty(t *testing.T) {
	assert.Empty(t, ListRecords(testDocument(), "c-missing", FilterAll))
	assert.Empty(t, ListRecords(testDocument(), "c-1", "v-missing"))
}

func TestListRecordsTotals(t *testing.T) {
	rows := ListRecords(testDocument(), "c-1", "v-1")
	require.Len(t, rows, 2)
	assert.Equal(t, 150, rows[0].Total)
	assert.Equal(t, 80, rows[1].Total)
}

func TestFilterRowsDateRange(t *testing.T) {
	rows := ListRecords(testDocument(), "c-1", "v-1")

	out := FilterRows(rows, "2024-03-01", "2024-12-31", "")
	require.Len(t, out, 1)
	assert.Equal(t, "2024-06-01", out[0].Date)

	// Bounds are inclusive.
	out = FilterRows(rows, "2024-01-01", "2024-06-01", "")
	assert.Len(t, out, 2)
}

func TestFilterRowsSearch(t *testing.T) {
	rows := ListRecords(testDocument(), FilterAll, FilterAll)

	// "wash" matches every row, "washing" only the one item named so.
	assert.Len(t, FilterRows(rows, "0000-01-01", "9999-12-31", "wash"), 4)
	assert.Len(t, FilterRows(rows, "0000-01-01", "9999-12-31", "WASHING"), 1)

	// Remarks are searched too.
	out := FilterRows(rows, "0000-01-01", "9999-12-31", "urgent")
	require.Len(t, out, 1)
	assert.Equal(t, "2024-03-15", out[0].Date)

	assert.Empty(t, FilterRows(rows, "0000-01-01", "9999-12-31", "no such thing"))
}

func TestFilterRowsSortsNewestFirst(t *testing.T) {
	rows := ListRecords(testDocument(), FilterAll, FilterAll)
	out := FilterRows(rows, "0000-01-01", "9999-12-31", "")

	require.Len(t, out, 4)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Date, out[i].Date)
	}
}

func TestItemsDisplay(t *testing.T) {
	row := RowRecord{Items: []RecordItem{
		{Name: "Engine Wash", Price: 100},
		{Name: "Body Wash", Price: 50},
	}}
	assert.Equal(t, "Engine Wash - $100\nBody Wash - $50", row.ItemsDisplay("\n"))
	assert.Equal(t, "", RowRecord{}.ItemsDisplay("\n"))
}
