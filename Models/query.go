package Models

import (
	"fmt"
	"sort"
	"strings"
)

// FilterAll is the sentinel the UI sends when no specific company or vehicle
// is selected.
const FilterAll = "all"

// RowRecord is one flattened table row: the record plus the denormalized
// company and vehicle fields it came from.
type RowRecord struct {
	CompanyID    string       `json:"company_id"`
	CompanyName  string       `json:"company_name"`
	VehicleID    string       `json:"vehicle_id"`
	VehiclePlate string       `json:"vehicle_plate"`
	VehicleType  string       `json:"vehicle_type"`
	Date         string       `json:"date"`
	Items        []RecordItem `json:"items"`
	Remarks      string       `json:"remarks"`
	PaymentType  string       `json:"payment_type"`
	Total        int          `json:"total"`
}

// ListRecords flattens the document into rows. companyFilter and
// vehicleFilter are FilterAll or a concrete id. A vehicle filter only
// applies under a concrete company; under FilterAll companies it is
// ignored rather than rejected. Unknown ids yield an empty set.
func ListRecords(doc *Document, companyFilter, vehicleFilter string) []RowRecord {
	var rows []RowRecord

	appendVehicle := func(companyID string, c *Company, vehicleID string, v *Vehicle) {
		for _, rec := range v.Records {
			rows = append(rows, RowRecord{
				CompanyID:    companyID,
				CompanyName:  c.Name,
				VehicleID:    vehicleID,
				VehiclePlate: v.Plate,
				VehicleType:  v.Type,
				Date:         rec.Date,
				Items:        rec.Items,
				Remarks:      rec.Remarks,
				PaymentType:  rec.PaymentType,
				Total:        recordTotal(rec.Items),
			})
		}
	}

	if companyFilter == FilterAll || companyFilter == "" {
		for _, ce := range SortedCompanies(doc) {
			for _, ve := range SortedVehicles(ce.Company) {
				appendVehicle(ce.ID, ce.Company, ve.ID, ve.Vehicle)
			}
		}
		return rows
	}

	c, ok := doc.Companies[companyFilter]
	if !ok {
		return rows
	}
	if vehicleFilter == FilterAll || vehicleFilter == "" {
		for _, ve := range SortedVehicles(c) {
			appendVehicle(companyFilter, c, ve.ID, ve.Vehicle)
		}
		return rows
	}
	if v, ok := c.Vehicles[vehicleFilter]; ok {
		appendVehicle(companyFilter, c, vehicleFilter, v)
	}
	return rows
}

// FilterRows keeps rows inside the inclusive date range whose item names or
// remarks contain the search text, case-insensitively. Dates are ISO
// yyyy-mm-dd strings so plain string comparison orders them correctly.
// The result is sorted newest first; ties keep flattening order.
func FilterRows(rows []RowRecord, startDate, endDate, search string) []RowRecord {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]RowRecord, 0, len(rows))
	for _, row := range rows {
		if row.Date < startDate || row.Date > endDate {
			continue
		}
		if search != "" && !rowMatches(row, search) {
			continue
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

func rowMatches(row RowRecord, search string) bool {
	for _, it := range row.Items {
		if strings.Contains(strings.ToLower(it.Name), search) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(row.Remarks), search)
}

func recordTotal(items []RecordItem) int {
	total := 0
	for _, it := range items {
		total += it.Price
	}
	return total
}

// ItemsDisplay renders the items as "<name> - $<price>" joined by sep.
// The interactive table uses newline so each item gets its own sub-row.
func (r RowRecord) ItemsDisplay(sep string) string {
	parts := make([]string, 0, len(r.Items))
	for _, it := range r.Items {
		parts = append(parts, fmt.Sprintf("%s - $%d", it.Name, it.Price))
	}
	return strings.Join(parts, sep)
}
