package Models

import "sort"

// CompanyEntry pairs a company with its id for ordered iteration, since the
// document keeps companies in a map.
type CompanyEntry struct {
	ID      string
	Company *Company
}

type VehicleEntry struct {
	ID      string
	Vehicle *Vehicle
}

// SortedCompanies returns the companies ordered by sort_index ascending.
// Entries without a sort_index go last. Ties keep key order so the result
// is stable across calls.
func SortedCompanies(doc *Document) []CompanyEntry {
	entries := make([]CompanyEntry, 0, len(doc.Companies))
	for id, c := range doc.Companies {
		entries = append(entries, CompanyEntry{ID: id, Company: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return lessSortIndex(entries[i].Company.SortIndex, entries[j].Company.SortIndex)
	})
	return entries
}

// SortedVehicles orders one company's vehicles the same way.
func SortedVehicles(c *Company) []VehicleEntry {
	entries := make([]VehicleEntry, 0, len(c.Vehicles))
	for id, v := range c.Vehicles {
		entries = append(entries, VehicleEntry{ID: id, Vehicle: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return lessSortIndex(entries[i].Vehicle.SortIndex, entries[j].Vehicle.SortIndex)
	})
	return entries
}

type WashGroupEntry struct {
	ID    string
	Group *WashGroup
}

// SortedWashGroups orders the group presets for display, same rules as
// companies and vehicles.
func SortedWashGroups(groups map[string]*WashGroup) []WashGroupEntry {
	entries := make([]WashGroupEntry, 0, len(groups))
	for id, g := range groups {
		entries = append(entries, WashGroupEntry{ID: id, Group: g})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return lessSortIndex(entries[i].Group.SortIndex, entries[j].Group.SortIndex)
	})
	return entries
}

func lessSortIndex(a, b *int) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}
