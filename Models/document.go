package Models

import (
	"encoding/json"
	"fmt"
)

// Vehicle type labels stored in the document tree.
const (
	VehicleTypeCementMixer = "cement_mixer"
	VehicleTypeHeavyTruck  = "heavy_truck"
	VehicleTypeTrailer     = "trailer"
	VehicleTypeOther       = "other"
)

// Payment classification of a record. Older records predate the field,
// absence is the unset state, not an error.
const (
	PaymentTypePayable    = "payable"
	PaymentTypeReceivable = "receivable"
	PaymentTypeUnset      = ""
)

// Document is the whole persisted tree: companies keyed by id, each holding
// its vehicles, each holding its records.
type Document struct {
	Companies map[string]*Company `json:"companies"`
}

// NewDocument returns an empty document, the shape a first run sees.
func NewDocument() *Document {
	return &Document{Companies: map[string]*Company{}}
}

type Company struct {
	Name      string              `json:"name"`
	TaxID     string              `json:"tax_id"`
	Phone     string              `json:"phone"`
	Address   string              `json:"address"`
	SortIndex *int                `json:"sort_index,omitempty"`
	Vehicles  map[string]*Vehicle `json:"vehicles"`
}

type Vehicle struct {
	Plate     string   `json:"plate"`
	Model     string   `json:"model"`
	Type      string   `json:"type"`
	Remarks   string   `json:"remarks"`
	SortIndex *int     `json:"sort_index,omitempty"`
	Records   []Record `json:"records"`
}

// Clone returns a deep copy detached from the original, safe to hand to
// encoders running outside the owner's lock.
func (c *Company) Clone() *Company {
	out := *c
	if c.SortIndex != nil {
		idx := *c.SortIndex
		out.SortIndex = &idx
	}
	out.Vehicles = make(map[string]*Vehicle, len(c.Vehicles))
	for id, v := range c.Vehicles {
		out.Vehicles[id] = v.Clone()
	}
	return &out
}

// Clone returns a deep copy of the vehicle and its records.
func (v *Vehicle) Clone() *Vehicle {
	out := *v
	if v.SortIndex != nil {
		idx := *v.SortIndex
		out.SortIndex = &idx
	}
	out.Records = make([]Record, len(v.Records))
	copy(out.Records, v.Records)
	for i := range out.Records {
		items := make([]RecordItem, len(v.Records[i].Items))
		copy(items, v.Records[i].Items)
		out.Records[i].Items = items
	}
	return &out
}

// Record is one dated service transaction. Records carry no id of their own,
// they are addressed by position within their vehicle's list.
type Record struct {
	Date        string       `json:"date"`
	Items       []RecordItem `json:"items"`
	Remarks     string       `json:"remarks"`
	PaymentType string       `json:"payment_type,omitempty"`
}

// RecordItem is a priced line item on a record. The price is captured at
// record creation time and never tracks later catalog edits.
type RecordItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// UnmarshalJSON accepts both the structured shape and the legacy bare-string
// shape still present in old records. A bare string normalizes to price 0.
func (it *RecordItem) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		it.Name = name
		it.Price = 0
		return nil
	}
	type alias RecordItem
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("record item must be a string or an object: %v", err)
	}
	if a.Price < 0 {
		a.Price = 0
	}
	*it = RecordItem(a)
	return nil
}

// WashItem is one entry of the shared service catalog.
type WashItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// UnmarshalJSON handles the same legacy dual shape as RecordItem: catalogs
// written by early versions hold bare name strings.
func (w *WashItem) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		w.Name = name
		w.Price = 0
		return nil
	}
	type alias WashItem
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("wash item must be a string or an object: %v", err)
	}
	if a.Price < 0 {
		a.Price = 0
	}
	*w = WashItem(a)
	return nil
}

// WashGroup bundles catalog items under a named preset so often-used
// combinations can be picked in one tap. Membership holds item names, the
// catalog's identity.
type WashGroup struct {
	Name      string   `json:"name"`
	Items     []string `json:"items"`
	SortIndex *int     `json:"sort_index,omitempty"`
}

// Clone returns a deep copy of the group.
func (g *WashGroup) Clone() *WashGroup {
	out := *g
	if g.SortIndex != nil {
		idx := *g.SortIndex
		out.SortIndex = &idx
	}
	out.Items = append([]string{}, g.Items...)
	return &out
}

// NormalizeWashItems is the migration-on-load pass over the catalog: after
// it, every entry has the structured shape and a non-negative price.
// Unmarshalling already rewrites legacy strings, this clamps anything a
// caller built by hand. Idempotent.
func NormalizeWashItems(items []WashItem) []WashItem {
	out := make([]WashItem, 0, len(items))
	for _, it := range items {
		if it.Price < 0 {
			it.Price = 0
		}
		out = append(out, it)
	}
	return out
}

// ValidVehicleType reports whether t is one of the four known labels.
func ValidVehicleType(t string) bool {
	switch t {
	case VehicleTypeCementMixer, VehicleTypeHeavyTruck, VehicleTypeTrailer, VehicleTypeOther:
		return true
	}
	return false
}
