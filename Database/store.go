package Database

import (
	"fmt"
	"log"
	"time"

	"firebase.google.com/go/v4/db"

	"CarWash/Models"
)

const (
	maxAttempts = 3
	retryDelay  = time.Second
)

// withRetry runs a remote operation up to maxAttempts times with a fixed
// delay between tries. Every failure but the last is logged and retried;
// the last one propagates to the caller. A propagated error means the
// operation was not applied remotely.
func withRetry(label string, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if attempt < maxAttempts {
			log.Printf("%s failed (attempt %d/%d), retrying: %v", label, attempt, maxAttempts, err)
			time.Sleep(retryDelay)
		}
	}
	return fmt.Errorf("%s: %v", label, err)
}

// Store is the remote adapter over the three collections: companies,
// vehicles within companies, and the wash item catalog. All writes are
// last-writer-wins at the granularity of the written node.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// GetAllData reads the full companies tree. A first run, where the node
// does not exist yet, yields an empty document instead of an error.
func (s *Store) GetAllData() (*Models.Document, error) {
	var companies map[string]*Models.Company
	err := withRetry("get companies", func() error {
		return Client.NewRef("companies").Get(ctx, &companies)
	})
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = map[string]*Models.Company{}
	}
	return &Models.Document{Companies: companies}, nil
}

// SaveData overwrites the entire companies subtree.
func (s *Store) SaveData(doc *Models.Document) error {
	return withRetry("save companies", func() error {
		return Client.NewRef("companies").Set(ctx, doc.Companies)
	})
}

func (s *Store) SaveCompany(id string, c *Models.Company) error {
	return withRetry("save company", func() error {
		return Client.NewRef("companies").Child(id).Set(ctx, c)
	})
}

func (s *Store) RemoveCompany(id string) error {
	return withRetry("remove company", func() error {
		return Client.NewRef("companies").Child(id).Delete(ctx)
	})
}

func (s *Store) SaveVehicle(companyID, vehicleID string, v *Models.Vehicle) error {
	return withRetry("save vehicle", func() error {
		return vehicleRef(companyID, vehicleID).Set(ctx, v)
	})
}

func (s *Store) RemoveVehicle(companyID, vehicleID string) error {
	return withRetry("remove vehicle", func() error {
		return vehicleRef(companyID, vehicleID).Delete(ctx)
	})
}

// AppendRecord reads the vehicle's record list, appends, and writes the
// list back, matching how every other client of this tree adds records.
func (s *Store) AppendRecord(companyID, vehicleID string, rec Models.Record) error {
	return withRetry("append record", func() error {
		ref := vehicleRef(companyID, vehicleID).Child("records")
		var records []Models.Record
		if err := ref.Get(ctx, &records); err != nil {
			return err
		}
		records = append(records, rec)
		return ref.Set(ctx, records)
	})
}

// DeleteRecord removes one record by positional index into the server-side
// list. The caller determines the index locally before mutating anything.
func (s *Store) DeleteRecord(companyID, vehicleID string, index int) error {
	return withRetry("delete record", func() error {
		ref := vehicleRef(companyID, vehicleID).Child("records")
		var records []Models.Record
		if err := ref.Get(ctx, &records); err != nil {
			return err
		}
		if index < 0 || index >= len(records) {
			return fmt.Errorf("record index %d out of range (%d records)", index, len(records))
		}
		records = append(records[:index], records[index+1:]...)
		return ref.Set(ctx, records)
	})
}

// GetWashItems loads the catalog and normalizes legacy bare-string entries
// so downstream consumers only ever see the structured shape.
func (s *Store) GetWashItems() ([]Models.WashItem, error) {
	var items []Models.WashItem
	err := withRetry("get wash items", func() error {
		return Client.NewRef("wash_items").Get(ctx, &items)
	})
	if err != nil {
		return nil, err
	}
	return Models.NormalizeWashItems(items), nil
}

func (s *Store) SaveWashItems(items []Models.WashItem) error {
	return withRetry("save wash items", func() error {
		return Client.NewRef("wash_items").Set(ctx, items)
	})
}

// GetWashGroups loads the group presets. A tree without the node yields an
// empty map.
func (s *Store) GetWashGroups() (map[string]*Models.WashGroup, error) {
	var groups map[string]*Models.WashGroup
	err := withRetry("get wash groups", func() error {
		return Client.NewRef("wash_groups").Get(ctx, &groups)
	})
	if err != nil {
		return nil, err
	}
	if groups == nil {
		groups = map[string]*Models.WashGroup{}
	}
	return groups, nil
}

func (s *Store) SaveWashGroup(id string, g *Models.WashGroup) error {
	return withRetry("save wash group", func() error {
		return Client.NewRef("wash_groups").Child(id).Set(ctx, g)
	})
}

func (s *Store) RemoveWashGroup(id string) error {
	return withRetry("remove wash group", func() error {
		return Client.NewRef("wash_groups").Child(id).Delete(ctx)
	})
}

// SaveWashGroups overwrites the whole node, used by reorder so one write
// carries every rewritten sort index.
func (s *Store) SaveWashGroups(groups map[string]*Models.WashGroup) error {
	return withRetry("save wash groups", func() error {
		return Client.NewRef("wash_groups").Set(ctx, groups)
	})
}

func vehicleRef(companyID, vehicleID string) *db.Ref {
	return Client.NewRef("companies").Child(companyID).Child("vehicles").Child(vehicleID)
}
