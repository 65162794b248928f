package ManipulateData

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"CarWash/Models"
)

// Store is what the manager needs from the remote adapter. Database.Store
// implements it against Firebase; tests substitute an in-memory fake.
type Store interface {
	GetAllData() (*Models.Document, error)
	SaveData(doc *Models.Document) error
	SaveCompany(id string, c *Models.Company) error
	RemoveCompany(id string) error
	SaveVehicle(companyID, vehicleID string, v *Models.Vehicle) error
	RemoveVehicle(companyID, vehicleID string) error
	AppendRecord(companyID, vehicleID string, rec Models.Record) error
	DeleteRecord(companyID, vehicleID string, index int) error
	GetWashItems() ([]Models.WashItem, error)
	SaveWashItems(items []Models.WashItem) error
	GetWashGroups() (map[string]*Models.WashGroup, error)
	SaveWashGroup(id string, g *Models.WashGroup) error
	RemoveWashGroup(id string) error
	SaveWashGroups(groups map[string]*Models.WashGroup) error
}

var validate = validator.New()

// DefaultWashItems seeds the catalog on first run, matching what the
// desktop app ships with.
var DefaultWashItems = []Models.WashItem{
	{Name: "Engine Wash"},
	{Name: "Body Wash"},
	{Name: "Tire Wash"},
	{Name: "Cargo Bed Wash"},
	{Name: "Interior Wash"},
}

// Manager owns the in-memory document tree and the wash item catalog.
// Every mutation goes through one of its command methods, which applies
// the change and persists it through the store. Handlers never touch the
// tree directly. The mutex serializes commands since fiber handlers run
// concurrently.
type Manager struct {
	mu         sync.Mutex
	store      Store
	doc        *Models.Document
	washItems  []Models.WashItem
	washGroups map[string]*Models.WashGroup
}

func NewManager(store Store) (*Manager, error) {
	m := &Manager{store: store}
	if err := m.Reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// Reload re-fetches the document and catalog from the store, discarding
// local state. Callers use it to recover after a failed persist or to pick
// up writes from other clients of the same tree.
func (m *Manager) Reload() error {
	doc, err := m.store.GetAllData()
	if err != nil {
		return err
	}
	items, err := m.store.GetWashItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		items = append([]Models.WashItem{}, DefaultWashItems...)
		if err := m.store.SaveWashItems(items); err != nil {
			log.Printf("seeding default wash items failed: %v", err)
		}
	}
	groups, err := m.store.GetWashGroups()
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.doc = doc
	m.washItems = items
	m.washGroups = groups
	m.mu.Unlock()
	return nil
}

// Rows returns the flattened, filtered, date-descending row set for the
// given selection. Empty date bounds mean unbounded.
func (m *Manager) Rows(companyFilter, vehicleFilter, startDate, endDate, search string) []Models.RowRecord {
	if startDate == "" {
		startDate = "0000-01-01"
	}
	if endDate == "" {
		endDate = "9999-12-31"
	}
	m.mu.Lock()
	rows := Models.ListRecords(m.doc, companyFilter, vehicleFilter)
	m.mu.Unlock()
	return Models.FilterRows(rows, startDate, endDate, search)
}

// Snapshot returns a deep copy of the document, safe to hand to encoders
// outside the lock.
func (m *Manager) Snapshot() *Models.Document {
	m.mu.Lock()
	raw, err := json.Marshal(m.doc)
	m.mu.Unlock()
	if err != nil {
		log.Printf("snapshot marshal failed: %v", err)
		return Models.NewDocument()
	}
	snap := Models.NewDocument()
	if err := json.Unmarshal(raw, snap); err != nil {
		log.Printf("snapshot unmarshal failed: %v", err)
		return Models.NewDocument()
	}
	return snap
}

// Companies returns the display-ordered company list. Entries are deep
// copies; handlers serialize them after the lock is released, so live
// pointers must never leave this method.
func (m *Manager) Companies() []Models.CompanyEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := Models.SortedCompanies(m.doc)
	for i := range entries {
		entries[i].Company = entries[i].Company.Clone()
	}
	return entries
}

// Vehicles returns the display-ordered vehicles of one company, deep
// copied for the same reason as Companies.
func (m *Manager) Vehicles(companyID string) ([]Models.VehicleEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.doc.Companies[companyID]
	if !ok {
		return nil, Models.NotFoundf("company %s", companyID)
	}
	entries := Models.SortedVehicles(c)
	for i := range entries {
		entries[i].Vehicle = entries[i].Vehicle.Clone()
	}
	return entries, nil
}

// WashItems returns a copy of the catalog.
func (m *Manager) WashItems() []Models.WashItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Models.WashItem{}, m.washItems...)
}

type CompanyFields struct {
	Name    string `json:"name" validate:"required,max=30"`
	TaxID   string `json:"tax_id" validate:"max=8"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// AddCompany creates a company with a generated id and an empty vehicle
// map, appended to the end of the display order.
func (m *Manager) AddCompany(fields CompanyFields) (string, error) {
	if err := validate.Struct(fields); err != nil {
		return "", validationError(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	idx := len(m.doc.Companies)
	c := &Models.Company{
		Name:      fields.Name,
		TaxID:     fields.TaxID,
		Phone:     fields.Phone,
		Address:   fields.Address,
		SortIndex: &idx,
		Vehicles:  map[string]*Models.Vehicle{},
	}
	m.doc.Companies[id] = c
	return id, m.store.SaveCompany(id, c)
}

// UpdateCompany edits the company's own fields in place. Its vehicles are
// untouched.
func (m *Manager) UpdateCompany(id string, fields CompanyFields) error {
	if err := validate.Struct(fields); err != nil {
		return validationError(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.doc.Companies[id]
	if !ok {
		return Models.NotFoundf("company %s", id)
	}
	c.Name = fields.Name
	c.TaxID = fields.TaxID
	c.Phone = fields.Phone
	c.Address = fields.Address
	return m.store.SaveCompany(id, c)
}

// DeleteCompany removes the company and, with it, every vehicle and record
// underneath.
func (m *Manager) DeleteCompany(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.doc.Companies[id]; !ok {
		return Models.NotFoundf("company %s", id)
	}
	delete(m.doc.Companies, id)
	return m.store.RemoveCompany(id)
}

type VehicleFields struct {
	Plate   string `json:"plate" validate:"required"`
	Model   string `json:"model"`
	Type    string `json:"type" validate:"required,oneof=cement_mixer heavy_truck trailer other"`
	Remarks string `json:"remarks"`
}

func (m *Manager) AddVehicle(companyID string, fields VehicleFields) (string, error) {
	if err := validate.Struct(fields); err != nil {
		return "", validationError(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.doc.Companies[companyID]
	if !ok {
		return "", Models.NotFoundf("company %s", companyID)
	}
	id := uuid.NewString()
	idx := len(c.Vehicles)
	v := &Models.Vehicle{
		Plate:     fields.Plate,
		Model:     fields.Model,
		Type:      fields.Type,
		Remarks:   fields.Remarks,
		SortIndex: &idx,
		Records:   []Models.Record{},
	}
	if c.Vehicles == nil {
		c.Vehicles = map[string]*Models.Vehicle{}
	}
	c.Vehicles[id] = v
	return id, m.store.SaveVehicle(companyID, id, v)
}

// UpdateVehicle edits the vehicle's own fields. Its records are untouched.
func (m *Manager) UpdateVehicle(companyID, vehicleID string, fields VehicleFields) error {
	if err := validate.Struct(fields); err != nil {
		return validationError(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	v, err := m.vehicle(companyID, vehicleID)
	if err != nil {
		return err
	}
	v.Plate = fields.Plate
	v.Model = fields.Model
	v.Type = fields.Type
	v.Remarks = fields.Remarks
	return m.store.SaveVehicle(companyID, vehicleID, v)
}

func (m *Manager) DeleteVehicle(companyID, vehicleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.doc.Companies[companyID]
	if !ok {
		return Models.NotFoundf("company %s", companyID)
	}
	if _, ok := c.Vehicles[vehicleID]; !ok {
		return Models.NotFoundf("vehicle %s", vehicleID)
	}
	delete(c.Vehicles, vehicleID)
	return m.store.RemoveVehicle(companyID, vehicleID)
}

type RecordFields struct {
	Date             string   `json:"date" validate:"required,datetime=2006-01-02"`
	Items            []string `json:"items"`
	CalibrationName  string   `json:"calibration_name"`
	CalibrationPrice string   `json:"calibration_price"`
	Remarks          string   `json:"remarks"`
	PaymentType      string   `json:"payment_type" validate:"omitempty,oneof=payable receivable"`
}

// AddRecord appends a record to the vehicle's list. Item prices are
// captured from the current catalog at creation time; later catalog edits
// never touch the stored record. The calibration item is ad hoc: a price
// that fails to parse silently drops the calibration item, matching the
// established behavior other clients of this tree rely on.
func (m *Manager) AddRecord(companyID, vehicleID string, fields RecordFields) error {
	if companyID == "" || companyID == Models.FilterAll {
		return Models.Validationf("a specific company must be selected")
	}
	if vehicleID == "" || vehicleID == Models.FilterAll {
		return Models.Validationf("a specific vehicle must be selected")
	}
	if err := validate.Struct(fields); err != nil {
		return validationError(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	v, err := m.vehicle(companyID, vehicleID)
	if err != nil {
		return err
	}

	items := make([]Models.RecordItem, 0, len(fields.Items)+1)
	for _, name := range fields.Items {
		entry, ok := m.catalogEntry(name)
		if !ok {
			return Models.Validationf("unknown wash item %q", name)
		}
		items = append(items, Models.RecordItem{Name: entry.Name, Price: entry.Price})
	}
	if fields.CalibrationName != "" && fields.CalibrationPrice != "" {
		if price, err := strconv.Atoi(fields.CalibrationPrice); err == nil && price >= 0 {
			items = append(items, Models.RecordItem{Name: fields.CalibrationName, Price: price})
		}
	}

	rec := Models.Record{
		Date:        fields.Date,
		Items:       items,
		Remarks:     fields.Remarks,
		PaymentType: fields.PaymentType,
	}
	v.Records = append(v.Records, rec)
	return m.store.AppendRecord(companyID, vehicleID, rec)
}

// DeleteRecord removes the FIRST record whose date equals matchDate. Dates
// are not unique, so with duplicate dates this deletes the earliest entry
// in list order regardless of which one the user pointed at. The positional
// index is resolved locally and handed to the store, which deletes by index
// into the server-side list.
func (m *Manager) DeleteRecord(companyID, vehicleID, matchDate string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, err := m.vehicle(companyID, vehicleID)
	if err != nil {
		return err
	}
	index := -1
	for i, rec := range v.Records {
		if rec.Date == matchDate {
			index = i
			break
		}
	}
	if index < 0 {
		return Models.NotFoundf("record dated %s", matchDate)
	}
	v.Records = append(v.Records[:index], v.Records[index+1:]...)
	return m.store.DeleteRecord(companyID, vehicleID, index)
}

// ReorderCompanies rewrites sort indices to 0..n-1 following orderedIDs and
// persists the whole document in one save.
func (m *Manager) ReorderCompanies(orderedIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Validate the whole permutation before touching any index, so a bad
	// id cannot leave a half-rewritten ordering behind.
	for _, id := range orderedIDs {
		if _, ok := m.doc.Companies[id]; !ok {
			return Models.NotFoundf("company %s", id)
		}
	}
	for i, id := range orderedIDs {
		idx := i
		m.doc.Companies[id].SortIndex = &idx
	}
	return m.store.SaveData(m.doc)
}

func (m *Manager) ReorderVehicles(companyID string, orderedIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.doc.Companies[companyID]
	if !ok {
		return Models.NotFoundf("company %s", companyID)
	}
	for _, id := range orderedIDs {
		if _, ok := c.Vehicles[id]; !ok {
			return Models.NotFoundf("vehicle %s", id)
		}
	}
	for i, id := range orderedIDs {
		idx := i
		c.Vehicles[id].SortIndex = &idx
	}
	return m.store.SaveData(m.doc)
}

// AddWashItem adds a catalog entry. Names are unique, case-sensitively.
// A price that fails to parse becomes 0 without complaint; tests pin this
// down because other clients of the catalog depend on it.
func (m *Manager) AddWashItem(name, rawPrice string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return Models.Validationf("item name must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.catalogEntry(name); ok {
		return Models.Validationf("item %q already exists", name)
	}
	price, err := strconv.Atoi(strings.TrimSpace(rawPrice))
	if err != nil || price < 0 {
		price = 0
	}
	m.washItems = append(m.washItems, Models.WashItem{Name: name, Price: price})
	return m.store.SaveWashItems(m.washItems)
}

// EditWashItem renames an entry and optionally changes its price. A nil
// price leaves the stored price unchanged. Historical records keep the
// name and price they were created with.
func (m *Manager) EditWashItem(oldName, newName string, price *int) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return Models.Validationf("item name must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	index := -1
	for i, it := range m.washItems {
		if it.Name == oldName {
			index = i
			break
		}
	}
	if index < 0 {
		return Models.NotFoundf("wash item %q", oldName)
	}
	if newName != oldName {
		if _, ok := m.catalogEntry(newName); ok {
			return Models.Validationf("item %q already exists", newName)
		}
	}
	m.washItems[index].Name = newName
	if price != nil {
		p := *price
		if p < 0 {
			p = 0
		}
		m.washItems[index].Price = p
	}
	return m.store.SaveWashItems(m.washItems)
}

func (m *Manager) DeleteWashItem(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, it := range m.washItems {
		if it.Name == name {
			m.washItems = append(m.washItems[:i], m.washItems[i+1:]...)
			return m.store.SaveWashItems(m.washItems)
		}
	}
	return Models.NotFoundf("wash item %q", name)
}

// WashGroups returns the display-ordered group presets, deep copied.
func (m *Manager) WashGroups() []Models.WashGroupEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := Models.SortedWashGroups(m.washGroups)
	for i := range entries {
		entries[i].Group = entries[i].Group.Clone()
	}
	return entries
}

// AddWashGroup creates an empty group preset at the end of the display
// order.
func (m *Manager) AddWashGroup(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", Models.Validationf("group name must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	idx := len(m.washGroups)
	g := &Models.WashGroup{Name: name, Items: []string{}, SortIndex: &idx}
	m.washGroups[id] = g
	return id, m.store.SaveWashGroup(id, g)
}

// UpdateWashGroup renames a group. Membership and position stay.
func (m *Manager) UpdateWashGroup(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return Models.Validationf("group name must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.washGroups[id]
	if !ok {
		return Models.NotFoundf("wash group %s", id)
	}
	g.Name = name
	return m.store.SaveWashGroup(id, g)
}

func (m *Manager) DeleteWashGroup(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.washGroups[id]; !ok {
		return Models.NotFoundf("wash group %s", id)
	}
	delete(m.washGroups, id)
	return m.store.RemoveWashGroup(id)
}

// AddItemToGroup adds a catalog item to the group. The item must exist in
// the catalog; adding one that is already a member is a no-op.
func (m *Manager) AddItemToGroup(groupID, itemName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.washGroups[groupID]
	if !ok {
		return Models.NotFoundf("wash group %s", groupID)
	}
	if _, ok := m.catalogEntry(itemName); !ok {
		return Models.Validationf("unknown wash item %q", itemName)
	}
	for _, name := range g.Items {
		if name == itemName {
			return nil
		}
	}
	g.Items = append(g.Items, itemName)
	return m.store.SaveWashGroup(groupID, g)
}

func (m *Manager) RemoveItemFromGroup(groupID, itemName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.washGroups[groupID]
	if !ok {
		return Models.NotFoundf("wash group %s", groupID)
	}
	for i, name := range g.Items {
		if name == itemName {
			g.Items = append(g.Items[:i], g.Items[i+1:]...)
			return m.store.SaveWashGroup(groupID, g)
		}
	}
	return Models.NotFoundf("item %q in group %s", itemName, groupID)
}

// ReorderWashGroups rewrites sort indices 0..n-1 following orderedIDs and
// persists the whole node in one save.
func (m *Manager) ReorderWashGroups(orderedIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range orderedIDs {
		if _, ok := m.washGroups[id]; !ok {
			return Models.NotFoundf("wash group %s", id)
		}
	}
	for i, id := range orderedIDs {
		idx := i
		m.washGroups[id].SortIndex = &idx
	}
	return m.store.SaveWashGroups(m.washGroups)
}

// callers must hold m.mu
func (m *Manager) vehicle(companyID, vehicleID string) (*Models.Vehicle, error) {
	c, ok := m.doc.Companies[companyID]
	if !ok {
		return nil, Models.NotFoundf("company %s", companyID)
	}
	v, ok := c.Vehicles[vehicleID]
	if !ok {
		return nil, Models.NotFoundf("vehicle %s", vehicleID)
	}
	return v, nil
}

// callers must hold m.mu
func (m *Manager) catalogEntry(name string) (Models.WashItem, bool) {
	for _, it := range m.washItems {
		if it.Name == name {
			return it, true
		}
	}
	return Models.WashItem{}, false
}

func validationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return Models.Validationf("invalid field %s (%s)", fe.Field(), fe.Tag())
	}
	return Models.Validationf("%v", err)
}
