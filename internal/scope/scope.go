package scope

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrStoreMismatch is returned when a record belongs to a different store
// than the scope it is written through
var ErrStoreMismatch = errors.New("record belongs to another store")

// Scoped is implemented by records owned by a store
type Scoped interface {
	GetStoreID() uint
	SetStoreID(id uint)
}

// StoreScope restricts reads and writes to one store. The zero value is
// unscoped.
type StoreScope struct {
	storeID uint
}

// ForStore scopes to the given store
func ForStore(storeID uint) StoreScope {
	return StoreScope{storeID: storeID}
}

// Unscoped applies no store restriction
func Unscoped() StoreScope {
	return StoreScope{}
}

// StoreID returns the scoped store and whether a restriction applies
func (s StoreScope) StoreID() (uint, bool) {
	return s.storeID, s.storeID != 0
}

// Apply adds the store filter to a query. Use it with db.Scopes(s.Apply).
func (s StoreScope) Apply(db *gorm.DB) *gorm.DB {
	if s.storeID == 0 {
		return db
	}
	return db.Where(clause.Eq{
		Column: clause.Column{Table: clause.CurrentTable, Name: "store_id"},
		Value:  s.storeID,
	})
}

// Stamp assigns the scoped store to a record that has none, and rejects a
// record that names a different store
func (s StoreScope) Stamp(rec Scoped) error {
	if s.storeID == 0 {
		return nil
	}
	switch rec.GetStoreID() {
	case 0:
		rec.SetStoreID(s.storeID)
	case s.storeID:
	default:
		return fmt.Errorf("%w: store %d, scope %d", ErrStoreMismatch, rec.GetStoreID(), s.storeID)
	}
	return nil
}

func (s StoreScope) String() string {
	if s.storeID == 0 {
		return "unscoped"
	}
	return fmt.Sprintf("store:%d", s.storeID)
}
