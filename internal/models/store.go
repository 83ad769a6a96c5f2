package models

import (
	"time"
)

// Store is the tenant that owns commerce data
type Store struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Slug      string    `gorm:"uniqueIndex;size:100" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Store
func (Store) TableName() string {
	return "commerce_stores"
}
