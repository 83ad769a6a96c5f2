package models

import (
	"time"
)

// ProductOption is a single option row, optionally created from a template
type ProductOption struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StoreID    uint      `gorm:"not null;index" json:"store_id"`
	TemplateID *uint     `gorm:"index" json:"template_id"`
	Name       string    `gorm:"not null;size:255" json:"name"`
	Value      string    `gorm:"size:255" json:"value"`
	Position   int       `gorm:"default:0" json:"position"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the table name for ProductOption
func (ProductOption) TableName() string {
	return "commerce_product_options"
}

func (o *ProductOption) GetStoreID() uint   { return o.StoreID }
func (o *ProductOption) SetStoreID(id uint) { o.StoreID = id }
