package migrations

import (
	"time"

	"github.com/pankajredekar/commerce"
	"gorm.io/gorm"
)

type storeTable struct {
	ID        uint   `gorm:"primaryKey;not null"`
	Name      string `gorm:"not null;size:255"`
	Slug      string `gorm:"uniqueIndex:idx_commerce_stores_slug;size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (storeTable) TableName() string { return "commerce_stores" }

type CreateCommerceStores struct{}

func (m CreateCommerceStores) Version() string { return "202610150900000001" }

func (m CreateCommerceStores) Name() string { return "create_commerce_stores" }

func (m CreateCommerceStores) Up(db *gorm.DB) error {
	return db.AutoMigrate(&storeTable{})
}

func (m CreateCommerceStores) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&storeTable{})
}

func (m CreateCommerceStores) Simulate(sim *commerce.SchemaBuilder) {
	sim.CreateTable("commerce_stores").
		PrimaryKey("id", "bigint").
		AddColumn("name", "string").
		AddNullableColumn("slug", "string").
		AddNullableColumn("created_at", "datetime").
		AddNullableColumn("updated_at", "datetime").
		AddUniqueIndex("idx_commerce_stores_slug", "slug")
}

func init() {
	commerce.RegisterMigration(CreateCommerceStores{})
}
