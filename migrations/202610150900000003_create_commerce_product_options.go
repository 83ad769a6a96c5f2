package migrations

import (
	"time"

	"github.com/pankajredekar/commerce"
	"gorm.io/gorm"
)

// No foreign key to the templates table: deleting a template leaves its
// options in place.
type productOptionTable struct {
	ID         uint   `gorm:"primaryKey;not null"`
	StoreID    uint   `gorm:"not null;index:idx_commerce_product_options_store_id"`
	TemplateID *uint  `gorm:"index:idx_commerce_product_options_template_id"`
	Name       string `gorm:"not null;size:255"`
	Value      string `gorm:"size:255"`
	Position   int    `gorm:"default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (productOptionTable) TableName() string { return "commerce_product_options" }

type CreateCommerceProductOptions struct{}

func (m CreateCommerceProductOptions) Version() string { return "202610150900000003" }

func (m CreateCommerceProductOptions) Name() string { return "create_commerce_product_options" }

func (m CreateCommerceProductOptions) Up(db *gorm.DB) error {
	return db.AutoMigrate(&productOptionTable{})
}

func (m CreateCommerceProductOptions) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&productOptionTable{})
}

func (m CreateCommerceProductOptions) Simulate(sim *commerce.SchemaBuilder) {
	sim.CreateTable("commerce_product_options").
		PrimaryKey("id", "bigint").
		AddColumn("store_id", "bigint").
		AddNullableColumn("template_id", "bigint").
		AddColumn("name", "string").
		AddNullableColumn("value", "string").
		AddNullableColumn("position", "bigint").
		AddNullableColumn("created_at", "datetime").
		AddNullableColumn("updated_at", "datetime").
		AddIndex("idx_commerce_product_options_store_id", "store_id").
		AddIndex("idx_commerce_product_options_template_id", "template_id")
}

func init() {
	commerce.RegisterMigration(CreateCommerceProductOptions{})
}
