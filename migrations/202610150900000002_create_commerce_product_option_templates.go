package migrations

import (
	"time"

	"github.com/pankajredekar/commerce"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// jsonColumn is declared TEXT on SQLite. A column typed JSON gets NUMERIC
// affinity there, which turns a top-level JSON number into an integer that
// datatypes.JSON cannot scan.
type jsonColumn datatypes.JSON

func (jsonColumn) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "TEXT"
	}
	return datatypes.JSON{}.GormDBDataType(db, field)
}

type productOptionTemplateTable struct {
	ID        uint   `gorm:"primaryKey;not null"`
	StoreID   uint   `gorm:"not null;index:idx_commerce_product_option_templates_store_id"`
	Name      string `gorm:"not null;size:255"`
	Options   jsonColumn
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (productOptionTemplateTable) TableName() string { return "commerce_product_option_templates" }

type CreateCommerceProductOptionTemplates struct{}

func (m CreateCommerceProductOptionTemplates) Version() string { return "202610150900000002" }

func (m CreateCommerceProductOptionTemplates) Name() string {
	return "create_commerce_product_option_templates"
}

func (m CreateCommerceProductOptionTemplates) Up(db *gorm.DB) error {
	return db.AutoMigrate(&productOptionTemplateTable{})
}

func (m CreateCommerceProductOptionTemplates) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&productOptionTemplateTable{})
}

func (m CreateCommerceProductOptionTemplates) Simulate(sim *commerce.SchemaBuilder) {
	sim.CreateTable("commerce_product_option_templates").
		PrimaryKey("id", "bigint").
		AddColumn("store_id", "bigint").
		AddColumn("name", "string").
		AddNullableColumn("options", "json").
		AddNullableColumn("created_at", "datetime").
		AddNullableColumn("updated_at", "datetime").
		AddIndex("idx_commerce_product_option_templates_store_id", "store_id")
}

func init() {
	commerce.RegisterMigration(CreateCommerceProductOptionTemplates{})
}
