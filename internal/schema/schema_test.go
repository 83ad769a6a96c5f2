package schema

import (
	"strings"
	"testing"
)

func TestNewSchemaBuilder(t *testing.T) {
	builder := NewSchemaBuilder()
	if builder == nil {
		t.Fatal("NewSchemaBuilder returned nil")
	}
	if builder.Schema == nil {
		t.Fatal("Schema is nil")
	}
	if builder.Schema.Tables == nil {
		t.Fatal("Tables map is nil")
	}
}

func TestCreateTable(t *testing.T) {
	builder := NewSchemaBuilder()
	builder.CreateTable("commerce_stores").
		PrimaryKey("id", "bigint").
		AddColumn("name", "string").
		AddNullableColumn("slug", "string")

	table, exists := builder.GetTable("commerce_stores")
	if !exists {
		t.Fatal("Table 'commerce_stores' was not created")
	}
	if len(table.Columns) != 3 {
		t.Errorf("Expected 3 columns, got %d", len(table.Columns))
	}
	if !table.Columns["id"].PK {
		t.Error("Column 'id' should be primary key")
	}
	if table.Columns["name"].Null {
		t.Error("Column 'name' should be NOT NULL")
	}
	if !table.Columns["slug"].Null {
		t.Error("Column 'slug' should be nullable")
	}
}

func TestCreateTableReplaces(t *testing.T) {
	builder := NewSchemaBuilder()
	builder.CreateTable("t").AddColumn("a", "string")
	builder.CreateTable("t").AddColumn("b", "string")

	table, _ := builder.GetTable("t")
	if _, ok := table.Columns["a"]; ok {
		t.Error("Recreated table should not keep old columns")
	}
}

func TestDropTable(t *testing.T) {
	builder := NewSchemaBuilder()
	builder.CreateTable("commerce_stores")
	builder.DropTable("commerce_stores")

	if builder.TableExists("commerce_stores") {
		t.Error("Table should have been dropped")
	}
}

func TestIndexes(t *testing.T) {
	builder := NewSchemaBuilder()
	builder.CreateTable("commerce_stores").
		AddColumn("slug", "string").
		AddColumn("store_id", "bigint").
		AddUniqueIndex("idx_commerce_stores_slug", "slug").
		AddIndex("idx_commerce_stores_store_id", "store_id")

	table, _ := builder.GetTable("commerce_stores")
	if len(table.Indexes) != 2 {
		t.Fatalf("Expected 2 indexes, got %d", len(table.Indexes))
	}
	if !table.Indexes[0].Unique || table.Indexes[1].Unique {
		t.Error("Index uniqueness not recorded")
	}
	if !table.Columns["slug"].Unique {
		t.Error("Single-column unique index should mark column unique")
	}
}

func TestStringIsSorted(t *testing.T) {
	builder := NewSchemaBuilder()
	builder.CreateTable("b_table").AddColumn("z", "string").AddColumn("a", "string")
	builder.CreateTable("a_table").PrimaryKey("id", "bigint")

	out := builder.Schema.String()
	if strings.Index(out, "a_table") > strings.Index(out, "b_table") {
		t.Errorf("Tables should be sorted:\n%s", out)
	}
	if strings.Index(out, "Column: a ") > strings.Index(out, "Column: z ") {
		t.Errorf("Columns should be sorted:\n%s", out)
	}
	if !strings.Contains(out, "Column: id bigint [PRIMARY KEY, NOT NULL]") {
		t.Errorf("Unexpected rendering:\n%s", out)
	}
}
