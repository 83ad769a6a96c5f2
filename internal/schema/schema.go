package schema

import (
	"fmt"
	"sort"
	"strings"
)

// SchemaBuilder provides in-memory schema simulation
type SchemaBuilder struct {
	Schema *SchemaState
}

// SchemaState represents the expected database schema
type SchemaState struct {
	Tables map[string]*Table
}

// Table represents a database table
type Table struct {
	Name    string
	Columns map[string]*Column
	Indexes []Index
}

// Column represents a database column
type Column struct {
	Name   string
	Type   string
	Null   bool
	PK     bool
	Unique bool
}

// Index represents a named index over one or more columns
type Index struct {
	Name    string
	Columns []string
	Unique  bool
}

// TableBuilder provides fluent API for building tables
type TableBuilder struct {
	builder *SchemaBuilder
	table   *Table
}

// NewSchemaBuilder creates a new schema builder
func NewSchemaBuilder() *SchemaBuilder {
	return &SchemaBuilder{
		Schema: &SchemaState{
			Tables: make(map[string]*Table),
		},
	}
}

// CreateTable creates a new table, replacing any table of the same name
func (b *SchemaBuilder) CreateTable(name string) *TableBuilder {
	table := &Table{
		Name:    name,
		Columns: make(map[string]*Column),
	}
	b.Schema.Tables[name] = table
	return &TableBuilder{
		builder: b,
		table:   table,
	}
}

// DropTable removes a table
func (b *SchemaBuilder) DropTable(name string) {
	delete(b.Schema.Tables, name)
}

// TableExists checks if a table exists
func (b *SchemaBuilder) TableExists(name string) bool {
	_, exists := b.Schema.Tables[name]
	return exists
}

// GetTable returns a table by name
func (b *SchemaBuilder) GetTable(name string) (*Table, bool) {
	table, exists := b.Schema.Tables[name]
	return table, exists
}

// PrimaryKey adds a non-null primary key column
func (t *TableBuilder) PrimaryKey(name, colType string) *TableBuilder {
	t.table.Columns[name] = &Column{Name: name, Type: colType, PK: true}
	return t
}

// AddColumn adds a non-null column to the table
func (t *TableBuilder) AddColumn(name, colType string) *TableBuilder {
	t.table.Columns[name] = &Column{Name: name, Type: colType}
	return t
}

// AddNullableColumn adds a column that accepts NULL
func (t *TableBuilder) AddNullableColumn(name, colType string) *TableBuilder {
	t.table.Columns[name] = &Column{Name: name, Type: colType, Null: true}
	return t
}

// AddIndex adds an index to the table
func (t *TableBuilder) AddIndex(name string, columns ...string) *TableBuilder {
	t.table.Indexes = append(t.table.Indexes, Index{Name: name, Columns: columns})
	return t
}

// AddUniqueIndex adds a unique index and marks single-column targets unique
func (t *TableBuilder) AddUniqueIndex(name string, columns ...string) *TableBuilder {
	t.table.Indexes = append(t.table.Indexes, Index{Name: name, Columns: columns, Unique: true})
	if len(columns) == 1 {
		if col, ok := t.table.Columns[columns[0]]; ok {
			col.Unique = true
		}
	}
	return t
}

// TableNames returns the table names in sorted order
func (s *SchemaState) TableNames() []string {
	names := make([]string, 0, len(s.Tables))
	for name := range s.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ColumnNames returns the column names in sorted order
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for name := range t.Columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns a string representation of the schema
func (s *SchemaState) String() string {
	var sb strings.Builder
	for _, name := range s.TableNames() {
		table := s.Tables[name]
		sb.WriteString(fmt.Sprintf("Table: %s\n", name))
		for _, colName := range table.ColumnNames() {
			col := table.Columns[colName]
			attrs := []string{}
			if col.PK {
				attrs = append(attrs, "PRIMARY KEY")
			}
			if col.Unique {
				attrs = append(attrs, "UNIQUE")
			}
			if col.Null {
				attrs = append(attrs, "NULL")
			} else {
				attrs = append(attrs, "NOT NULL")
			}
			sb.WriteString(fmt.Sprintf("  Column: %s %s [%s]\n", col.Name, col.Type, strings.Join(attrs, ", ")))
		}
		for _, idx := range table.Indexes {
			kind := "Index"
			if idx.Unique {
				kind = "Unique index"
			}
			sb.WriteString(fmt.Sprintf("  %s: %s (%s)\n", kind, idx.Name, strings.Join(idx.Columns, ", ")))
		}
	}
	return sb.String()
}
