package runner

import (
	"context"
	"fmt"
)

// Drift is a difference between the simulated schema and the live database
type Drift struct {
	Table   string
	Column  string
	Index   string
	Problem string
}

func (d Drift) String() string {
	switch {
	case d.Column != "":
		return fmt.Sprintf("%s.%s: %s", d.Table, d.Column, d.Problem)
	case d.Index != "":
		return fmt.Sprintf("%s index %s: %s", d.Table, d.Index, d.Problem)
	}
	return fmt.Sprintf("%s: %s", d.Table, d.Problem)
}

// Verify compares the schema the registered migrations describe with the
// tables, columns and indexes present in the database
func (r *Runner) Verify(ctx context.Context) ([]Drift, error) {
	expected := r.SimulateSchema().Schema
	migrator := r.db.WithContext(ctx).Migrator()

	var drifts []Drift
	for _, name := range expected.TableNames() {
		if !migrator.HasTable(name) {
			drifts = append(drifts, Drift{Table: name, Problem: "table missing"})
			continue
		}

		table := expected.Tables[name]
		for _, col := range table.ColumnNames() {
			if !migrator.HasColumn(name, col) {
				drifts = append(drifts, Drift{Table: name, Column: col, Problem: "column missing"})
			}
		}
		for _, idx := range table.Indexes {
			if !migrator.HasIndex(name, idx.Name) {
				drifts = append(drifts, Drift{Table: name, Index: idx.Name, Problem: "index missing"})
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return drifts, nil
}
