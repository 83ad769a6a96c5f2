// Package factory creates stores, templates and options with predictable
// values for tests and demo data.
package factory

import (
	"context"
	"fmt"

	"github.com/pankajredekar/commerce/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Factory struct {
	db  *gorm.DB
	seq int
}

func New(db *gorm.DB) *Factory {
	return &Factory{db: db}
}

func (f *Factory) next() int {
	f.seq++
	return f.seq
}

// Store inserts a store named "Store N"
func (f *Factory) Store(ctx context.Context) (*models.Store, error) {
	n := f.next()
	store := &models.Store{
		Name: fmt.Sprintf("Store %d", n),
		Slug: fmt.Sprintf("store-%d", n),
	}
	if err := f.db.WithContext(ctx).Create(store).Error; err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return store, nil
}

// Template inserts a template for storeID. Overrides are mass-assigned over
// the defaults, so only fillable keys take effect.
func (f *Factory) Template(ctx context.Context, storeID uint, overrides map[string]any) (*models.ProductOptionTemplate, error) {
	n := f.next()
	attrs := map[string]any{
		"store_id": storeID,
		"name":     fmt.Sprintf("Template %d", n),
		"options": map[string]any{
			"type":   "select",
			"values": []string{fmt.Sprintf("Choice %d-a", n), fmt.Sprintf("Choice %d-b", n)},
		},
	}
	for k, v := range overrides {
		attrs[k] = v
	}

	tpl, err := models.NewProductOptionTemplate(attrs)
	if err != nil {
		return nil, err
	}
	if err := f.db.WithContext(ctx).Omit(clause.Associations).Create(tpl).Error; err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return tpl, nil
}

// Option inserts an option for storeID linked to templateID. A templateID of
// zero leaves the option unlinked.
func (f *Factory) Option(ctx context.Context, storeID, templateID uint, mutate ...func(*models.ProductOption)) (*models.ProductOption, error) {
	n := f.next()
	opt := &models.ProductOption{
		StoreID:  storeID,
		Name:     fmt.Sprintf("Option %d", n),
		Value:    fmt.Sprintf("value-%d", n),
		Position: n,
	}
	if templateID != 0 {
		id := templateID
		opt.TemplateID = &id
	}
	for _, fn := range mutate {
		fn(opt)
	}

	if err := f.db.WithContext(ctx).Create(opt).Error; err != nil {
		return nil, fmt.Errorf("failed to create option: %w", err)
	}
	return opt, nil
}
