package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/pankajredekar/commerce/internal/models"
	"github.com/pankajredekar/commerce/internal/scope"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrTemplateNotFound is returned when a template does not exist or is
// outside the repository's store scope
var ErrTemplateNotFound = errors.New("product option template not found")

// TemplateRepository loads and stores product option templates
type TemplateRepository interface {
	Create(ctx context.Context, attrs map[string]any) (*models.ProductOptionTemplate, error)
	Save(ctx context.Context, tpl *models.ProductOptionTemplate) error
	Update(ctx context.Context, id uint, attrs map[string]any) (*models.ProductOptionTemplate, error)
	Find(ctx context.Context, id uint) (*models.ProductOptionTemplate, error)
	FindWithOptions(ctx context.Context, id uint) (*models.ProductOptionTemplate, error)
	List(ctx context.Context) ([]models.ProductOptionTemplate, error)
	Delete(ctx context.Context, id uint) error
	ProductOptions(ctx context.Context, templateID uint) ([]models.ProductOption, error)
}

// GormTemplateRepository is the GORM-backed TemplateRepository
type GormTemplateRepository struct {
	db    *gorm.DB
	scope scope.StoreScope
	log   *zap.SugaredLogger
}

var _ TemplateRepository = (*GormTemplateRepository)(nil)

func NewTemplateRepository(db *gorm.DB, s scope.StoreScope, log *zap.SugaredLogger) *GormTemplateRepository {
	return &GormTemplateRepository{db: db, scope: s, log: log.Named("templates")}
}

// WithScope returns a copy of the repository bound to s
func (r *GormTemplateRepository) WithScope(s scope.StoreScope) *GormTemplateRepository {
	return &GormTemplateRepository{db: r.db, scope: s, log: r.log}
}

func (r *GormTemplateRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Scopes(r.scope.Apply)
}

// Create mass-assigns attrs onto a new template and inserts it
func (r *GormTemplateRepository) Create(ctx context.Context, attrs map[string]any) (*models.ProductOptionTemplate, error) {
	tpl, err := models.NewProductOptionTemplate(attrs)
	if err != nil {
		return nil, err
	}
	if err := r.scope.Stamp(tpl); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(tpl).Error; err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	r.log.Debugw("created template", "id", tpl.ID, "store_id", tpl.StoreID, "scope", r.scope)
	return tpl, nil
}

// Save inserts tpl when it has no ID and otherwise overwrites the existing
// row. created_at always keeps its stored value.
func (r *GormTemplateRepository) Save(ctx context.Context, tpl *models.ProductOptionTemplate) error {
	if err := r.scope.Stamp(tpl); err != nil {
		return err
	}
	if tpl.ID == 0 {
		if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(tpl).Error; err != nil {
			return fmt.Errorf("failed to save template: %w", err)
		}
		r.log.Debugw("saved template", "id", tpl.ID, "scope", r.scope)
		return nil
	}

	// The row must already be visible through the scope.
	existing, err := r.Find(ctx, tpl.ID)
	if err != nil {
		return err
	}
	tpl.CreatedAt = existing.CreatedAt
	if err := r.update(ctx, tpl); err != nil {
		return err
	}

	r.log.Debugw("saved template", "id", tpl.ID, "scope", r.scope)
	return nil
}

// update writes every column of an existing row except created_at. It never
// falls back to an insert.
func (r *GormTemplateRepository) update(ctx context.Context, tpl *models.ProductOptionTemplate) error {
	res := r.query(ctx).Model(tpl).
		Select("*").
		Omit(clause.Associations, "CreatedAt").
		Updates(tpl)
	if res.Error != nil {
		return fmt.Errorf("failed to update template %d: %w", tpl.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("template %d: %w", tpl.ID, ErrTemplateNotFound)
	}
	return nil
}

// Update mass-assigns attrs onto an existing template. Attributes outside
// the fillable list are ignored and never reach the database.
func (r *GormTemplateRepository) Update(ctx context.Context, id uint, attrs map[string]any) (*models.ProductOptionTemplate, error) {
	tpl, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := tpl.Fill(attrs); err != nil {
		return nil, err
	}
	if err := r.scope.Stamp(tpl); err != nil {
		return nil, err
	}
	if err := r.update(ctx, tpl); err != nil {
		return nil, err
	}

	r.log.Debugw("updated template", "id", id, "scope", r.scope)
	return tpl, nil
}

// Find loads a template by primary key
func (r *GormTemplateRepository) Find(ctx context.Context, id uint) (*models.ProductOptionTemplate, error) {
	return r.find(r.query(ctx), id)
}

// FindWithOptions loads a template together with its product options
func (r *GormTemplateRepository) FindWithOptions(ctx context.Context, id uint) (*models.ProductOptionTemplate, error) {
	q := r.query(ctx).Preload("ProductOptions", func(db *gorm.DB) *gorm.DB {
		return db.Scopes(r.scope.Apply).Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	})
	return r.find(q, id)
}

func (r *GormTemplateRepository) find(q *gorm.DB, id uint) (*models.ProductOptionTemplate, error) {
	var tpl models.ProductOptionTemplate
	if err := q.First(&tpl, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("template %d: %w", id, ErrTemplateNotFound)
		}
		return nil, fmt.Errorf("failed to load template %d: %w", id, err)
	}
	return &tpl, nil
}

// List returns every template visible through the scope, ordered by ID
func (r *GormTemplateRepository) List(ctx context.Context) ([]models.ProductOptionTemplate, error) {
	templates := make([]models.ProductOptionTemplate, 0)
	if err := r.query(ctx).Order("id").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// Delete removes the template row only. Product options that reference it
// keep their template_id.
func (r *GormTemplateRepository) Delete(ctx context.Context, id uint) error {
	res := r.query(ctx).Delete(&models.ProductOptionTemplate{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete template %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("template %d: %w", id, ErrTemplateNotFound)
	}

	r.log.Debugw("deleted template", "id", id, "scope", r.scope)
	return nil
}

// ProductOptions returns the options whose template_id is templateID, in
// primary key order
func (r *GormTemplateRepository) ProductOptions(ctx context.Context, templateID uint) ([]models.ProductOption, error) {
	return optionsForTemplate(r.query(ctx), templateID)
}

func optionsForTemplate(q *gorm.DB, templateID uint) ([]models.ProductOption, error) {
	options := make([]models.ProductOption, 0)
	if err := q.Where("template_id = ?", templateID).Order("id").Find(&options).Error; err != nil {
		return nil, fmt.Errorf("failed to load options for template %d: %w", templateID, err)
	}
	return options, nil
}
