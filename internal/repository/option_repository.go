package repository

import (
	"context"
	"fmt"

	"github.com/pankajredekar/commerce/internal/models"
	"github.com/pankajredekar/commerce/internal/scope"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OptionRepository writes and lists product option rows
type OptionRepository struct {
	db    *gorm.DB
	scope scope.StoreScope
	log   *zap.SugaredLogger
}

func NewOptionRepository(db *gorm.DB, s scope.StoreScope, log *zap.SugaredLogger) *OptionRepository {
	return &OptionRepository{db: db, scope: s, log: log.Named("options")}
}

func (r *OptionRepository) Create(ctx context.Context, opt *models.ProductOption) error {
	if err := r.scope.Stamp(opt); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(opt).Error; err != nil {
		return fmt.Errorf("failed to create option: %w", err)
	}
	r.log.Debugw("created option", "id", opt.ID, "template_id", opt.TemplateID, "scope", r.scope)
	return nil
}

// ListByTemplate returns the options pointing at templateID, whether or not
// the template still exists
func (r *OptionRepository) ListByTemplate(ctx context.Context, templateID uint) ([]models.ProductOption, error) {
	return optionsForTemplate(r.db.WithContext(ctx).Scopes(r.scope.Apply), templateID)
}
