package repository

import (
	"context"
	"testing"

	"github.com/pankajredekar/commerce/internal/log"
	"github.com/pankajredekar/commerce/internal/models"
	"github.com/pankajredekar/commerce/internal/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopedReadsOnlySeeOwnStore(t *testing.T) {
	ctx := context.Background()
	_, repo, f := setup(t)

	mine, err := f.Template(ctx, 1, nil)
	require.NoError(t, err)
	theirs, err := f.Template(ctx, 2, nil)
	require.NoError(t, err)

	store1 := repo.WithScope(scope.ForStore(1))

	_, err = store1.Find(ctx, mine.ID)
	require.NoError(t, err)
	_, err = store1.Find(ctx, theirs.ID)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	templates, err := store1.List(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, mine.ID, templates[0].ID)

	assert.ErrorIs(t, store1.Delete(ctx, theirs.ID), ErrTemplateNotFound)
	_, err = repo.Find(ctx, theirs.ID)
	assert.NoError(t, err, "delete through another store's scope must not remove the row")
}

func TestScopedCreateStampsStore(t *testing.T) {
	ctx := context.Background()
	_, repo, _ := setup(t)
	store3 := repo.WithScope(scope.ForStore(3))

	tpl, err := store3.Create(ctx, map[string]any{"name": "Finish"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), tpl.StoreID)

	_, err = store3.Create(ctx, map[string]any{"store_id": 4, "name": "Elsewhere"})
	assert.ErrorIs(t, err, scope.ErrStoreMismatch)
}

func TestScopedUpdateCannotMoveStore(t *testing.T) {
	ctx := context.Background()
	_, repo, f := setup(t)

	tpl, err := f.Template(ctx, 1, nil)
	require.NoError(t, err)

	_, err = repo.WithScope(scope.ForStore(1)).Update(ctx, tpl.ID, map[string]any{"store_id": 2})
	assert.ErrorIs(t, err, scope.ErrStoreMismatch)

	found, err := repo.Find(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), found.StoreID)

	moved, err := repo.Update(ctx, tpl.ID, map[string]any{"store_id": 2})
	require.NoError(t, err)
	assert.Equal(t, uint(2), moved.StoreID)
}

func TestScopedProductOptions(t *testing.T) {
	ctx := context.Background()
	db, repo, f := setup(t)

	tpl, err := f.Template(ctx, 1, nil)
	require.NoError(t, err)
	_, err = f.Option(ctx, 1, tpl.ID)
	require.NoError(t, err)
	_, err = f.Option(ctx, 2, tpl.ID)
	require.NoError(t, err)

	options, err := repo.WithScope(scope.ForStore(1)).ProductOptions(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Len(t, options, 1)

	optRepo := NewOptionRepository(db, scope.ForStore(1), log.Nop())
	opt := &models.ProductOption{Name: "Gloss", TemplateID: &tpl.ID}
	require.NoError(t, optRepo.Create(ctx, opt))
	assert.Equal(t, uint(1), opt.StoreID)

	assert.ErrorIs(t, optRepo.Create(ctx, &models.ProductOption{StoreID: 2, Name: "x"}), scope.ErrStoreMismatch)
}
