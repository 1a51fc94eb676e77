package repository_test

import (
	"context"
	"errors"
	"iter"
	"testing"

	"restbucks/internal/domain/model"
	repo "restbucks/internal/repository"
	"restbucks/internal/repository/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog() *repo.ProductCatalog {
	latte := model.NewProduct("latte", decimal.RequireFromString("2.5"))
	other := model.NewProduct("Other", decimal.RequireFromString("3.6"))
	return repo.NewProductCatalog(memory.NewRepository[model.Product](&latte, &other))
}

func TestProductCatalog_FindByName(t *testing.T) {
	c := newCatalog()

	p, found, err := c.FindByName(context.Background(), "latte")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "latte", p.Name)
	assert.NotZero(t, p.ID)
}

func TestProductCatalog_FindByName_CaseSensitive(t *testing.T) {
	c := newCatalog()

	_, found, err := c.FindByName(context.Background(), "Latte")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = c.FindByName(context.Background(), "beer")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestProductCatalog_List(t *testing.T) {
	ps, err := newCatalog().List(context.Background())
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "latte", ps[0].Name)
	assert.Equal(t, "Other", ps[1].Name)
}

// 列挙でエラーを返すだけのリポジトリ
type brokenRepo struct{ err error }

func (r brokenRepo) MakePersistent(context.Context, ...*model.Product) error { return r.err }
func (r brokenRepo) GetByID(context.Context, int64) (*model.Product, error)  { return nil, r.err }
func (r brokenRepo) Retrieve(context.Context, repo.Criteria) iter.Seq2[*model.Product, error] {
	return func(yield func(*model.Product, error) bool) { yield(nil, r.err) }
}
func (r brokenRepo) RetrieveAll(ctx context.Context) iter.Seq2[*model.Product, error] {
	return r.Retrieve(ctx, repo.Criteria{})
}

func TestProductCatalog_FindByName_StoreError(t *testing.T) {
	boom := errors.New("connection refused")
	c := repo.NewProductCatalog(brokenRepo{err: boom})

	_, found, err := c.FindByName(context.Background(), "latte")
	assert.ErrorIs(t, err, boom)
	assert.False(t, found)

	_, err = c.List(context.Background())
	assert.ErrorIs(t, err, boom)
}
