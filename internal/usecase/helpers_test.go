package usecase

import (
	"context"
	"iter"
	"time"

	"restbucks/internal/domain/model"
	repo "restbucks/internal/repository"
	"restbucks/internal/repository/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var today = time.Date(2026, 10, 18, 15, 4, 5, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newLatte() *model.Product {
	p := model.NewProduct("latte", decimal.RequireFromString("2.5"),
		model.NewCustomization("size", "small", "medium"),
	)
	return &p
}

func newProductRepo(ps ...*model.Product) *memory.Repository[model.Product, *model.Product] {
	if len(ps) == 0 {
		other := model.NewProduct("Other", decimal.RequireFromString("3.6"))
		ps = []*model.Product{newLatte(), &other}
	}
	return memory.NewRepository[model.Product](ps...)
}

// =====================
// Mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) MakePersistent(ctx context.Context, entities ...*model.Order) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

func (m *OrderRepoMock) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Retrieve(ctx context.Context, c repo.Criteria) iter.Seq2[*model.Order, error] {
	panic("not used in OrderUsecase tests")
}

func (m *OrderRepoMock) RetrieveAll(ctx context.Context) iter.Seq2[*model.Order, error] {
	panic("not used in OrderUsecase tests")
}

type CatalogMock struct{ mock.Mock }

func (m *CatalogMock) FindByName(ctx context.Context, name string) (model.Product, bool, error) {
	args := m.Called(ctx, name)
	p, _ := args.Get(0).(model.Product)
	return p, args.Bool(1), args.Error(2)
}

type RecorderMock struct{ mock.Mock }

func (m *RecorderMock) RecordCreated(d time.Duration)                 { m.Called() }
func (m *RecorderMock) RecordRejected(reason string, d time.Duration) { m.Called(reason) }
func (m *RecorderMock) RecordFailed(d time.Duration)                  { m.Called() }
