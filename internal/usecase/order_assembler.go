package usecase

import (
	"time"

	"restbucks/internal/domain/model"
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type OrderAssembler struct {
	clock Clock
}

// DI
func NewOrderAssembler(clock Clock) *OrderAssembler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &OrderAssembler{clock: clock}
}

// Assemble は検証済み明細から未保存の注文を作る。
// 単価はこの時点の商品価格をコピーする。
func (a *OrderAssembler) Assemble(items []ValidatedItem, location model.Location) model.Order {
	if location == "" {
		location = model.DefaultLocation
	}

	orderItems := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		p := it.Product
		orderItems = append(orderItems, model.OrderItem{
			ProductID:   p.ID,
			Product:     &p,
			UnitPrice:   p.Price.Copy(),
			Quantity:    it.Quantity,
			Preferences: copyPreferences(it.Preferences),
		})
	}

	return model.Order{
		Date:     model.DateOf(a.clock.Now()),
		Location: location,
		Status:   model.OrderStatusUnpaid,
		Items:    orderItems,
	}
}

func copyPreferences(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
