package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrUnknownLocation = errors.New("unknown location")

// 受け取り場所
type Location string

const (
	LocationInShop   Location = "in-shop"
	LocationTakeAway Location = "takeaway"

	// 指定なしのときは店内
	DefaultLocation = LocationInShop
)

// ParseLocation は空文字ならデフォルト、未知の値はエラー
func ParseLocation(s string) (Location, error) {
	switch Location(s) {
	case "":
		return DefaultLocation, nil
	case LocationInShop, LocationTakeAway:
		return Location(s), nil
	}
	return "", ErrUnknownLocation
}

type OrderStatus string

const (
	OrderStatusUnpaid    OrderStatus = "unpaid"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// 注文（集約）。ID は永続化時に採番される
type Order struct {
	ID       int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Date     time.Time   `gorm:"type:date;not null;index" json:"date"`
	Location Location    `gorm:"type:varchar(20);not null" json:"location"`
	Status   OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// 合計 = Σ 単価 × 数量
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (o *Order) EntityID() int64   { return o.ID }
func (o *Order) AssignID(id int64) { o.ID = id }

func (o *Order) Column(name string) (any, bool) {
	switch name {
	case "id":
		return o.ID, true
	case "date":
		return o.Date, true
	case "location":
		return o.Location, true
	case "status":
		return o.Status, true
	}
	return nil, false
}

// 注文明細。UnitPrice は注文時点の商品価格のスナップショット
type OrderItem struct {
	ID          int64             `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID     int64             `gorm:"not null;index" json:"-"`
	ProductID   int64             `gorm:"not null;index" json:"product_id"`
	Product     *Product          `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	UnitPrice   decimal.Decimal   `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	Quantity    int               `gorm:"not null" json:"quantity"`
	Preferences map[string]string `gorm:"serializer:json;type:jsonb" json:"preferences,omitempty"`
}

func (it OrderItem) Subtotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// DateOf は時刻を切り捨てて日付だけにする
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
