package model

import (
	"github.com/shopspring/decimal"
)

// カスタマイズ（サイズ・ミルクなど）と選べる値
type Customization struct {
	ID             int64    `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductID      int64    `gorm:"not null;index" json:"-"`
	Name           string   `gorm:"type:varchar(100);not null" json:"name"`
	PossibleValues []string `gorm:"serializer:json;type:jsonb;not null" json:"possible_values"`
}

func NewCustomization(name string, values ...string) Customization {
	return Customization{
		Name:           name,
		PossibleValues: append([]string(nil), values...),
	}
}

// Allows は value が選択肢に含まれるか
func (c Customization) Allows(value string) bool {
	for _, v := range c.PossibleValues {
		if v == value {
			return true
		}
	}
	return false
}

// 商品。name は大文字小文字を区別する一意キー
type Product struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Customizations []Customization `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"customizations"`
}

// DI（カタログ用の商品を組み立てる）
func NewProduct(name string, price decimal.Decimal, customizations ...Customization) Product {
	return Product{
		Name:           name,
		Price:          price,
		Customizations: append([]Customization(nil), customizations...),
	}
}

// Customization は名前でカスタマイズを探す
func (p Product) Customization(name string) (Customization, bool) {
	for _, c := range p.Customizations {
		if c.Name == name {
			return c, true
		}
	}
	return Customization{}, false
}

func (p *Product) EntityID() int64   { return p.ID }
func (p *Product) AssignID(id int64) { p.ID = id }

func (p *Product) Column(name string) (any, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "name":
		return p.Name, true
	case "price":
		return p.Price, true
	}
	return nil, false
}
