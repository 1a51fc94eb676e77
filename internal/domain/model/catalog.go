package model

import "github.com/shopspring/decimal"

// 初期カタログ
func DefaultCatalog() []Product {
	size := func() Customization { return NewCustomization("size", "small", "medium", "large") }
	milk := func() Customization { return NewCustomization("milk", "skim", "semi", "whole") }
	shots := func() Customization { return NewCustomization("shots", "single", "double", "triple") }

	return []Product{
		NewProduct("latte", decimal.RequireFromString("2.50"), size(), milk(), shots()),
		NewProduct("cappuccino", decimal.RequireFromString("2.50"), size(), milk(), shots()),
		NewProduct("espresso", decimal.RequireFromString("1.80"), shots()),
		NewProduct("tea", decimal.RequireFromString("1.50"), size()),
		NewProduct("hot chocolate", decimal.RequireFromString("2.00"), size(), milk(),
			NewCustomization("whipped cream", "yes", "no")),
		NewProduct("cookie", decimal.RequireFromString("1.00"),
			NewCustomization("kind", "chocolate chip", "ginger")),
	}
}
