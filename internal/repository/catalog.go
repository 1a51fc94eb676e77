package repository

import (
	"context"

	"restbucks/internal/domain/model"
)

// 商品名でカタログを引く（読み取り専用）
type Catalog interface {
	FindByName(ctx context.Context, name string) (model.Product, bool, error)
}

type ProductCatalog struct {
	products Repository[model.Product]
}

// DI
func NewProductCatalog(products Repository[model.Product]) *ProductCatalog {
	return &ProductCatalog{products: products}
}

// 名前の完全一致。見つからなければ found=false
func (c *ProductCatalog) FindByName(ctx context.Context, name string) (model.Product, bool, error) {
	for p, err := range c.products.Retrieve(ctx, Where("name", name)) {
		if err != nil {
			return model.Product{}, false, err
		}
		return *p, true, nil
	}
	return model.Product{}, false, nil
}

// 一覧（id 順）
func (c *ProductCatalog) List(ctx context.Context) ([]model.Product, error) {
	ps, err := Collect(c.products.RetrieveAll(ctx))
	if err != nil {
		return nil, err
	}
	out := make([]model.Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, *p)
	}
	return out, nil
}
