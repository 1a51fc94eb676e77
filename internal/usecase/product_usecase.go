package usecase

import (
	"context"
	"errors"
	"net/http"

	"restbucks/internal/domain/model"
	repo "restbucks/internal/repository"

	log "github.com/sirupsen/logrus"
)

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

type ProductUsecase struct {
	products repo.Repository[model.Product]
	catalog  *repo.ProductCatalog
	logger   *log.Entry
}

// DI
func NewProductUsecase(products repo.Repository[model.Product]) *ProductUsecase {
	return &ProductUsecase{
		products: products,
		catalog:  repo.NewProductCatalog(products),
		logger:   log.WithField("component", "product_usecase"),
	}
}

func (u *ProductUsecase) ListProducts(ctx context.Context) (ProductListOutput, error) {
	items, err := u.catalog.List(ctx)
	if err != nil {
		u.logger.WithError(err).Error("list products failed")
		return ProductListOutput{}, WrapHTTPError(http.StatusInternalServerError, "db error", err)
	}
	return ProductListOutput{Items: items, Total: len(items)}, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.products.GetByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, WrapHTTPError(http.StatusInternalServerError, "db error", err)
	}
	return *p, nil
}

// SeedCatalog はカタログが空のときだけ products を登録する
func (u *ProductUsecase) SeedCatalog(ctx context.Context, products []model.Product) (int, error) {
	for _, err := range u.products.RetrieveAll(ctx) {
		if err != nil {
			return 0, err
		}
		//1件でもあれば何もしない
		return 0, nil
	}

	ps := make([]*model.Product, 0, len(products))
	for i := range products {
		ps = append(ps, &products[i])
	}
	if err := u.products.MakePersistent(ctx, ps...); err != nil {
		return 0, err
	}
	u.logger.WithField("count", len(ps)).Info("catalog seeded")
	return len(ps), nil
}
