package usecase

import (
	"context"
	"fmt"
	"sort"

	"restbucks/internal/domain/model"
	repo "restbucks/internal/repository"
)

// 注文明細の入力
type OrderItemInput struct {
	Name        string
	Quantity    int
	Preferences map[string]string
}

// 検証済みの明細（Assembler で再解決しないように商品を持つ）
type ValidatedItem struct {
	Product     model.Product
	Quantity    int
	Preferences map[string]string
}

type OrderValidator struct {
	catalog repo.Catalog
}

// DI
func NewOrderValidator(catalog repo.Catalog) *OrderValidator {
	return &OrderValidator{catalog: catalog}
}

// Validate はリクエスト順に検査し、最初の違反で止める。
// 違反は *ValidationError、カタログ参照の失敗はそのまま返す。
func (v *OrderValidator) Validate(ctx context.Context, items []OrderItemInput) ([]ValidatedItem, error) {
	out := make([]ValidatedItem, 0, len(items))

	for i, it := range items {
		p, found, err := v.catalog.FindByName(ctx, it.Name)
		if err != nil {
			return nil, fmt.Errorf("find product %q: %w", it.Name, err)
		}
		if !found {
			return nil, &ValidationError{
				Kind:    ErrProductNotOffered,
				Index:   i,
				Message: fmt.Sprintf("We don't offer %s", it.Name),
			}
		}

		if it.Quantity <= 0 {
			return nil, &ValidationError{
				Kind:    ErrInvalidQuantity,
				Index:   i,
				Message: fmt.Sprintf("Item %d: Quantity should be greater than 0.", i),
			}
		}

		if verr := validatePreferences(i, p, it.Preferences); verr != nil {
			return nil, verr
		}

		out = append(out, ValidatedItem{
			Product:     p,
			Quantity:    it.Quantity,
			Preferences: it.Preferences,
		})
	}
	return out, nil
}

// キー順に見るのでメッセージは毎回同じになる
func validatePreferences(index int, p model.Product, prefs map[string]string) *ValidationError {
	keys := make([]string, 0, len(prefs))
	for k := range prefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		c, ok := p.Customization(k)
		if ok && c.Allows(prefs[k]) {
			continue
		}
		return &ValidationError{
			Kind:    ErrInvalidPreference,
			Index:   index,
			Message: fmt.Sprintf("Item %d: The product %s does not have a customization: %s/%s.", index, p.Name, k, prefs[k]),
		}
	}
	return nil
}
