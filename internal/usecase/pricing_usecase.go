package usecase

import (
	"errors"
	"strings"

	"construction_estimator/internal/pricing"
	"construction_estimator/internal/usecase/interfaces"
)

var (
	ErrPriceItemNotFound = errors.New("price item not found")
	ErrCategoryNotFound  = errors.New("price category not found")
)

// IPricingUseCase serves the standard unit-price catalog.
type IPricingUseCase interface {
	GetItem(code string) (pricing.LineItem, error)
	ListItems(category, name string) ([]pricing.LineItem, error)
	Categories() []string
	TotalItemCount() int
	AdjustedPrice(code string, parameters map[string]string) (pricing.LineItem, float64, error)
}

type PricingUseCase struct {
	catalog interfaces.IPricingCatalog
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(catalog interfaces.IPricingCatalog) *PricingUseCase {
	return &PricingUseCase{catalog: catalog}
}

func (u *PricingUseCase) GetItem(code string) (pricing.LineItem, error) {
	item, ok := u.catalog.Lookup(code)
	if !ok {
		return pricing.LineItem{}, ErrPriceItemNotFound
	}
	return item, nil
}

// ListItems filters by category and/or name substring. With neither filter
// it returns every item, categories in sorted order.
func (u *PricingUseCase) ListItems(category, name string) ([]pricing.LineItem, error) {
	category = strings.TrimSpace(category)
	name = strings.TrimSpace(name)

	var items []pricing.LineItem
	switch {
	case category != "":
		if !u.hasCategory(category) {
			return nil, ErrCategoryNotFound
		}
		items = u.catalog.ItemsByCategory(category)
	case name != "":
		return u.catalog.SearchByName(name), nil
	default:
		for _, c := range u.catalog.Categories() {
			items = append(items, u.catalog.ItemsByCategory(c)...)
		}
		return items, nil
	}

	if name == "" {
		return items, nil
	}
	filtered := make([]pricing.LineItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(it.Name, name) {
			filtered = append(filtered, it)
		}
	}
	return filtered, nil
}

func (u *PricingUseCase) Categories() []string {
	return u.catalog.Categories()
}

func (u *PricingUseCase) TotalItemCount() int {
	return u.catalog.TotalItemCount()
}

func (u *PricingUseCase) AdjustedPrice(code string, parameters map[string]string) (pricing.LineItem, float64, error) {
	item, ok := u.catalog.Lookup(code)
	if !ok {
		return pricing.LineItem{}, 0, ErrPriceItemNotFound
	}
	price, ok := u.catalog.AdjustedPrice(code, parameters)
	if !ok {
		return pricing.LineItem{}, 0, ErrPriceItemNotFound
	}
	return item, price, nil
}

func (u *PricingUseCase) hasCategory(category string) bool {
	for _, c := range u.catalog.Categories() {
		if c == category {
			return true
		}
	}
	return false
}
