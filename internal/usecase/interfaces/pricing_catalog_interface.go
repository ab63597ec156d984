package interfaces

import "construction_estimator/internal/pricing"

// IPricingCatalog is the read-only standard unit-price catalog.
type IPricingCatalog interface {
	Lookup(code string) (pricing.LineItem, bool)
	ItemsByCategory(category string) []pricing.LineItem
	AdjustedPrice(code string, parameters map[string]string) (float64, bool)
	SearchByName(name string) []pricing.LineItem
	Categories() []string
	TotalItemCount() int
}
