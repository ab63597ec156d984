package pricing

import (
	"sort"
	"strings"
)

const (
	// PriceFactorKey selects the unit-price multiplier within a factor range.
	PriceFactorKey = "단가"
	// LaborFactorKey selects the labor multiplier; it does not affect AdjustedPrice.
	LaborFactorKey = "노무비"
)

// LineItem is one standard unit-price entry of the catalog.
type LineItem struct {
	Code              string             `json:"code"`
	Name              string             `json:"name"`
	Spec              string             `json:"spec,omitempty"`
	Unit              string             `json:"unit,omitempty"`
	UnitPrice         int64              `json:"unit_price"`
	LaborRatio        string             `json:"labor_ratio,omitempty"`
	Category          string             `json:"category"`
	CorrectionFactors []CorrectionFactor `json:"correction_factors,omitempty"`
}

// CorrectionFactor groups the ranges of one condition type (e.g. soil state).
type CorrectionFactor struct {
	Type   string        `json:"type"`
	Ranges []FactorRange `json:"ranges"`
}

type FactorRange struct {
	Label   string             `json:"label"`
	Factors map[string]float64 `json:"factors"`
}

// Table is the read-only catalog. It is safe for concurrent use once built.
type Table struct {
	categories []string
	byCategory map[string][]LineItem
	byCode     map[string]LineItem
	total      int
}

// NewTable builds a table from items grouped by category. Categories are
// ordered by name; factor types and ranges are ordered by label so that
// AdjustedPrice composes multipliers in a stable order.
func NewTable(itemsByCategory map[string][]LineItem) *Table {
	t := &Table{
		byCategory: make(map[string][]LineItem, len(itemsByCategory)),
		byCode:     make(map[string]LineItem),
	}
	for category := range itemsByCategory {
		t.categories = append(t.categories, category)
	}
	sort.Strings(t.categories)

	for _, category := range t.categories {
		items := make([]LineItem, 0, len(itemsByCategory[category]))
		for _, it := range itemsByCategory[category] {
			it.Category = category
			it.CorrectionFactors = sortedFactors(it.CorrectionFactors)
			items = append(items, it)
			// First category wins on duplicated codes.
			if _, exists := t.byCode[it.Code]; !exists {
				t.byCode[it.Code] = it
			}
		}
		t.byCategory[category] = items
		t.total += len(items)
	}
	return t
}

func (t *Table) Lookup(code string) (LineItem, bool) {
	it, ok := t.byCode[strings.TrimSpace(code)]
	return it, ok
}

// ItemsByCategory returns a copy of the category items in catalog order.
// Unknown categories yield an empty slice.
func (t *Table) ItemsByCategory(category string) []LineItem {
	items := t.byCategory[category]
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

// AdjustedPrice multiplies the base unit price by every matching correction
// factor. A range matches a parameter when either string contains the other;
// empty parameter values never match.
func (t *Table) AdjustedPrice(code string, parameters map[string]string) (float64, bool) {
	it, ok := t.Lookup(code)
	if !ok {
		return 0, false
	}

	price := float64(it.UnitPrice)
	for _, cf := range it.CorrectionFactors {
		value, ok := parameters[cf.Type]
		if !ok {
			continue
		}
		for _, r := range cf.Ranges {
			if !rangeMatches(r.Label, value) {
				continue
			}
			if f, ok := r.Factors[PriceFactorKey]; ok {
				price *= f
			}
		}
	}
	return price, true
}

func (t *Table) SearchByName(name string) []LineItem {
	name = strings.TrimSpace(name)
	out := []LineItem{}
	if name == "" {
		return out
	}
	for _, category := range t.categories {
		for _, it := range t.byCategory[category] {
			if strings.Contains(it.Name, name) {
				out = append(out, it)
			}
		}
	}
	return out
}

func (t *Table) Categories() []string {
	out := make([]string, len(t.categories))
	copy(out, t.categories)
	return out
}

func (t *Table) TotalItemCount() int {
	return t.total
}

func rangeMatches(label, value string) bool {
	if value == "" || label == "" {
		return false
	}
	return strings.Contains(label, value) || strings.Contains(value, label)
}

func sortedFactors(in []CorrectionFactor) []CorrectionFactor {
	if len(in) == 0 {
		return nil
	}
	out := make([]CorrectionFactor, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	for i := range out {
		ranges := make([]FactorRange, len(out[i].Ranges))
		copy(ranges, out[i].Ranges)
		sort.Slice(ranges, func(a, b int) bool { return ranges[a].Label < ranges[b].Label })
		out[i].Ranges = ranges
	}
	return out
}
