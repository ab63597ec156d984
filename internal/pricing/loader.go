package pricing

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

//go:embed data/standard_prices.json
var bundledCatalog []byte

// itemsKey marks the item list inside a nested catalog section.
const itemsKey = "항목"

type rawLineItem struct {
	Code       string                                   `json:"공종코드"`
	Name       string                                   `json:"공종명칭"`
	Spec       string                                   `json:"규격"`
	Unit       string                                   `json:"단위"`
	UnitPrice  float64                                  `json:"단가"`
	LaborRatio json.RawMessage                          `json:"노무비율"`
	Factors    map[string]map[string]map[string]float64 `json:"보정계수"`
}

// LoadBundled parses the catalog compiled into the binary.
func LoadBundled() (*Table, error) {
	return Parse(bundledCatalog)
}

// Load reads a catalog file, or the bundled one when path is empty.
func Load(path string) (*Table, error) {
	if strings.TrimSpace(path) == "" {
		return LoadBundled()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pricing catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog. Supported layouts per top-level section:
//   - "section": [items]
//   - "section": {"항목": [items]}
//   - "section": {"sub": {"항목": [items]}}  (stored as "section - sub")
func Parse(data []byte) (*Table, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("decode pricing catalog: %w", err)
	}

	grouped := make(map[string][]LineItem)
	for section, raw := range sections {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 {
			continue
		}
		switch raw[0] {
		case '[':
			items, err := decodeItems(raw)
			if err != nil {
				return nil, fmt.Errorf("decode section %q: %w", section, err)
			}
			grouped[section] = items
		case '{':
			if err := decodeNestedSection(section, raw, grouped); err != nil {
				return nil, err
			}
		}
	}
	return NewTable(grouped), nil
}

func decodeNestedSection(section string, raw json.RawMessage, grouped map[string][]LineItem) error {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return fmt.Errorf("decode section %q: %w", section, err)
	}
	if list, ok := body[itemsKey]; ok {
		items, err := decodeItems(list)
		if err != nil {
			return fmt.Errorf("decode section %q: %w", section, err)
		}
		grouped[section] = items
	}
	for sub, subRaw := range body {
		if sub == itemsKey {
			continue
		}
		var subBody map[string]json.RawMessage
		if err := json.Unmarshal(subRaw, &subBody); err != nil {
			// Non-object siblings carry section metadata.
			continue
		}
		list, ok := subBody[itemsKey]
		if !ok {
			continue
		}
		items, err := decodeItems(list)
		if err != nil {
			return fmt.Errorf("decode section %q/%q: %w", section, sub, err)
		}
		grouped[section+" - "+sub] = items
	}
	return nil
}

func decodeItems(raw json.RawMessage) ([]LineItem, error) {
	var rawItems []rawLineItem
	if err := json.Unmarshal(raw, &rawItems); err != nil {
		return nil, err
	}
	items := make([]LineItem, 0, len(rawItems))
	for _, r := range rawItems {
		items = append(items, LineItem{
			Code:              strings.TrimSpace(r.Code),
			Name:              r.Name,
			Spec:              r.Spec,
			Unit:              r.Unit,
			UnitPrice:         int64(r.UnitPrice),
			LaborRatio:        laborRatioString(r.LaborRatio),
			CorrectionFactors: toCorrectionFactors(r.Factors),
		})
	}
	return items, nil
}

func laborRatioString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return string(raw)
}

func toCorrectionFactors(in map[string]map[string]map[string]float64) []CorrectionFactor {
	if len(in) == 0 {
		return nil
	}
	types := make([]string, 0, len(in))
	for t := range in {
		types = append(types, t)
	}
	sort.Strings(types)

	out := make([]CorrectionFactor, 0, len(in))
	for _, t := range types {
		cf := CorrectionFactor{Type: t}
		for label, factors := range in[t] {
			cf.Ranges = append(cf.Ranges, FactorRange{Label: label, Factors: factors})
		}
		out = append(out, cf)
	}
	return out
}
