package response

import "construction_estimator/internal/pricing"

type LineItemResponse struct {
	Code              string                     `json:"code"`
	Name              string                     `json:"name"`
	Spec              string                     `json:"spec,omitempty"`
	Unit              string                     `json:"unit,omitempty"`
	UnitPrice         int64                      `json:"unit_price"`
	LaborRatio        string                     `json:"labor_ratio,omitempty"`
	Category          string                     `json:"category"`
	CorrectionFactors []pricing.CorrectionFactor `json:"correction_factors,omitempty"`
}

type LineItemListResponse struct {
	Items []LineItemResponse `json:"items"`
	Count int                `json:"count"`
}

type CategoriesResponse struct {
	Categories     []string `json:"categories"`
	TotalItemCount int      `json:"total_item_count"`
}

type AdjustedPriceResponse struct {
	Code          string            `json:"code"`
	UnitPrice     int64             `json:"unit_price"`
	AdjustedPrice float64           `json:"adjusted_price"`
	Parameters    map[string]string `json:"parameters"`
}

func FromLineItem(it pricing.LineItem) LineItemResponse {
	return LineItemResponse{
		Code:              it.Code,
		Name:              it.Name,
		Spec:              it.Spec,
		Unit:              it.Unit,
		UnitPrice:         it.UnitPrice,
		LaborRatio:        it.LaborRatio,
		Category:          it.Category,
		CorrectionFactors: it.CorrectionFactors,
	}
}

func FromLineItems(items []pricing.LineItem) LineItemListResponse {
	out := LineItemListResponse{Items: make([]LineItemResponse, 0, len(items)), Count: len(items)}
	for _, it := range items {
		out.Items = append(out.Items, FromLineItem(it))
	}
	return out
}
