package entities

import (
	"strings"
	"time"
)

// TriState is a yes/no answer that may also be unknown.
type TriState string

const (
	TriStateYes     TriState = "yes"
	TriStateNo      TriState = "no"
	TriStateUnknown TriState = "unknown"
)

// ParseTriState accepts yes/no/unknown plus true/false and the legacy labels.
// Anything unrecognized is Unknown.
func ParseTriState(v string) TriState {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "y", "true", "1", "예":
		return TriStateYes
	case "no", "n", "false", "0", "아니오":
		return TriStateNo
	default:
		return TriStateUnknown
	}
}

// IsYes reports an explicit yes. Unknown is never treated as yes.
func (t TriState) IsYes() bool {
	return t == TriStateYes
}

// HouseConfiguration is the questionnaire answer set collected before an estimate.
//
// Flag rule:
//   - a condition tag is derived only from an explicit Yes
//   - Unknown and No both become false in the EstimationRequest
type HouseConfiguration struct {
	SizePyeong           int              `json:"size"`
	FloorCount           int              `json:"floor_count"`
	RoomCount            int              `json:"room_count"`
	BathroomCount        int              `json:"bathroom_count"`
	ConstructionType     ConstructionType `json:"construction_type"`
	MaterialGrade        MaterialGrade    `json:"material_grade"`
	SoilCondition        SoilCondition    `json:"soil_condition"`
	AccessCondition      AccessCondition  `json:"access_condition"`
	NoiseRestriction     TriState         `json:"noise_restriction"`
	PumpTruckRestriction TriState         `json:"pump_truck_restriction"`
	UrbanArea            TriState         `json:"urban_area"`
	WinterConstruction   TriState         `json:"winter_construction"`
}

func (h HouseConfiguration) ConditionTags() []string {
	tags := []string{}
	if h.UrbanArea.IsYes() {
		tags = append(tags, ConditionTagUrban)
	}
	if h.PumpTruckRestriction.IsYes() {
		tags = append(tags, ConditionTagPumpRestricted)
	}
	if h.NoiseRestriction.IsYes() {
		tags = append(tags, ConditionTagNoiseRestricted)
	}
	if soil, _ := h.SoilCondition.Canonical(); soil == SoilConditionWeak {
		tags = append(tags, ConditionTagWeakSoil)
	}
	if access, _ := h.AccessCondition.Canonical(); access == AccessConditionGood {
		tags = append(tags, ConditionTagGoodAccess)
	}
	return tags
}

func (h HouseConfiguration) ToEstimationRequest(startDate time.Time) EstimationRequest {
	return EstimationRequest{
		StartDate:            startDate,
		SizePyeong:           h.SizePyeong,
		FloorCount:           h.FloorCount,
		RoomCount:            h.RoomCount,
		BathroomCount:        h.BathroomCount,
		ConstructionType:     h.ConstructionType,
		MaterialGrade:        h.MaterialGrade,
		SoilCondition:        h.SoilCondition,
		AccessCondition:      h.AccessCondition,
		NoiseRestriction:     h.NoiseRestriction.IsYes(),
		PumpTruckRestriction: h.PumpTruckRestriction.IsYes(),
		UrbanArea:            h.UrbanArea.IsYes(),
		WinterConstruction:   h.WinterConstruction.IsYes(),
		ConditionTags:        h.ConditionTags(),
	}
}
