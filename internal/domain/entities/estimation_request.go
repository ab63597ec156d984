package entities

import (
	"strings"
	"time"
)

// ConstructionType is an open string: values outside the known set are carried
// as-is and priced with a neutral multiplier.
type ConstructionType string

const (
	ConstructionTypeReinforcedConcrete ConstructionType = "RC"
	ConstructionTypeWood               ConstructionType = "Wood"
	ConstructionTypeSteel              ConstructionType = "Steel"
)

type MaterialGrade string

const (
	MaterialGradeBasic   MaterialGrade = "Basic"
	MaterialGradeMid     MaterialGrade = "Mid"
	MaterialGradeHigh    MaterialGrade = "High"
	MaterialGradePremium MaterialGrade = "Premium"
)

type SoilCondition string

const (
	SoilConditionNormal SoilCondition = "Normal"
	SoilConditionWeak   SoilCondition = "Weak"
	SoilConditionGood   SoilCondition = "Good"
)

type AccessCondition string

const (
	AccessConditionGood        AccessCondition = "Good"
	AccessConditionNormal      AccessCondition = "Normal"
	AccessConditionLimited     AccessCondition = "Limited"
	AccessConditionVeryLimited AccessCondition = "VeryLimited"
)

// Legacy labels are the Korean values stored by earlier app revisions.
var (
	constructionTypeAliases = map[string]ConstructionType{
		"rc":                  ConstructionTypeReinforcedConcrete,
		"reinforcedconcrete":  ConstructionTypeReinforcedConcrete,
		"reinforced_concrete": ConstructionTypeReinforcedConcrete,
		"철근콘크리트":              ConstructionTypeReinforcedConcrete,
		"wood":                ConstructionTypeWood,
		"목구조":                 ConstructionTypeWood,
		"steel":               ConstructionTypeSteel,
		"철골":                  ConstructionTypeSteel,
	}
	materialGradeAliases = map[string]MaterialGrade{
		"basic":   MaterialGradeBasic,
		"기본":      MaterialGradeBasic,
		"mid":     MaterialGradeMid,
		"중급":      MaterialGradeMid,
		"high":    MaterialGradeHigh,
		"고급":      MaterialGradeHigh,
		"premium": MaterialGradePremium,
		"프리미엄":    MaterialGradePremium,
	}
	soilConditionAliases = map[string]SoilCondition{
		"normal": SoilConditionNormal,
		"보통":     SoilConditionNormal,
		"weak":   SoilConditionWeak,
		"연약":     SoilConditionWeak,
		"good":   SoilConditionGood,
		"양호":     SoilConditionGood,
	}
	accessConditionAliases = map[string]AccessCondition{
		"good":         AccessConditionGood,
		"양호":           AccessConditionGood,
		"normal":       AccessConditionNormal,
		"보통":           AccessConditionNormal,
		"limited":      AccessConditionLimited,
		"제한적":          AccessConditionLimited,
		"verylimited":  AccessConditionVeryLimited,
		"very_limited": AccessConditionVeryLimited,
		"매우제한적":        AccessConditionVeryLimited,
	}
)

func aliasKey(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// Canonical returns the canonical constant for a known alias, or the trimmed
// input with ok=false.
func (t ConstructionType) Canonical() (ConstructionType, bool) {
	if c, ok := constructionTypeAliases[aliasKey(string(t))]; ok {
		return c, true
	}
	return ConstructionType(strings.TrimSpace(string(t))), false
}

func (g MaterialGrade) Canonical() (MaterialGrade, bool) {
	if c, ok := materialGradeAliases[aliasKey(string(g))]; ok {
		return c, true
	}
	return MaterialGrade(strings.TrimSpace(string(g))), false
}

func (s SoilCondition) Canonical() (SoilCondition, bool) {
	if c, ok := soilConditionAliases[aliasKey(string(s))]; ok {
		return c, true
	}
	return SoilCondition(strings.TrimSpace(string(s))), false
}

func (a AccessCondition) Canonical() (AccessCondition, bool) {
	if c, ok := accessConditionAliases[aliasKey(string(a))]; ok {
		return c, true
	}
	return AccessCondition(strings.TrimSpace(string(a))), false
}

// Condition tags derived from site-condition answers.
const (
	ConditionTagUrban           = "urban"
	ConditionTagPumpRestricted  = "pump-restricted"
	ConditionTagNoiseRestricted = "noise-restricted"
	ConditionTagWeakSoil        = "weak-soil"
	ConditionTagGoodAccess      = "good-access"

	// LegacyConditionTagUrban is the urban label used by stored records.
	LegacyConditionTagUrban = "도심"
)

// MaxSizePyeong bounds the project size accepted for estimation
// (about 330,000 m2), keeping every priced total well inside int64.
const MaxSizePyeong = 100_000

// EstimationRequest is the normalized, immutable input of one estimate.
type EstimationRequest struct {
	StartDate            time.Time        `json:"start_date"`
	SizePyeong           int              `json:"size"`
	FloorCount           int              `json:"floor_count"`
	RoomCount            int              `json:"room_count"`
	BathroomCount        int              `json:"bathroom_count"`
	ConstructionType     ConstructionType `json:"construction_type"`
	MaterialGrade        MaterialGrade    `json:"material_grade"`
	SoilCondition        SoilCondition    `json:"soil_condition"`
	AccessCondition      AccessCondition  `json:"access_condition"`
	NoiseRestriction     bool             `json:"noise_restriction"`
	PumpTruckRestriction bool             `json:"pump_truck_restriction"`
	UrbanArea            bool             `json:"urban_area"`
	WinterConstruction   bool             `json:"winter_construction"`
	ConditionTags        []string         `json:"condition_tags"`
}

func (r EstimationRequest) HasTag(tag string) bool {
	for _, t := range r.ConditionTags {
		if t == tag {
			return true
		}
	}
	return false
}

func (r EstimationRequest) TotalRooms() int {
	return r.RoomCount + r.BathroomCount
}
