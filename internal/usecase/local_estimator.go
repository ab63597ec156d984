package usecase

import (
	"fmt"
	"math"
	"strings"

	"construction_estimator/internal/domain/entities"
)

const (
	baseCostPerPyeong     = 2_500_000.0
	baseDurationPerPyeong = 1.2

	noiseRestrictionMultiplier     = 1.10
	pumpTruckRestrictionMultiplier = 1.20
	urbanAreaMultiplier            = 1.05
	winterConstructionMultiplier   = 1.15
	urbanConditionMultiplier       = 1.2
)

var (
	materialMultipliers = map[entities.MaterialGrade]float64{
		entities.MaterialGradeBasic:   0.8,
		entities.MaterialGradeMid:     1.0,
		entities.MaterialGradeHigh:    1.3,
		entities.MaterialGradePremium: 1.6,
	}
	constructMultipliers = map[entities.ConstructionType]float64{
		entities.ConstructionTypeWood:               0.7,
		entities.ConstructionTypeSteel:              0.9,
		entities.ConstructionTypeReinforcedConcrete: 1.0,
	}
	accessMultipliers = map[entities.AccessCondition]float64{
		entities.AccessConditionGood:        0.95,
		entities.AccessConditionNormal:      1.0,
		entities.AccessConditionLimited:     1.15,
		entities.AccessConditionVeryLimited: 1.3,
	}
)

const defaultLocalModelVersion = "1.0.0"

// LocalEstimator is the on-device pricing model used when the prediction
// service cannot answer. Compute is pure and never fails: unrecognized enum
// values price at a neutral 1.0.
type LocalEstimator struct {
	modelVersion string
}

// NewLocalEstimator builds the estimator; an empty version reports 1.0.0.
func NewLocalEstimator(modelVersion string) *LocalEstimator {
	if modelVersion == "" {
		modelVersion = defaultLocalModelVersion
	}
	return &LocalEstimator{modelVersion: modelVersion}
}

// ModelInfo is the stub metadata attached to locally computed results.
func (e *LocalEstimator) ModelInfo() entities.ModelInfo {
	return entities.ModelInfo{
		Name:         "local calculator",
		Version:      e.modelVersion,
		Accuracy:     75.0,
		TrainingDate: "N/A",
	}
}

// Compute is pure: the same request always prices the same. Cost is truncated
// to whole won and saturates at math.MaxInt64.
func (e *LocalEstimator) Compute(req entities.EstimationRequest) entities.CostDurationEstimate {
	material, _ := req.MaterialGrade.Canonical()
	construct, _ := req.ConstructionType.Canonical()
	access, _ := req.AccessCondition.Canonical()

	materialValue := multiplierOr(materialMultipliers, material)
	constructValue := multiplierOr(constructMultipliers, construct)

	additional := 1.0
	additional *= multiplierOr(accessMultipliers, access)
	if req.NoiseRestriction {
		additional *= noiseRestrictionMultiplier
	}
	if req.PumpTruckRestriction {
		additional *= pumpTruckRestrictionMultiplier
	}
	if req.UrbanArea {
		additional *= urbanAreaMultiplier
	}
	if req.WinterConstruction {
		additional *= winterConstructionMultiplier
	}

	condition := 1.0
	if req.HasTag(entities.ConditionTagUrban) || req.HasTag(entities.LegacyConditionTagUrban) {
		condition = urbanConditionMultiplier
	}

	// Factor order is fixed; reordering changes the low float bits.
	size := float64(req.SizePyeong)
	cost := size * baseCostPerPyeong * materialValue * constructValue * condition * additional
	duration := size * baseDurationPerPyeong * materialValue * constructValue * condition * additional

	return entities.CostDurationEstimate{
		CostKRW:      saturatingInt64(cost),
		DurationDays: duration,
		Explanation:  localExplanation(req),
	}
}

// saturatingInt64 truncates f into [0, math.MaxInt64]. NaN maps to 0.
func saturatingInt64(f float64) int64 {
	switch {
	case !(f > 0):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	default:
		return int64(f)
	}
}

func multiplierOr[K comparable](table map[K]float64, key K) float64 {
	if v, ok := table[key]; ok {
		return v
	}
	return 1.0
}

func localExplanation(req entities.EstimationRequest) string {
	conditions := strings.Join(req.ConditionTags, ", ")
	if conditions == "" {
		conditions = "none"
	}
	return fmt.Sprintf(
		"Standard unit-price estimate (material: %s, construction: %s, access: %s, conditions: %s). "+
			"A more accurate estimate is available once the prediction service is reachable.",
		req.MaterialGrade, req.ConstructionType, req.AccessCondition, conditions,
	)
}
