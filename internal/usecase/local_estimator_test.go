package usecase

import (
	"math"
	"testing"
	"time"

	"construction_estimator/internal/domain/entities"
)

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func baseRequest() entities.EstimationRequest {
	return entities.EstimationRequest{
		StartDate:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		SizePyeong:       34,
		FloorCount:       2,
		RoomCount:        3,
		BathroomCount:    2,
		ConstructionType: entities.ConstructionTypeReinforcedConcrete,
		MaterialGrade:    entities.MaterialGradeMid,
		SoilCondition:    entities.SoilConditionNormal,
		AccessCondition:  entities.AccessConditionNormal,
	}
}

func TestLocalEstimator_Compute(t *testing.T) {
	est := NewLocalEstimator("")

	t.Run("baseline reinforced concrete mid grade", func(t *testing.T) {
		got := est.Compute(baseRequest())
		if got.CostKRW != 85_000_000 {
			t.Fatalf("expected cost 85000000, got %d", got.CostKRW)
		}
		if !nearlyEqual(got.DurationDays, 40.8) {
			t.Fatalf("expected duration 40.8, got %v", got.DurationDays)
		}
	})

	t.Run("urban area flag and urban tag", func(t *testing.T) {
		req := baseRequest()
		req.UrbanArea = true
		req.ConditionTags = []string{entities.ConditionTagUrban}

		got := est.Compute(req)
		if got.CostKRW != 107_100_000 {
			t.Fatalf("expected cost 107100000, got %d", got.CostKRW)
		}
		if !nearlyEqual(got.DurationDays, 51.408) {
			t.Fatalf("expected duration 51.408, got %v", got.DurationDays)
		}
	})

	t.Run("premium wood good access", func(t *testing.T) {
		req := baseRequest()
		req.SizePyeong = 20
		req.MaterialGrade = entities.MaterialGradePremium
		req.ConstructionType = entities.ConstructionTypeWood
		req.AccessCondition = entities.AccessConditionGood

		got := est.Compute(req)
		if got.CostKRW != 53_200_000 {
			t.Fatalf("expected cost 53200000, got %d", got.CostKRW)
		}
		if !nearlyEqual(got.DurationDays, 25.536) {
			t.Fatalf("expected duration 25.536, got %v", got.DurationDays)
		}
	})

	t.Run("unrecognized construction type prices neutral", func(t *testing.T) {
		req := baseRequest()
		req.ConstructionType = "Timber-frame"

		got := est.Compute(req)
		if got.CostKRW != 85_000_000 {
			t.Fatalf("expected cost 85000000, got %d", got.CostKRW)
		}
	})

	t.Run("korean labels resolve to the same multipliers", func(t *testing.T) {
		req := baseRequest()
		req.SizePyeong = 20
		req.MaterialGrade = "프리미엄"
		req.ConstructionType = "목구조"
		req.AccessCondition = "양호"

		got := est.Compute(req)
		if got.CostKRW != 53_200_000 {
			t.Fatalf("expected cost 53200000, got %d", got.CostKRW)
		}
	})

	t.Run("legacy urban tag", func(t *testing.T) {
		req := baseRequest()
		req.ConditionTags = []string{entities.LegacyConditionTagUrban}

		got := est.Compute(req)
		if got.CostKRW != 102_000_000 {
			t.Fatalf("expected cost 102000000, got %d", got.CostKRW)
		}
	})

	t.Run("every flag combined", func(t *testing.T) {
		req := baseRequest()
		req.SizePyeong = 10
		req.MaterialGrade = entities.MaterialGradeHigh
		req.ConstructionType = entities.ConstructionTypeSteel
		req.AccessCondition = entities.AccessConditionVeryLimited
		req.NoiseRestriction = true
		req.PumpTruckRestriction = true
		req.UrbanArea = true
		req.WinterConstruction = true
		req.ConditionTags = []string{entities.ConditionTagUrban}

		got := est.Compute(req)
		if got.CostKRW != 72_729_657 {
			t.Fatalf("expected cost 72729657, got %d", got.CostKRW)
		}
		if !nearlyEqual(got.DurationDays, 34.91023536) {
			t.Fatalf("expected duration 34.91023536, got %v", got.DurationDays)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		req := baseRequest()
		req.NoiseRestriction = true
		first := est.Compute(req)
		for i := 0; i < 10; i++ {
			if got := est.Compute(req); got != first {
				t.Fatalf("expected identical output, got %+v and %+v", first, got)
			}
		}
	})

	t.Run("explanation lists conditions", func(t *testing.T) {
		got := est.Compute(baseRequest())
		if got.Explanation == "" {
			t.Fatalf("expected explanation")
		}
		req := baseRequest()
		req.ConditionTags = []string{"urban", "weak-soil"}
		if got2 := est.Compute(req); got2.Explanation == got.Explanation {
			t.Fatalf("expected tags to change the explanation")
		}
	})
}

func TestLocalEstimator_ComputeSaturatesCost(t *testing.T) {
	req := baseRequest()
	req.SizePyeong = 4_000_000_000_000
	req.MaterialGrade = entities.MaterialGradePremium
	req.AccessCondition = entities.AccessConditionVeryLimited

	got := NewLocalEstimator("").Compute(req)
	if got.CostKRW != math.MaxInt64 {
		t.Fatalf("expected cost to saturate at MaxInt64, got %d", got.CostKRW)
	}
}

func TestSaturatingInt64(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{in: -5, want: 0},
		{in: 0, want: 0},
		{in: math.NaN(), want: 0},
		{in: 12.9, want: 12},
		{in: 1e19, want: math.MaxInt64},
		{in: math.Inf(1), want: math.MaxInt64},
	}
	for _, tc := range cases {
		if got := saturatingInt64(tc.in); got != tc.want {
			t.Fatalf("saturatingInt64(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLocalEstimator_ModelInfo(t *testing.T) {
	if got := NewLocalEstimator("").ModelInfo(); got.Version != "1.0.0" || got.Accuracy != 75 || got.TrainingDate != "N/A" {
		t.Fatalf("unexpected default model info: %+v", got)
	}
	if got := NewLocalEstimator("2.1.0").ModelInfo(); got.Version != "2.1.0" {
		t.Fatalf("expected configured version, got %q", got.Version)
	}
}
