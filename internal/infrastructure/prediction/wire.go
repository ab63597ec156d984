package prediction

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"construction_estimator/internal/domain/entities"
)

const (
	ShapeNested = "nested"
	ShapeFlat   = "flat"

	projectTypeResidential = "residential"
	wireDateLayout         = "2006-01-02"
)

var errShapeMismatch = errors.New("response does not match shape")

// predictRequest is the flat request body the prediction service expects.
type predictRequest struct {
	StartDate            string   `json:"start_date"`
	Size                 int      `json:"size"`
	FloorCount           int      `json:"floor_count"`
	RoomCount            int      `json:"room_count"`
	BathroomCount        int      `json:"bathroom_count"`
	ConstructionType     string   `json:"construction_type"`
	MaterialGrade        string   `json:"material_grade"`
	SoilCondition        string   `json:"soil_condition"`
	ConditionTags        []string `json:"condition_tags"`
	AccessCondition      string   `json:"access_condition"`
	NoiseRestriction     bool     `json:"noise_restriction"`
	PumpTruckRestriction bool     `json:"pump_truck_restriction"`
	UrbanArea            bool     `json:"urban_area"`
	WinterConstruction   bool     `json:"winter_construction"`
	TotalRooms           int      `json:"total_rooms"`
	ProjectType          string   `json:"project_type"`
	Timestamp            float64  `json:"timestamp"`
}

func toPredictRequest(req entities.EstimationRequest, now time.Time) predictRequest {
	tags := req.ConditionTags
	if tags == nil {
		tags = []string{}
	}
	return predictRequest{
		StartDate:            req.StartDate.Format(wireDateLayout),
		Size:                 req.SizePyeong,
		FloorCount:           req.FloorCount,
		RoomCount:            req.RoomCount,
		BathroomCount:        req.BathroomCount,
		ConstructionType:     string(req.ConstructionType),
		MaterialGrade:        string(req.MaterialGrade),
		SoilCondition:        string(req.SoilCondition),
		ConditionTags:        tags,
		AccessCondition:      string(req.AccessCondition),
		NoiseRestriction:     req.NoiseRestriction,
		PumpTruckRestriction: req.PumpTruckRestriction,
		UrbanArea:            req.UrbanArea,
		WinterConstruction:   req.WinterConstruction,
		TotalRooms:           req.TotalRooms(),
		ProjectType:          projectTypeResidential,
		Timestamp:            float64(now.UnixNano()) / float64(time.Second),
	}
}

type wireInterval struct {
	Lower *float64 `json:"lower"`
	Upper *float64 `json:"upper"`
}

// maxWireDurationDays keeps rounded durations well inside int on every platform.
const maxWireDurationDays = math.MaxInt32

// toEntity returns nil for a missing interval and an error for bounds that do
// not fit int64.
func (w *wireInterval) toEntity() (*entities.ConfidenceInterval, error) {
	if w == nil || w.Lower == nil || w.Upper == nil {
		return nil, nil
	}
	if !fitsInt64(*w.Lower) || !fitsInt64(*w.Upper) {
		return nil, fmt.Errorf("interval out of range [%v, %v]", *w.Lower, *w.Upper)
	}
	return &entities.ConfidenceInterval{Lower: int64(*w.Lower), Upper: int64(*w.Upper)}, nil
}

func fitsInt64(f float64) bool {
	return !math.IsNaN(f) && f > math.MinInt64 && f < math.MaxInt64
}

type wireModelInfo struct {
	ModelName    string  `json:"model_name"`
	Version      string  `json:"version"`
	Accuracy     float64 `json:"accuracy"`
	TrainingDate string  `json:"training_date"`
}

// nestedResponse: {predictions:{total_cost_krw, total_duration_days, ...}, model_info?}
type nestedResponse struct {
	Predictions *struct {
		TotalCostKRW               *float64      `json:"total_cost_krw"`
		TotalDurationDays          *float64      `json:"total_duration_days"`
		CostConfidenceInterval     *wireInterval `json:"cost_confidence_interval"`
		DurationConfidenceInterval *wireInterval `json:"duration_confidence_interval"`
	} `json:"predictions"`
	ModelInfo *wireModelInfo `json:"model_info"`
}

// flatResponse: {cost_prediction, duration_prediction, cost_confidence, ...}
type flatResponse struct {
	CostPrediction      *float64      `json:"cost_prediction"`
	DurationPrediction  *float64      `json:"duration_prediction"`
	CostConfidence      *wireInterval `json:"cost_confidence"`
	DurationConfidence  *wireInterval `json:"duration_confidence"`
	PredictionTimestamp string        `json:"prediction_timestamp"`
}

type responseParser struct {
	modelVersion string
}

// parse normalizes a 200 response body. A schema_version field selects the
// shape; without one the flat shape is tried first, then the nested one.
func (p responseParser) parse(body []byte) (entities.RemoteEstimate, error) {
	var envelope struct {
		SchemaVersion any `json:"schema_version"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return entities.RemoteEstimate{}, fmt.Errorf("decode response: %w", err)
	}

	if envelope.SchemaVersion != nil {
		switch strings.ToLower(fmt.Sprint(envelope.SchemaVersion)) {
		case ShapeNested, "a":
			return p.parseNested(body)
		case ShapeFlat, "b":
			return p.parseFlat(body)
		}
	}

	flat, flatErr := p.parseFlat(body)
	if flatErr == nil {
		return flat, nil
	}
	nested, nestedErr := p.parseNested(body)
	if nestedErr == nil {
		return nested, nil
	}
	return entities.RemoteEstimate{}, fmt.Errorf("flat: %v; nested: %w", flatErr, nestedErr)
}

func (p responseParser) parseFlat(body []byte) (entities.RemoteEstimate, error) {
	var r flatResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return entities.RemoteEstimate{}, err
	}
	if r.CostPrediction == nil || r.DurationPrediction == nil {
		return entities.RemoteEstimate{}, fmt.Errorf("%w %s", errShapeMismatch, ShapeFlat)
	}
	cost, duration, err := normalizeTotals(*r.CostPrediction, *r.DurationPrediction)
	if err != nil {
		return entities.RemoteEstimate{}, err
	}
	costCI, err := r.CostConfidence.toEntity()
	if err != nil {
		return entities.RemoteEstimate{}, fmt.Errorf("cost_confidence: %w", err)
	}
	durationCI, err := r.DurationConfidence.toEntity()
	if err != nil {
		return entities.RemoteEstimate{}, fmt.Errorf("duration_confidence: %w", err)
	}

	return entities.RemoteEstimate{
		TotalCostKRW:      cost,
		TotalDurationDays: duration,
		CostInterval:      costCI,
		DurationInterval:  durationCI,
		ModelInfo: &entities.ModelInfo{
			Name:         "prediction service model",
			Version:      p.modelVersion,
			Accuracy:     85.0,
			TrainingDate: r.PredictionTimestamp,
		},
		Shape:               ShapeFlat,
		PredictionTimestamp: r.PredictionTimestamp,
	}, nil
}

func (p responseParser) parseNested(body []byte) (entities.RemoteEstimate, error) {
	var r nestedResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return entities.RemoteEstimate{}, err
	}
	if r.Predictions == nil || r.Predictions.TotalCostKRW == nil || r.Predictions.TotalDurationDays == nil {
		return entities.RemoteEstimate{}, fmt.Errorf("%w %s", errShapeMismatch, ShapeNested)
	}
	cost, duration, err := normalizeTotals(*r.Predictions.TotalCostKRW, *r.Predictions.TotalDurationDays)
	if err != nil {
		return entities.RemoteEstimate{}, err
	}
	costCI, err := r.Predictions.CostConfidenceInterval.toEntity()
	if err != nil {
		return entities.RemoteEstimate{}, fmt.Errorf("cost_confidence_interval: %w", err)
	}
	durationCI, err := r.Predictions.DurationConfidenceInterval.toEntity()
	if err != nil {
		return entities.RemoteEstimate{}, fmt.Errorf("duration_confidence_interval: %w", err)
	}

	out := entities.RemoteEstimate{
		TotalCostKRW:      cost,
		TotalDurationDays: duration,
		CostInterval:      costCI,
		DurationInterval:  durationCI,
		Shape:             ShapeNested,
	}
	if r.ModelInfo != nil {
		out.ModelInfo = &entities.ModelInfo{
			Name:         r.ModelInfo.ModelName,
			Version:      r.ModelInfo.Version,
			Accuracy:     r.ModelInfo.Accuracy,
			TrainingDate: r.ModelInfo.TrainingDate,
		}
	}
	return out, nil
}

// normalizeTotals truncates cost and rounds duration to whole days.
func normalizeTotals(cost, duration float64) (int64, int, error) {
	if math.IsNaN(cost) || cost < 0 || cost >= math.MaxInt64 {
		return 0, 0, fmt.Errorf("invalid cost %v", cost)
	}
	if math.IsNaN(duration) || duration <= 0 || duration >= maxWireDurationDays {
		return 0, 0, fmt.Errorf("invalid duration %v", duration)
	}
	days := int(math.Round(duration))
	if days < 1 {
		days = 1
	}
	return int64(cost), days, nil
}
