package response

import (
	"time"

	"construction_estimator/internal/domain/entities"
)

type IntervalResponse struct {
	Lower int64 `json:"lower"`
	Upper int64 `json:"upper"`
}

type ModelInfoResponse struct {
	ModelName    string  `json:"model_name"`
	Version      string  `json:"version"`
	Accuracy     float64 `json:"accuracy"`
	TrainingDate string  `json:"training_date"`
}

type InputResponse struct {
	StartDate            string   `json:"start_date"`
	Size                 int      `json:"size"`
	FloorCount           int      `json:"floor_count"`
	RoomCount            int      `json:"room_count"`
	BathroomCount        int      `json:"bathroom_count"`
	TotalRooms           int      `json:"total_rooms"`
	ConstructionType     string   `json:"construction_type"`
	MaterialGrade        string   `json:"material_grade"`
	SoilCondition        string   `json:"soil_condition"`
	AccessCondition      string   `json:"access_condition"`
	NoiseRestriction     bool     `json:"noise_restriction"`
	PumpTruckRestriction bool     `json:"pump_truck_restriction"`
	UrbanArea            bool     `json:"urban_area"`
	WinterConstruction   bool     `json:"winter_construction"`
	ConditionTags        []string `json:"condition_tags"`
}

type EstimationResponse struct {
	TotalCostKRW               int64              `json:"total_cost_krw"`
	TotalDurationDays          int                `json:"total_duration_days"`
	CostConfidenceInterval     IntervalResponse   `json:"cost_confidence_interval"`
	DurationConfidenceInterval IntervalResponse   `json:"duration_confidence_interval"`
	Source                     string             `json:"source"`
	ModelInfo                  *ModelInfoResponse `json:"model_info,omitempty"`
	Input                      InputResponse      `json:"input_features"`
	Explanation                string             `json:"explanation,omitempty"`
	Message                    string             `json:"message"`
	FallbackReason             string             `json:"fallback_reason,omitempty"`
}

// UserEstimationResponse is returned when an estimate is also saved to the
// user's history. Saved is false when the estimate succeeded but storing it did not.
type UserEstimationResponse struct {
	Estimation         EstimationResponse `json:"estimation"`
	Saved              bool               `json:"saved"`
	HouseRecordID      string             `json:"house_record_id,omitempty"`
	EstimationRecordID string             `json:"estimation_record_id,omitempty"`
}

func FromEstimationResult(r entities.EstimationResult) EstimationResponse {
	out := EstimationResponse{
		TotalCostKRW:               r.TotalCostKRW,
		TotalDurationDays:          r.TotalDurationDays,
		CostConfidenceInterval:     IntervalResponse(r.CostConfidenceInterval),
		DurationConfidenceInterval: IntervalResponse(r.DurationConfidenceInterval),
		Source:                     string(r.Source),
		Input:                      fromEstimationRequest(r.InputEchoed),
		Explanation:                r.Explanation,
		Message:                    r.Message,
		FallbackReason:             string(r.FallbackReason),
	}
	if r.ModelInfo != nil {
		out.ModelInfo = &ModelInfoResponse{
			ModelName:    r.ModelInfo.Name,
			Version:      r.ModelInfo.Version,
			Accuracy:     r.ModelInfo.Accuracy,
			TrainingDate: r.ModelInfo.TrainingDate,
		}
	}
	return out
}

func fromEstimationRequest(r entities.EstimationRequest) InputResponse {
	tags := r.ConditionTags
	if tags == nil {
		tags = []string{}
	}
	startDate := ""
	if !r.StartDate.IsZero() {
		startDate = r.StartDate.Format("2006-01-02")
	}
	return InputResponse{
		StartDate:            startDate,
		Size:                 r.SizePyeong,
		FloorCount:           r.FloorCount,
		RoomCount:            r.RoomCount,
		BathroomCount:        r.BathroomCount,
		TotalRooms:           r.TotalRooms(),
		ConstructionType:     string(r.ConstructionType),
		MaterialGrade:        string(r.MaterialGrade),
		SoilCondition:        string(r.SoilCondition),
		AccessCondition:      string(r.AccessCondition),
		NoiseRestriction:     r.NoiseRestriction,
		PumpTruckRestriction: r.PumpTruckRestriction,
		UrbanArea:            r.UrbanArea,
		WinterConstruction:   r.WinterConstruction,
		ConditionTags:        tags,
	}
}

type HouseRecordResponse struct {
	ID        string                      `json:"id"`
	CreatedAt time.Time                   `json:"created_at"`
	House     entities.HouseConfiguration `json:"house"`
}

type EstimationRecordResponse struct {
	ID         string             `json:"id"`
	CreatedAt  time.Time          `json:"created_at"`
	Estimation EstimationResponse `json:"estimation"`
}

type HistoryResponse struct {
	UserID         string                     `json:"user_id"`
	HouseData      []HouseRecordResponse      `json:"house_data"`
	EstimationData []EstimationRecordResponse `json:"estimation_data"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

func FromUserHistory(h entities.UserHistory) HistoryResponse {
	out := HistoryResponse{
		UserID:         h.UserID,
		HouseData:      make([]HouseRecordResponse, 0, len(h.HouseData)),
		EstimationData: make([]EstimationRecordResponse, 0, len(h.EstimationData)),
		UpdatedAt:      h.UpdatedAt,
	}
	for _, rec := range h.HouseData {
		out.HouseData = append(out.HouseData, HouseRecordResponse{ID: rec.ID, CreatedAt: rec.CreatedAt, House: rec.House})
	}
	for _, rec := range h.EstimationData {
		out.EstimationData = append(out.EstimationData, EstimationRecordResponse{
			ID:         rec.ID,
			CreatedAt:  rec.CreatedAt,
			Estimation: FromEstimationResult(rec.Result),
		})
	}
	return out
}
