package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"construction_estimator/internal/domain/entities"
)

var (
	ErrInvalidStartDate = errors.New("invalid start_date")
)

const startDateLayout = "2006-01-02"

// TriStateFlag accepts true/false, "yes"/"no"/"unknown", the legacy labels
// or null. Anything else decodes as unknown.
type TriStateFlag entities.TriState

func (f *TriStateFlag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = TriStateFlag(entities.TriStateUnknown)
		return nil
	case bytes.Equal(data, []byte("true")):
		*f = TriStateFlag(entities.TriStateYes)
		return nil
	case bytes.Equal(data, []byte("false")):
		*f = TriStateFlag(entities.TriStateNo)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = TriStateFlag(entities.ParseTriState(s))
	return nil
}

func (f TriStateFlag) value() entities.TriState {
	if f == "" {
		return entities.TriStateUnknown
	}
	return entities.TriState(f)
}

// EstimationRequest is the questionnaire payload accepted by the estimation
// endpoints. start_date is optional and defaults to today.
type EstimationRequest struct {
	StartDate            string       `json:"start_date" example:"2026-04-01"`
	Size                 int          `json:"size" binding:"required,gt=0,lte=100000" example:"34"`
	FloorCount           int          `json:"floor_count" binding:"gte=0" example:"2"`
	RoomCount            int          `json:"room_count" binding:"gte=0" example:"3"`
	BathroomCount        int          `json:"bathroom_count" binding:"gte=0" example:"2"`
	ConstructionType     string       `json:"construction_type" binding:"required" example:"RC"`
	MaterialGrade        string       `json:"material_grade" binding:"required" example:"Mid"`
	SoilCondition        string       `json:"soil_condition" example:"Normal"`
	AccessCondition      string       `json:"access_condition" example:"Normal"`
	NoiseRestriction     TriStateFlag `json:"noise_restriction" swaggertype:"string" example:"unknown"`
	PumpTruckRestriction TriStateFlag `json:"pump_truck_restriction" swaggertype:"string" example:"no"`
	UrbanArea            TriStateFlag `json:"urban_area" swaggertype:"string" example:"yes"`
	WinterConstruction   TriStateFlag `json:"winter_construction" swaggertype:"string" example:"no"`
}

func (r EstimationRequest) ToHouseConfiguration() entities.HouseConfiguration {
	return entities.HouseConfiguration{
		SizePyeong:           r.Size,
		FloorCount:           r.FloorCount,
		RoomCount:            r.RoomCount,
		BathroomCount:        r.BathroomCount,
		ConstructionType:     entities.ConstructionType(strings.TrimSpace(r.ConstructionType)),
		MaterialGrade:        entities.MaterialGrade(strings.TrimSpace(r.MaterialGrade)),
		SoilCondition:        entities.SoilCondition(strings.TrimSpace(r.SoilCondition)),
		AccessCondition:      entities.AccessCondition(strings.TrimSpace(r.AccessCondition)),
		NoiseRestriction:     r.NoiseRestriction.value(),
		PumpTruckRestriction: r.PumpTruckRestriction.value(),
		UrbanArea:            r.UrbanArea.value(),
		WinterConstruction:   r.WinterConstruction.value(),
	}
}

// ResolveStartDate parses start_date, falling back to the date of now.
func (r EstimationRequest) ResolveStartDate(now time.Time) (time.Time, error) {
	v := strings.TrimSpace(r.StartDate)
	if v == "" {
		y, m, d := now.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(startDateLayout, v)
	if err != nil {
		return time.Time{}, ErrInvalidStartDate
	}
	return t, nil
}

// AdjustedPriceRequest carries the condition parameters matched against an
// item's correction factors, keyed by factor type.
type AdjustedPriceRequest struct {
	Parameters map[string]string `json:"parameters"`
}
