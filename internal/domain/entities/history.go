package entities

import "time"

// HouseRecord is one saved questionnaire answer set.
type HouseRecord struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	House     HouseConfiguration `json:"house"`
}

// EstimationRecord is one saved estimate together with the request it answered.
type EstimationRecord struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Result    EstimationResult `json:"result"`
}

// UserHistory is the per-user document holding appended records.
//
// Storage model (DynamoDB):
//   - PK: user_id
//   - house_data and estimation_data are lists appended on every save
type UserHistory struct {
	UserID         string             `json:"user_id"`
	HouseData      []HouseRecord      `json:"house_data"`
	EstimationData []EstimationRecord `json:"estimation_data"`
	UpdatedAt      time.Time          `json:"updated_at"`
}
