package entities

// EstimateSource identifies which estimator produced a result.
type EstimateSource string

const (
	EstimateSourceRemote EstimateSource = "remote"
	EstimateSourceLocal  EstimateSource = "local"
)

// FallbackReason explains why a result came from the local estimator.
// It is empty for remote results.
type FallbackReason string

const (
	FallbackReasonNone              FallbackReason = ""
	FallbackReasonRemoteUnreachable FallbackReason = "remote_unreachable"
	FallbackReasonRemoteErrorStatus FallbackReason = "remote_error_status"
	FallbackReasonRemoteUnparsable  FallbackReason = "remote_unparsable"
)

type ConfidenceInterval struct {
	Lower int64 `json:"lower"`
	Upper int64 `json:"upper"`
}

func (c ConfidenceInterval) Contains(v int64) bool {
	return c.Lower <= v && v <= c.Upper
}

// Enclose widens the interval so that it contains v.
func (c ConfidenceInterval) Enclose(v int64) ConfidenceInterval {
	if c.Lower > c.Upper {
		c.Lower, c.Upper = c.Upper, c.Lower
	}
	if v < c.Lower {
		c.Lower = v
	}
	if v > c.Upper {
		c.Upper = v
	}
	return c
}

type ModelInfo struct {
	Name         string  `json:"model_name"`
	Version      string  `json:"version"`
	Accuracy     float64 `json:"accuracy"`
	TrainingDate string  `json:"training_date"`
}

// CostDurationEstimate is the output of the local pricing model.
// DurationDays stays fractional; rounding happens when building an EstimationResult.
type CostDurationEstimate struct {
	CostKRW      int64   `json:"cost_krw"`
	DurationDays float64 `json:"duration_days"`
	Explanation  string  `json:"explanation"`
}

// RemoteEstimate is a prediction service response normalized from any known shape.
// Intervals are nil when the service omitted them.
type RemoteEstimate struct {
	TotalCostKRW        int64
	TotalDurationDays   int
	CostInterval        *ConfidenceInterval
	DurationInterval    *ConfidenceInterval
	ModelInfo           *ModelInfo
	Shape               string
	PredictionTimestamp string
}

// EstimationResult is the uniform result handed to callers regardless of source.
//
// Invariants:
//   - CostConfidenceInterval contains TotalCostKRW
//   - DurationConfidenceInterval contains TotalDurationDays
//   - Source is local whenever the remote path failed
type EstimationResult struct {
	TotalCostKRW               int64              `json:"total_cost_krw"`
	TotalDurationDays          int                `json:"total_duration_days"`
	CostConfidenceInterval     ConfidenceInterval `json:"cost_confidence_interval"`
	DurationConfidenceInterval ConfidenceInterval `json:"duration_confidence_interval"`
	Source                     EstimateSource     `json:"source"`
	ModelInfo                  *ModelInfo         `json:"model_info,omitempty"`
	InputEchoed                EstimationRequest  `json:"input_echoed"`
	Explanation                string             `json:"explanation,omitempty"`
	Message                    string             `json:"message"`
	FallbackReason             FallbackReason     `json:"fallback_reason,omitempty"`
}
