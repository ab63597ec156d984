package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase/interfaces"
)

var (
	ErrInvalidRequest = errors.New("invalid estimation request")
)

// Interval policy applied whenever an interval has to be synthesized.
const (
	costIntervalLowerFactor     = 0.85
	costIntervalUpperFactor     = 1.15
	durationIntervalLowerFactor = 0.8
	durationIntervalUpperFactor = 1.2
)

var remoteModelInfo = entities.ModelInfo{
	Name:         "remote prediction model",
	Version:      "unknown",
	TrainingDate: "N/A",
}

const msgRemoteSuccess = "Estimate provided by the prediction service."

// IEstimationUseCase is the single estimation entry point for the HTTP layer.
//
// Estimate only fails for an invalid request or when ctx is canceled by the
// caller; every remote failure is absorbed by the local estimator.
type IEstimationUseCase interface {
	Estimate(ctx context.Context, req entities.EstimationRequest) (entities.EstimationResult, error)
	EstimateHouse(ctx context.Context, house entities.HouseConfiguration, startDate time.Time) (entities.EstimationResult, error)
}

type EstimationUseCase struct {
	remote interfaces.IRemoteEstimator
	local  *LocalEstimator
	logger *slog.Logger
}

var _ IEstimationUseCase = (*EstimationUseCase)(nil)

// NewEstimationUseCase wires the orchestrator. A nil remote makes every
// estimate local.
func NewEstimationUseCase(remote interfaces.IRemoteEstimator, local *LocalEstimator, logger *slog.Logger) *EstimationUseCase {
	if local == nil {
		local = NewLocalEstimator("")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EstimationUseCase{remote: remote, local: local, logger: logger}
}

func (u *EstimationUseCase) EstimateHouse(ctx context.Context, house entities.HouseConfiguration, startDate time.Time) (entities.EstimationResult, error) {
	return u.Estimate(ctx, house.ToEstimationRequest(startDate))
}

func (u *EstimationUseCase) Estimate(ctx context.Context, req entities.EstimationRequest) (entities.EstimationResult, error) {
	if err := ValidateRequest(req); err != nil {
		return entities.EstimationResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return entities.EstimationResult{}, err
	}

	if u.remote == nil {
		u.logger.Info("[estimation][usecase] remote not configured, using local estimator", "size", req.SizePyeong)
		return u.fromLocal(req, entities.FallbackReasonRemoteUnreachable, "The prediction service is not configured; the estimate was calculated locally."), nil
	}

	u.logger.Info("[estimation][usecase] calling remote", "size", req.SizePyeong, "construction_type", req.ConstructionType)
	remote, err := u.remote.Estimate(ctx, req)
	if err == nil {
		u.logger.Info("[estimation][usecase] remote success", "shape", remote.Shape, "total_cost_krw", remote.TotalCostKRW)
		return u.fromRemote(req, remote), nil
	}

	// A caller that went away gets no result at all.
	if ctxErr := ctx.Err(); ctxErr != nil {
		u.logger.Info("[estimation][usecase] canceled by caller", "err", ctxErr)
		return entities.EstimationResult{}, ctxErr
	}

	reason, message := classifyRemoteError(err)
	u.logger.Warn("[estimation][usecase] remote failed, falling back", "reason", reason, "err", err)
	return u.fromLocal(req, reason, message), nil
}

// ValidateRequest rejects requests that cannot be estimated at all.
func ValidateRequest(req entities.EstimationRequest) error {
	switch {
	case req.SizePyeong <= 0:
		return fmt.Errorf("%w: size must be positive", ErrInvalidRequest)
	case req.SizePyeong > entities.MaxSizePyeong:
		return fmt.Errorf("%w: size must not exceed %d", ErrInvalidRequest, entities.MaxSizePyeong)
	case req.FloorCount < 0, req.RoomCount < 0, req.BathroomCount < 0:
		return fmt.Errorf("%w: floor, room and bathroom counts must not be negative", ErrInvalidRequest)
	case strings.TrimSpace(string(req.ConstructionType)) == "":
		return fmt.Errorf("%w: construction_type is required", ErrInvalidRequest)
	case strings.TrimSpace(string(req.MaterialGrade)) == "":
		return fmt.Errorf("%w: material_grade is required", ErrInvalidRequest)
	case req.StartDate.IsZero():
		return fmt.Errorf("%w: start_date is required", ErrInvalidRequest)
	}
	return nil
}

func (u *EstimationUseCase) fromRemote(req entities.EstimationRequest, remote entities.RemoteEstimate) entities.EstimationResult {
	costPolicy, durationPolicy := policyIntervals(remote.TotalCostKRW, float64(remote.TotalDurationDays))

	costCI := costPolicy
	if remote.CostInterval != nil {
		costCI = remote.CostInterval.Enclose(remote.TotalCostKRW)
	}
	durationCI := durationPolicy
	if remote.DurationInterval != nil {
		durationCI = remote.DurationInterval.Enclose(int64(remote.TotalDurationDays))
	}

	info := remoteModelInfo
	if remote.ModelInfo != nil {
		info = *remote.ModelInfo
	}

	return entities.EstimationResult{
		TotalCostKRW:               remote.TotalCostKRW,
		TotalDurationDays:          remote.TotalDurationDays,
		CostConfidenceInterval:     costCI,
		DurationConfidenceInterval: durationCI,
		Source:                     entities.EstimateSourceRemote,
		ModelInfo:                  &info,
		InputEchoed:                req,
		Message:                    msgRemoteSuccess,
	}
}

func (u *EstimationUseCase) fromLocal(req entities.EstimationRequest, reason entities.FallbackReason, message string) entities.EstimationResult {
	est := u.local.Compute(req)
	duration := roundDuration(est.DurationDays)
	costCI, durationCI := policyIntervals(est.CostKRW, est.DurationDays)

	info := u.local.ModelInfo()
	return entities.EstimationResult{
		TotalCostKRW:               est.CostKRW,
		TotalDurationDays:          duration,
		CostConfidenceInterval:     costCI.Enclose(est.CostKRW),
		DurationConfidenceInterval: durationCI.Enclose(int64(duration)),
		Source:                     entities.EstimateSourceLocal,
		ModelInfo:                  &info,
		InputEchoed:                req,
		Explanation:                est.Explanation,
		Message:                    message,
		FallbackReason:             reason,
	}
}

func policyIntervals(cost int64, durationDays float64) (entities.ConfidenceInterval, entities.ConfidenceInterval) {
	c := float64(cost)
	return entities.ConfidenceInterval{
			Lower: saturatingInt64(c * costIntervalLowerFactor),
			Upper: saturatingInt64(c * costIntervalUpperFactor),
		}, entities.ConfidenceInterval{
			Lower: saturatingInt64(durationDays * durationIntervalLowerFactor),
			Upper: saturatingInt64(durationDays * durationIntervalUpperFactor),
		}
}

// roundDuration rounds to the nearest day with a one-day floor.
func roundDuration(days float64) int {
	d := int(math.Round(days))
	if d < 1 {
		return 1
	}
	return d
}

func classifyRemoteError(err error) (entities.FallbackReason, string) {
	var remoteErr *interfaces.RemoteError
	if !errors.As(err, &remoteErr) {
		return entities.FallbackReasonRemoteUnreachable,
			"Could not reach the prediction service; the estimate was calculated locally."
	}

	switch remoteErr.Kind {
	case interfaces.RemoteErrorHTTPStatus:
		if remoteErr.StatusCode == http.StatusNotFound {
			return entities.FallbackReasonRemoteErrorStatus,
				"The prediction service was not found (HTTP 404); the estimate was calculated locally."
		}
		return entities.FallbackReasonRemoteErrorStatus,
			fmt.Sprintf("The prediction service returned an error (HTTP %d); the estimate was calculated locally.", remoteErr.StatusCode)
	case interfaces.RemoteErrorParseFailure:
		return entities.FallbackReasonRemoteUnparsable,
			"The prediction service response could not be read; the estimate was calculated locally."
	default:
		return entities.FallbackReasonRemoteUnreachable,
			"Could not reach the prediction service; the estimate was calculated locally."
	}
}
