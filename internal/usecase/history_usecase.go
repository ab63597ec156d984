package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrHistoryNotFound = errors.New("history not found")
)

// IHistoryUseCase exposes the per-user saved questionnaires and estimates.
//
//   - SaveSubmission appends one house record and its estimate to users/{user_id}
//   - GetHistory returns everything saved so far, oldest first
type IHistoryUseCase interface {
	SaveSubmission(ctx context.Context, userID string, house entities.HouseConfiguration, result entities.EstimationResult) (entities.HouseRecord, entities.EstimationRecord, error)
	GetHistory(ctx context.Context, userID string) (entities.UserHistory, error)
}

type HistoryUseCase struct {
	repo interfaces.IHistoryRepository
}

var _ IHistoryUseCase = (*HistoryUseCase)(nil)

func NewHistoryUseCase(repo interfaces.IHistoryRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

func (u *HistoryUseCase) SaveSubmission(ctx context.Context, userID string, house entities.HouseConfiguration, result entities.EstimationResult) (entities.HouseRecord, entities.EstimationRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.HouseRecord{}, entities.EstimationRecord{}, ErrInvalidUserID
	}

	now := time.Now().UTC()
	houseRecord := entities.HouseRecord{
		ID:        uuid.NewString(),
		CreatedAt: now,
		House:     house,
	}
	estimationRecord := entities.EstimationRecord{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Result:    result,
	}

	if err := u.repo.Append(ctx, userID, &houseRecord, &estimationRecord); err != nil {
		return entities.HouseRecord{}, entities.EstimationRecord{}, err
	}
	return houseRecord, estimationRecord, nil
}

func (u *HistoryUseCase) GetHistory(ctx context.Context, userID string) (entities.UserHistory, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.UserHistory{}, ErrInvalidUserID
	}

	history, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.UserHistory{}, err
	}
	if history.UserID == "" {
		return entities.UserHistory{}, ErrHistoryNotFound
	}
	return history, nil
}
