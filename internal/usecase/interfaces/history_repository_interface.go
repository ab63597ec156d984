package interfaces

import (
	"context"

	"construction_estimator/internal/domain/entities"
)

// IHistoryRepository abstracts the per-user history document store.
//
// Records are only ever appended. GetByUserID returns a zero UserHistory
// (empty UserID) when the user has no document yet.
type IHistoryRepository interface {
	Append(ctx context.Context, userID string, house *entities.HouseRecord, estimation *entities.EstimationRecord) error
	GetByUserID(ctx context.Context, userID string) (entities.UserHistory, error)
}
