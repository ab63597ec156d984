package repository

import (
	"context"
	"sync"
	"time"

	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase/interfaces"
)

// HistoryMemoryRepository is a process-local history store for development
// and tests. Contents are lost on restart.
type HistoryMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]entities.UserHistory
}

var _ interfaces.IHistoryRepository = (*HistoryMemoryRepository)(nil)

func NewHistoryMemoryRepository() *HistoryMemoryRepository {
	return &HistoryMemoryRepository{users: make(map[string]entities.UserHistory)}
}

func (r *HistoryMemoryRepository) Append(_ context.Context, userID string, house *entities.HouseRecord, estimation *entities.EstimationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.users[userID]
	if !ok {
		h = entities.UserHistory{
			UserID:         userID,
			HouseData:      []entities.HouseRecord{},
			EstimationData: []entities.EstimationRecord{},
		}
	}
	if house != nil {
		h.HouseData = append(h.HouseData, *house)
	}
	if estimation != nil {
		h.EstimationData = append(h.EstimationData, *estimation)
	}
	h.UpdatedAt = time.Now().UTC()
	r.users[userID] = h
	return nil
}

func (r *HistoryMemoryRepository) GetByUserID(_ context.Context, userID string) (entities.UserHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.users[userID]
	if !ok {
		return entities.UserHistory{}, nil
	}
	return cloneHistory(h), nil
}
