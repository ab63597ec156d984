package repository

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/infrastructure/database"
	"construction_estimator/internal/usecase/interfaces"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func exerciseHistoryRepository(t *testing.T, repo interfaces.IHistoryRepository) {
	t.Helper()
	ctx := context.Background()

	got, err := repo.GetByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("get before append: %v", err)
	}
	if got.UserID != "" {
		t.Fatalf("expected zero history, got %+v", got)
	}

	sample := sampleHistory()
	second := sample.HouseData[0]
	second.ID = "h2"

	if err := repo.Append(ctx, "user-1", &sample.HouseData[0], &sample.EstimationData[0]); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(ctx, "user-1", &second, nil); err != nil {
		t.Fatalf("append house only: %v", err)
	}
	if err := repo.Append(ctx, "user-2", &second, nil); err != nil {
		t.Fatalf("append other user: %v", err)
	}

	got, err = repo.GetByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != "user-1" || got.UpdatedAt.IsZero() {
		t.Fatalf("unexpected history header: %+v", got)
	}
	wantHouses := []entities.HouseRecord{sample.HouseData[0], second}
	if diff := cmp.Diff(wantHouses, got.HouseData); diff != "" {
		t.Fatalf("unexpected houses (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(sample.EstimationData, got.EstimationData, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("unexpected estimations (-want +got):\n%s", diff)
	}

	other, err := repo.GetByUserID(ctx, "user-2")
	if err != nil {
		t.Fatalf("get other: %v", err)
	}
	if len(other.HouseData) != 1 || len(other.EstimationData) != 0 {
		t.Fatalf("unexpected other history: %+v", other)
	}
}

func TestHistorySQLiteRepository(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	exerciseHistoryRepository(t, NewHistorySQLiteRepository(db))
}

func TestHistoryRepositories_RepeatedRecordID(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	repos := map[string]interfaces.IHistoryRepository{
		"sqlite": NewHistorySQLiteRepository(db),
		"memory": NewHistoryMemoryRepository(),
	}
	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			sample := sampleHistory()
			for _, userID := range []string{"user-a", "user-a", "user-b"} {
				if err := repo.Append(ctx, userID, &sample.HouseData[0], &sample.EstimationData[0]); err != nil {
					t.Fatalf("append for %s: %v", userID, err)
				}
			}

			a, err := repo.GetByUserID(ctx, "user-a")
			if err != nil {
				t.Fatalf("get user-a: %v", err)
			}
			if len(a.HouseData) != 2 || len(a.EstimationData) != 2 {
				t.Fatalf("expected 2 records each for user-a, got %d and %d", len(a.HouseData), len(a.EstimationData))
			}
			b, err := repo.GetByUserID(ctx, "user-b")
			if err != nil {
				t.Fatalf("get user-b: %v", err)
			}
			if len(b.HouseData) != 1 || b.HouseData[0].ID != sample.HouseData[0].ID {
				t.Fatalf("unexpected user-b history: %+v", b.HouseData)
			}
		})
	}
}

func TestHistoryMemoryRepository(t *testing.T) {
	exerciseHistoryRepository(t, NewHistoryMemoryRepository())
}

func TestHistoryMemoryRepository_ConcurrentAppends(t *testing.T) {
	repo := NewHistoryMemoryRepository()
	sample := sampleHistory()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Append(context.Background(), "user-1", &sample.HouseData[0], &sample.EstimationData[0])
		}()
	}
	wg.Wait()

	got, _ := repo.GetByUserID(context.Background(), "user-1")
	if len(got.HouseData) != 20 || len(got.EstimationData) != 20 {
		t.Fatalf("expected 20 records each, got %d and %d", len(got.HouseData), len(got.EstimationData))
	}
}
