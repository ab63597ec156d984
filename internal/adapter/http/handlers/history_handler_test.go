package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	response "construction_estimator/internal/adapter/http/dto/response"
	"construction_estimator/internal/adapter/http/handlers/mocks"
	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestHistoryHandler_GetUserHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		history    entities.UserHistory
		err        error
		wantStatus int
	}{
		{name: "not found", err: usecase.ErrHistoryNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid user", err: usecase.ErrInvalidUserID, wantStatus: http.StatusBadRequest},
		{name: "repository error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
		{
			name: "success",
			history: entities.UserHistory{
				UserID:         "user-1",
				HouseData:      []entities.HouseRecord{{ID: "house-1", CreatedAt: time.Now().UTC()}},
				EstimationData: []entities.EstimationRecord{{ID: "est-1", Result: entities.EstimationResult{TotalCostKRW: 85_000_000}}},
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIHistoryUseCase(ctrl)
			h := NewHistoryHandler(uc)

			r := gin.New()
			r.GET("/v1/users/:user_id/history", h.GetUserHistory)

			uc.EXPECT().GetHistory(gomock.Any(), "user-1").Return(tt.history, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/v1/users/user-1/history", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body response.HistoryResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json response: %v", err)
			}
			if body.UserID != "user-1" || len(body.EstimationData) != 1 || body.EstimationData[0].Estimation.TotalCostKRW != 85_000_000 {
				t.Fatalf("unexpected body: %+v", body)
			}
		})
	}
}
