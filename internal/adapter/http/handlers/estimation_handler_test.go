package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

const validEstimationBody = `{"start_date":"2026-04-01","size":34,"floor_count":2,"room_count":3,"bathroom_count":2,` +
	`"construction_type":"RC","material_grade":"Mid","soil_condition":"Weak","access_condition":"Normal",` +
	`"noise_restriction":null,"pump_truck_restriction":false,"urban_area":"yes","winter_construction":"unknown"}`

func expectedHouse() entities.HouseConfiguration {
	return entities.HouseConfiguration{
		SizePyeong:           34,
		FloorCount:           2,
		RoomCount:            3,
		BathroomCount:        2,
		ConstructionType:     "RC",
		MaterialGrade:        "Mid",
		SoilCondition:        "Weak",
		AccessCondition:      "Normal",
		NoiseRestriction:     entities.TriStateUnknown,
		PumpTruckRestriction: entities.TriStateNo,
		UrbanArea:            entities.TriStateYes,
		WinterConstruction:   entities.TriStateUnknown,
	}
}

func sampleResult() entities.EstimationResult {
	return entities.EstimationResult{
		TotalCostKRW:               107_100_000,
		TotalDurationDays:          51,
		CostConfidenceInterval:     entities.ConfidenceInterval{Lower: 91_035_000, Upper: 123_165_000},
		DurationConfidenceInterval: entities.ConfidenceInterval{Lower: 41, Upper: 61},
		Source:                     entities.EstimateSourceLocal,
		Message:                    "calculated locally",
		FallbackReason:             entities.FallbackReasonRemoteUnreachable,
	}
}

func newEstimationRouter(h *EstimationHandler) *gin.Engine {
	h.now = func() time.Time { return time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC) }
	r := gin.New()
	r.POST("/v1/estimations", h.CreateEstimation)
	r.POST("/v1/users/:user_id/estimations", h.CreateUserEstimation)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEstimationHandler_CreateEstimation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	startDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		r := newEstimationRouter(NewEstimationHandler(uc, mocks.NewMockIHistoryUseCase(ctrl)))

		w := postJSON(r, "/v1/estimations", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		r := newEstimationRouter(NewEstimationHandler(uc, mocks.NewMockIHistoryUseCase(ctrl)))

		w := postJSON(r, "/v1/estimations", `{"construction_type":"RC","material_grade":"Mid"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("size above limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		r := newEstimationRouter(NewEstimationHandler(uc, mocks.NewMockIHistoryUseCase(ctrl)))

		w := postJSON(r, "/v1/estimations", `{"size":4000000000000,"construction_type":"Steel","material_grade":"Premium"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad start date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		r := newEstimationRouter(NewEstimationHandler(uc, mocks.NewMockIHistoryUseCase(ctrl)))

		w := postJSON(r, "/v1/estimations", `{"start_date":"04/01/2026","size":34,"construction_type":"RC","material_grade":"Mid"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("INVALID_START_DATE")) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("start date defaults to today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		r := newEstimationRouter(NewEstimationHandler(uc, mocks.NewMockIHistoryUseCase(ctrl)))

		today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().EstimateHouse(gomock.Any(), gomock.Any(), today).Return(sampleResult(), nil)

		w := postJSON(r, "/v1/estimations", `{"size":34,"construction_type":"RC","material_grade":"Mid"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase rejects request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		r := newEstimationRouter(NewEstimationHandler(uc, mocks.NewMockIHistoryUseCase(ctrl)))

		uc.EXPECT().EstimateHouse(gomock.Any(), expectedHouse(), startDate).
			Return(entities.EstimationResult{}, fmt.Errorf("%w: size must be positive", usecase.ErrInvalidRequest))

		w := postJSON(r, "/v1/estimations", validEstimationBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("canceled request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		r := newEstimationRouter(NewEstimationHandler(uc, mocks.NewMockIHistoryUseCase(ctrl)))

		uc.EXPECT().EstimateHouse(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.EstimationResult{}, context.Canceled)

		w := postJSON(r, "/v1/estimations", validEstimationBody)
		if w.Code != http.StatusRequestTimeout {
			t.Fatalf("expected 408, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		r := newEstimationRouter(NewEstimationHandler(uc, mocks.NewMockIHistoryUseCase(ctrl)))

		uc.EXPECT().EstimateHouse(gomock.Any(), expectedHouse(), startDate).Return(sampleResult(), nil)

		w := postJSON(r, "/v1/estimations", validEstimationBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body response.EstimationResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body.TotalCostKRW != 107_100_000 || body.Source != "local" || body.FallbackReason != "remote_unreachable" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestEstimationHandler_CreateUserEstimation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blank user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newEstimationRouter(NewEstimationHandler(mocks.NewMockIEstimationUseCase(ctrl), mocks.NewMockIHistoryUseCase(ctrl)))

		w := postJSON(r, "/v1/users/%20/estimations", validEstimationBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		history := mocks.NewMockIHistoryUseCase(ctrl)
		r := newEstimationRouter(NewEstimationHandler(uc, history))

		result := sampleResult()
		uc.EXPECT().EstimateHouse(gomock.Any(), expectedHouse(), gomock.Any()).Return(result, nil)
		history.EXPECT().SaveSubmission(gomock.Any(), "user-1", expectedHouse(), result).
			Return(entities.HouseRecord{ID: "house-1"}, entities.EstimationRecord{ID: "est-1"}, nil)

		w := postJSON(r, "/v1/users/user-1/estimations", validEstimationBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body response.UserEstimationResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if !body.Saved || body.HouseRecordID != "house-1" || body.EstimationRecordID != "est-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("save failure still returns estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		history := mocks.NewMockIHistoryUseCase(ctrl)
		r := newEstimationRouter(NewEstimationHandler(uc, history))

		uc.EXPECT().EstimateHouse(gomock.Any(), gomock.Any(), gomock.Any()).Return(sampleResult(), nil)
		history.EXPECT().SaveSubmission(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
			Return(entities.HouseRecord{}, entities.EstimationRecord{}, errors.New("dynamo down"))

		w := postJSON(r, "/v1/users/user-1/estimations", validEstimationBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body response.UserEstimationResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body.Saved || body.Estimation.TotalCostKRW != 107_100_000 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("estimate failure skips save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		history := mocks.NewMockIHistoryUseCase(ctrl)
		r := newEstimationRouter(NewEstimationHandler(uc, history))

		uc.EXPECT().EstimateHouse(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.EstimationResult{}, errors.New("boom"))

		w := postJSON(r, "/v1/users/user-1/estimations", validEstimationBody)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
