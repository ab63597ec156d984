package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	request "construction_estimator/internal/adapter/http/dto/request"
	response "construction_estimator/internal/adapter/http/dto/response"
	"construction_estimator/internal/usecase"
	"construction_estimator/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimationPayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATION_INPUT", "Invalid estimation payload", http.StatusBadRequest)
	errInvalidUserID            = pkg.NewDomainErrorSimple("INVALID_USER_ID", "Invalid user id", http.StatusBadRequest)
)

// EstimationHandler handles HTTP requests for construction estimates.
type EstimationHandler struct {
	estimation usecase.IEstimationUseCase
	history    usecase.IHistoryUseCase
	now        func() time.Time
}

func NewEstimationHandler(estimation usecase.IEstimationUseCase, history usecase.IHistoryUseCase) *EstimationHandler {
	return &EstimationHandler{estimation: estimation, history: history, now: time.Now}
}

// CreateEstimation godoc
// @Summary      Estimate construction cost and duration
// @Description  Calls the prediction service and falls back to the local calculator when it fails.
// @Tags         estimations
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EstimationRequest  true  "House configuration"
// @Success      200      {object}  response.EstimationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /estimations [post]
func (h *EstimationHandler) CreateEstimation(c *gin.Context) {
	payload, startDate, ok := h.bindEstimation(c)
	if !ok {
		return
	}

	result, err := h.estimation.EstimateHouse(c.Request.Context(), payload.ToHouseConfiguration(), startDate)
	if err != nil {
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimationResult(result))
}

// CreateUserEstimation godoc
// @Summary      Estimate and save to the user's history
// @Description  Same as POST /estimations; the house configuration and the estimate are appended to the user's history.
// @Tags         estimations
// @Accept       json
// @Produce      json
// @Param        user_id  path      string                     true  "User ID"
// @Param        payload  body      request.EstimationRequest  true  "House configuration"
// @Success      201      {object}  response.UserEstimationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /users/{user_id}/estimations [post]
func (h *EstimationHandler) CreateUserEstimation(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("user_id"))
	if userID == "" {
		c.JSON(errInvalidUserID.HTTPStatus, errInvalidUserID.ToHTTPError())
		return
	}

	payload, startDate, ok := h.bindEstimation(c)
	if !ok {
		return
	}

	house := payload.ToHouseConfiguration()
	result, err := h.estimation.EstimateHouse(c.Request.Context(), house, startDate)
	if err != nil {
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := response.UserEstimationResponse{Estimation: response.FromEstimationResult(result)}
	houseRecord, estimationRecord, err := h.history.SaveSubmission(c.Request.Context(), userID, house, result)
	if err != nil {
		// The estimate is still useful to the caller; only persistence failed.
		slog.Error("[estimation][handler] failed to save history", "user_id", userID, "err", err)
		c.JSON(http.StatusCreated, out)
		return
	}

	out.Saved = true
	out.HouseRecordID = houseRecord.ID
	out.EstimationRecordID = estimationRecord.ID
	c.JSON(http.StatusCreated, out)
}

func (h *EstimationHandler) bindEstimation(c *gin.Context) (request.EstimationRequest, time.Time, bool) {
	var payload request.EstimationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimationPayload.HTTPStatus, errInvalidEstimationPayload.ToHTTPError())
		return request.EstimationRequest{}, time.Time{}, false
	}

	startDate, err := payload.ResolveStartDate(h.now())
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_START_DATE", "start_date must be YYYY-MM-DD", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return request.EstimationRequest{}, time.Time{}, false
	}
	return payload, startDate, true
}

func mapEstimationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("REQUEST_CANCELED", "Request canceled", err, http.StatusRequestTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
