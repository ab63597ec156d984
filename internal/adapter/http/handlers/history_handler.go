package handlers

import (
	"errors"
	"net/http"

	response "construction_estimator/internal/adapter/http/dto/response"
	"construction_estimator/internal/usecase"
	"construction_estimator/pkg"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	usecase usecase.IHistoryUseCase
}

func NewHistoryHandler(uc usecase.IHistoryUseCase) *HistoryHandler {
	return &HistoryHandler{usecase: uc}
}

// GetUserHistory godoc
// @Summary      Get a user's saved houses and estimates
// @Tags         history
// @Produce      json
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  response.HistoryResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /users/{user_id}/history [get]
func (h *HistoryHandler) GetUserHistory(c *gin.Context) {
	history, err := h.usecase.GetHistory(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUserHistory(history))
}

func mapHistoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return errInvalidUserID
	case errors.Is(err, usecase.ErrHistoryNotFound):
		return pkg.NewDomainErrorSimple("HISTORY_NOT_FOUND", "No history for this user", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
