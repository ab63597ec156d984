package handlers

import (
	"errors"
	"net/http"

	request "construction_estimator/internal/adapter/http/dto/request"
	response "construction_estimator/internal/adapter/http/dto/response"
	"construction_estimator/internal/usecase"
	"construction_estimator/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAdjustedPricePayload = pkg.NewDomainErrorSimple("INVALID_ADJUSTED_PRICE_INPUT", "Invalid adjusted price payload", http.StatusBadRequest)
)

// PricingHandler serves the read-only standard price catalog.
type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// ListCategories godoc
// @Summary      List price categories
// @Tags         prices
// @Produce      json
// @Success      200  {object}  response.CategoriesResponse
// @Router       /prices/categories [get]
func (h *PricingHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, response.CategoriesResponse{
		Categories:     h.usecase.Categories(),
		TotalItemCount: h.usecase.TotalItemCount(),
	})
}

// ListItems godoc
// @Summary      List price items
// @Description  Filters by exact category and/or name substring.
// @Tags         prices
// @Produce      json
// @Param        category  query     string  false  "Category"
// @Param        name      query     string  false  "Name substring"
// @Success      200       {object}  response.LineItemListResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /prices [get]
func (h *PricingHandler) ListItems(c *gin.Context) {
	items, err := h.usecase.ListItems(c.Query("category"), c.Query("name"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineItems(items))
}

// GetItem godoc
// @Summary      Get a price item by code
// @Tags         prices
// @Produce      json
// @Param        code  path      string  true  "Item code"
// @Success      200   {object}  response.LineItemResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /prices/{code} [get]
func (h *PricingHandler) GetItem(c *gin.Context) {
	item, err := h.usecase.GetItem(c.Param("code"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineItem(item))
}

// AdjustedPrice godoc
// @Summary      Compute an adjusted unit price
// @Description  Applies every matching correction factor to the unit price.
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        code     path      string                        true  "Item code"
// @Param        payload  body      request.AdjustedPriceRequest  true  "Condition parameters"
// @Success      200      {object}  response.AdjustedPriceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /prices/{code}/adjusted [post]
func (h *PricingHandler) AdjustedPrice(c *gin.Context) {
	var payload request.AdjustedPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdjustedPricePayload.HTTPStatus, errInvalidAdjustedPricePayload.ToHTTPError())
		return
	}
	if payload.Parameters == nil {
		payload.Parameters = map[string]string{}
	}

	item, price, err := h.usecase.AdjustedPrice(c.Param("code"), payload.Parameters)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AdjustedPriceResponse{
		Code:          item.Code,
		UnitPrice:     item.UnitPrice,
		AdjustedPrice: price,
		Parameters:    payload.Parameters,
	})
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPriceItemNotFound):
		return pkg.NewDomainErrorSimple("PRICE_ITEM_NOT_FOUND", "Price item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Price category not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
