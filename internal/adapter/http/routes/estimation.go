package routes

import (
	"construction_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimations = "/estimations"
	PathUsers       = "/users"
	PathPrices      = "/prices"
)

func addEstimationRoutes(rg *gin.RouterGroup, h *handlers.EstimationHandler) {
	rg.POST(PathEstimations, h.CreateEstimation)
	rg.POST(PathUsers+"/:user_id"+PathEstimations, h.CreateUserEstimation)
}

func addHistoryRoutes(rg *gin.RouterGroup, h *handlers.HistoryHandler) {
	rg.GET(PathUsers+"/:user_id/history", h.GetUserHistory)
}

func addPricingRoutes(rg *gin.RouterGroup, h *handlers.PricingHandler) {
	prices := rg.Group(PathPrices)
	{
		prices.GET("", h.ListItems)
		prices.GET("/categories", h.ListCategories)
		prices.GET("/:code", h.GetItem)
		prices.POST("/:code/adjusted", h.AdjustedPrice)
	}
}
