package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"lusolens/server/internal/service"
)

func SetupRoutes(router *gin.Engine, svc *service.Service, logger *logrus.Logger) {
	handler := NewHandler(svc, logger)
	metrics := NewMetrics()

	router.Use(metrics.Middleware())
	router.GET("/healthz", handler.Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/properties", handler.GetProperties)
		api.GET("/properties/:id/insights", handler.GetPropertyInsights)
		api.GET("/forecasts", handler.GetForecasts)
		api.GET("/districts", handler.GetDistricts)
		api.GET("/districts/:district/municipalities", handler.GetMunicipalitiesInDistrict)
		api.GET("/search/locations", handler.SearchLocations)
		api.GET("/municipalities/:code/ine", handler.GetINEData)
		api.GET("/municipalities/:code/housing", handler.GetHousingData)
		api.GET("/municipalities/:code/construction", handler.GetConstructionData)
		api.GET("/municipalities/:code/comprehensive", handler.GetComprehensiveData)
		api.GET("/indicators/search", handler.SearchIndicators)
		api.GET("/indicators/:id/validate", handler.ValidateIndicator)
		api.GET("/map/features", handler.GetMapFeatures)
		api.GET("/stats", handler.GetMarketStats)
	}
}
