package api

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lusolens/server/internal/geometry"
	"lusolens/server/internal/models"
	"lusolens/server/internal/service"
)

type Handler struct {
	svc    *service.Service
	logger *logrus.Logger
}

func NewHandler(svc *service.Service, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) GetProperties(c *gin.Context) {
	var filters models.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		h.logger.WithError(err).Error("Failed to parse property filters")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters"})
		return
	}

	c.JSON(http.StatusOK, h.svc.Properties(c.Request.Context(), filters))
}

func (h *Handler) GetForecasts(c *gin.Context) {
	var ids []string
	if raw := c.Query("ids"); raw != "" {
		ids = strings.Split(raw, ",")
	}

	c.JSON(http.StatusOK, h.svc.Forecasts(c.Request.Context(), ids))
}

func (h *Handler) GetDistricts(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.AvailableDistricts(c.Request.Context()))
}

func (h *Handler) GetMunicipalitiesInDistrict(c *gin.Context) {
	district := c.Param("district")
	c.JSON(http.StatusOK, h.svc.MunicipalitiesInDistrict(c.Request.Context(), district))
}

func (h *Handler) SearchLocations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, []models.LocationResult{})
		return
	}

	c.JSON(http.StatusOK, h.svc.SearchLocations(c.Request.Context(), query))
}

func (h *Handler) GetINEData(c *gin.Context) {
	code := c.Param("code")
	c.JSON(http.StatusOK, h.svc.INEData(c.Request.Context(), code))
}

func (h *Handler) GetHousingData(c *gin.Context) {
	code := c.Param("code")
	c.JSON(http.StatusOK, h.svc.HousingData(c.Request.Context(), code))
}

func (h *Handler) GetConstructionData(c *gin.Context) {
	code := c.Param("code")
	c.JSON(http.StatusOK, h.svc.ConstructionData(c.Request.Context(), code))
}

func (h *Handler) GetComprehensiveData(c *gin.Context) {
	code := c.Param("code")
	c.JSON(http.StatusOK, h.svc.ComprehensiveMunicipalityData(c.Request.Context(), code))
}

func (h *Handler) SearchIndicators(c *gin.Context) {
	topic := c.Query("topic")
	if topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing topic parameter"})
		return
	}

	c.JSON(http.StatusOK, h.svc.SearchIndicators(c.Request.Context(), topic))
}

func (h *Handler) ValidateIndicator(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"indicator": id,
		"valid":     h.svc.ValidateIndicator(c.Request.Context(), id),
	})
}

// GetMapFeatures rebuilds the choropleth point features for the current
// filters and selected metric. The feature set is recomputed wholesale on
// every call.
func (h *Handler) GetMapFeatures(c *gin.Context) {
	var filters models.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		h.logger.WithError(err).Error("Failed to parse map filters")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters"})
		return
	}

	metric := geometry.ParseMetric(c.Query("metric"))
	records := h.svc.Properties(c.Request.Context(), filters)
	result := geometry.NewEngine().Build(records, metric)

	c.JSON(http.StatusOK, gin.H{
		"metric":    metric.String(),
		"min_value": result.MinValue,
		"max_value": result.MaxValue,
		"center":    geometry.DefaultCenter,
		"zoom":      geometry.DefaultZoom,
		"features":  result.Collection,
	})
}

func (h *Handler) GetPropertyInsights(c *gin.Context) {
	id := c.Param("id")
	insights, ok := h.svc.PropertyInsights(c.Request.Context(), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, insights)
}

func (h *Handler) GetMarketStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.MarketStats(c.Request.Context()))
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
