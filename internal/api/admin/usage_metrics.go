package admin

import (
	"errors"
	"net/http"

	"revenue-copilot/database"
	"revenue-copilot/internal/domain/metrics"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// metric volume grows without bound; the console only ever shows the most
// recent window
const usageMetricListLimit = 500

func ListUsageMetrics(c *gin.Context) {
	var items []metrics.UsageMetric
	if err := database.DB.Order("created_at DESC").Limit(usageMetricListLimit).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load usage metrics"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateUsageMetric(c *gin.Context) {
	var input struct {
		OrganizationID string            `json:"organizationId" binding:"required"`
		MetricType     string            `json:"metricType" binding:"required"`
		Value          *float64          `json:"value" binding:"required"`
		Period         string            `json:"period" binding:"required"`
		Metadata       datatypes.JSONMap `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	item := metrics.UsageMetric{
		OrganizationID: input.OrganizationID,
		MetricType:     input.MetricType,
		Value:          *input.Value,
		Period:         input.Period,
		Metadata:       input.Metadata,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		persistError(c, err, "Usage metric already exists", "Failed to create usage metric")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func GetUsageMetric(c *gin.Context) {
	var item metrics.UsageMetric
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load usage metric"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func UpdateUsageMetric(c *gin.Context) {
	var input struct {
		OrganizationID *string            `json:"organizationId"`
		MetricType     *string            `json:"metricType" binding:"omitempty,min=1"`
		Value          *float64           `json:"value"`
		Period         *string            `json:"period" binding:"omitempty,min=1"`
		Metadata       *datatypes.JSONMap `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	var item metrics.UsageMetric
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load usage metrics"})
		return
	}

	updates := map[string]any{}
	if input.OrganizationID != nil {
		updates["organization_id"] = *input.OrganizationID
	}
	if input.MetricType != nil {
		updates["metric_type"] = *input.MetricType
	}
	if input.Value != nil {
		updates["value"] = *input.Value
	}
	if input.Period != nil {
		updates["period"] = *input.Period
	}
	if input.Metadata != nil {
		updates["metadata"] = *input.Metadata
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			persistError(c, err, "Usage metric already exists", "Failed to update usage metric")
			return
		}
	}

	database.DB.First(&item, "id = ?", item.ID)
	c.JSON(http.StatusOK, item)
}

func DeleteUsageMetric(c *gin.Context) {
	if err := database.DB.Delete(&metrics.UsageMetric{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete usage metric"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
