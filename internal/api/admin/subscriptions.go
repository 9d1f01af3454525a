package admin

import (
	"errors"
	"net/http"

	"revenue-copilot/database"
	"revenue-copilot/internal/domain/billing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListSubscriptions(c *gin.Context) {
	var items []billing.Subscription
	if err := database.DB.Preload("Organization").Preload("Plan").Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscriptions"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateSubscription(c *gin.Context) {
	var input struct {
		OrganizationID     string  `json:"organizationId" binding:"required"`
		PlanID             string  `json:"planId" binding:"required"`
		Status             string  `json:"status"`
		CurrentPeriodStart string  `json:"currentPeriodStart" binding:"required"`
		CurrentPeriodEnd   string  `json:"currentPeriodEnd" binding:"required"`
		ExternalID         *string `json:"externalId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	start, err := parseDate(input.CurrentPeriodStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"fields": gin.H{"currentPeriodStart": "must be an ISO-8601 timestamp"}}})
		return
	}
	end, err := parseDate(input.CurrentPeriodEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"fields": gin.H{"currentPeriodEnd": "must be an ISO-8601 timestamp"}}})
		return
	}

	if input.Status == "" {
		input.Status = "active"
	}

	item := billing.Subscription{
		OrganizationID:     input.OrganizationID,
		PlanID:             input.PlanID,
		Status:             input.Status,
		CurrentPeriodStart: start,
		CurrentPeriodEnd:   end,
		ExternalID:         input.ExternalID,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		persistError(c, err, "Subscription already exists", "Failed to create subscription")
		return
	}

	database.DB.Preload("Organization").Preload("Plan").First(&item, "id = ?", item.ID)
	c.JSON(http.StatusCreated, item)
}

func GetSubscription(c *gin.Context) {
	var item billing.Subscription
	if err := database.DB.Preload("Organization").Preload("Plan").First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func UpdateSubscription(c *gin.Context) {
	var input struct {
		OrganizationID     *string `json:"organizationId"`
		PlanID             *string `json:"planId"`
		Status             *string `json:"status"`
		CurrentPeriodStart *string `json:"currentPeriodStart"`
		CurrentPeriodEnd   *string `json:"currentPeriodEnd"`
		ExternalID         *string `json:"externalId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	var item billing.Subscription
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscriptions"})
		return
	}

	updates := map[string]any{}
	if input.OrganizationID != nil {
		updates["organization_id"] = *input.OrganizationID
	}
	if input.PlanID != nil {
		updates["plan_id"] = *input.PlanID
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.ExternalID != nil {
		updates["external_id"] = *input.ExternalID
	}
	if input.CurrentPeriodStart != nil {
		start, err := parseDate(*input.CurrentPeriodStart)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"fields": gin.H{"currentPeriodStart": "must be an ISO-8601 timestamp"}}})
			return
		}
		updates["current_period_start"] = start
	}
	if input.CurrentPeriodEnd != nil {
		end, err := parseDate(*input.CurrentPeriodEnd)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"fields": gin.H{"currentPeriodEnd": "must be an ISO-8601 timestamp"}}})
			return
		}
		updates["current_period_end"] = end
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			persistError(c, err, "Subscription already exists", "Failed to update subscription")
			return
		}
	}

	database.DB.Preload("Organization").Preload("Plan").First(&item, "id = ?", item.ID)
	c.JSON(http.StatusOK, item)
}

func DeleteSubscription(c *gin.Context) {
	if err := database.DB.Delete(&billing.Subscription{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscription"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
