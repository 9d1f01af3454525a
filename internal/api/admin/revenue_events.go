package admin

import (
	"errors"
	"net/http"

	"revenue-copilot/database"
	"revenue-copilot/internal/domain/billing"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func ListRevenueEvents(c *gin.Context) {
	var items []billing.RevenueEvent
	if err := database.DB.Preload("Organization").Preload("Customer").Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load revenue events"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateRevenueEvent(c *gin.Context) {
	var input struct {
		OrganizationID string            `json:"organizationId" binding:"required"`
		CustomerID     *string           `json:"customerId"`
		Amount         *float64          `json:"amount" binding:"required"`
		Currency       string            `json:"currency"`
		Type           string            `json:"type" binding:"required"`
		Description    *string           `json:"description"`
		Metadata       datatypes.JSONMap `json:"metadata"`
		EffectiveDate  string            `json:"effectiveDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	effective, err := parseDate(input.EffectiveDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"fields": gin.H{"effectiveDate": "must be an ISO-8601 timestamp"}}})
		return
	}

	if input.Currency == "" {
		input.Currency = "USD"
	}

	item := billing.RevenueEvent{
		OrganizationID: input.OrganizationID,
		CustomerID:     input.CustomerID,
		Amount:         *input.Amount,
		Currency:       input.Currency,
		Type:           input.Type,
		Description:    input.Description,
		Metadata:       input.Metadata,
		EffectiveDate:  effective,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		persistError(c, err, "Revenue event already exists", "Failed to create revenue event")
		return
	}

	database.DB.Preload("Organization").Preload("Customer").First(&item, "id = ?", item.ID)
	c.JSON(http.StatusCreated, item)
}

func GetRevenueEvent(c *gin.Context) {
	var item billing.RevenueEvent
	if err := database.DB.Preload("Organization").Preload("Customer").First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load revenue event"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func UpdateRevenueEvent(c *gin.Context) {
	var input struct {
		OrganizationID *string            `json:"organizationId"`
		CustomerID     *string            `json:"customerId"`
		Amount         *float64           `json:"amount"`
		Currency       *string            `json:"currency"`
		Type           *string            `json:"type"`
		Description    *string            `json:"description"`
		Metadata       *datatypes.JSONMap `json:"metadata"`
		EffectiveDate  *string            `json:"effectiveDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	var item billing.RevenueEvent
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load revenue events"})
		return
	}

	updates := map[string]any{}
	if input.OrganizationID != nil {
		updates["organization_id"] = *input.OrganizationID
	}
	if input.CustomerID != nil {
		updates["customer_id"] = *input.CustomerID
	}
	if input.Amount != nil {
		updates["amount"] = *input.Amount
	}
	if input.Currency != nil {
		updates["currency"] = *input.Currency
	}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Metadata != nil {
		updates["metadata"] = *input.Metadata
	}
	if input.EffectiveDate != nil {
		effective, err := parseDate(*input.EffectiveDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"fields": gin.H{"effectiveDate": "must be an ISO-8601 timestamp"}}})
			return
		}
		updates["effective_date"] = effective
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			persistError(c, err, "Revenue event already exists", "Failed to update revenue event")
			return
		}
	}

	database.DB.Preload("Organization").Preload("Customer").First(&item, "id = ?", item.ID)
	c.JSON(http.StatusOK, item)
}

func DeleteRevenueEvent(c *gin.Context) {
	if err := database.DB.Delete(&billing.RevenueEvent{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete revenue event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
