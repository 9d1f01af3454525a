package admin

import (
	"errors"
	"net/http"

	"revenue-copilot/database"
	"revenue-copilot/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func ListPlans(c *gin.Context) {
	var items []plans.Plan
	if err := database.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreatePlan(c *gin.Context) {
	var input struct {
		Name     string            `json:"name" binding:"required"`
		Type     string            `json:"type" binding:"required,oneof=INDIVIDUAL TEAM ENTERPRISE"`
		Price    *float64          `json:"price" binding:"required"`
		Currency string            `json:"currency"`
		Interval string            `json:"interval"`
		Features datatypes.JSONMap `json:"features"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	if input.Currency == "" {
		input.Currency = "USD"
	}
	if input.Interval == "" {
		input.Interval = "month"
	}

	item := plans.Plan{
		Name:     input.Name,
		Type:     input.Type,
		Price:    *input.Price,
		Currency: input.Currency,
		Interval: input.Interval,
		Features: input.Features,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		persistError(c, err, "A plan with this name already exists", "Failed to create plan")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func GetPlan(c *gin.Context) {
	var item plans.Plan
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plan"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func UpdatePlan(c *gin.Context) {
	var input struct {
		Name     *string            `json:"name" binding:"omitempty,min=1"`
		Type     *string            `json:"type" binding:"omitempty,oneof=INDIVIDUAL TEAM ENTERPRISE"`
		Price    *float64           `json:"price"`
		Currency *string            `json:"currency"`
		Interval *string            `json:"interval"`
		Features *datatypes.JSONMap `json:"features"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	var item plans.Plan
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Currency != nil {
		updates["currency"] = *input.Currency
	}
	if input.Interval != nil {
		updates["interval"] = *input.Interval
	}
	if input.Features != nil {
		updates["features"] = *input.Features
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			persistError(c, err, "A plan with this name already exists", "Failed to update plan")
			return
		}
	}

	database.DB.First(&item, "id = ?", item.ID)
	c.JSON(http.StatusOK, item)
}

func DeletePlan(c *gin.Context) {
	if err := database.DB.Delete(&plans.Plan{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
