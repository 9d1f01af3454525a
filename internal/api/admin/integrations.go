package admin

import (
	"errors"
	"net/http"

	"revenue-copilot/database"
	"revenue-copilot/internal/domain/integrations"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func ListIntegrations(c *gin.Context) {
	var items []integrations.Integration
	if err := database.DB.Preload("Organization").Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load integrations"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateIntegration(c *gin.Context) {
	var input struct {
		OrganizationID string            `json:"organizationId" binding:"required"`
		Type           string            `json:"type" binding:"required,oneof=STRIPE BILLING CUSTOM"`
		Name           string            `json:"name" binding:"required"`
		Config         datatypes.JSONMap `json:"config"`
		IsActive       *bool             `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	item := integrations.Integration{
		OrganizationID: input.OrganizationID,
		Type:           input.Type,
		Name:           input.Name,
		Config:         input.Config,
		IsActive:       isActive,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		persistError(c, err, "Integration already exists", "Failed to create integration")
		return
	}

	database.DB.Preload("Organization").First(&item, "id = ?", item.ID)
	c.JSON(http.StatusCreated, item)
}

func GetIntegration(c *gin.Context) {
	var item integrations.Integration
	if err := database.DB.Preload("Organization").First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load integration"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func UpdateIntegration(c *gin.Context) {
	var input struct {
		OrganizationID *string            `json:"organizationId"`
		Type           *string            `json:"type" binding:"omitempty,oneof=STRIPE BILLING CUSTOM"`
		Name           *string            `json:"name" binding:"omitempty,min=1"`
		Config         *datatypes.JSONMap `json:"config"`
		IsActive       *bool              `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	var item integrations.Integration
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load integrations"})
		return
	}

	updates := map[string]any{}
	if input.OrganizationID != nil {
		updates["organization_id"] = *input.OrganizationID
	}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Config != nil {
		updates["config"] = *input.Config
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			persistError(c, err, "Integration already exists", "Failed to update integration")
			return
		}
	}

	database.DB.Preload("Organization").First(&item, "id = ?", item.ID)
	c.JSON(http.StatusOK, item)
}

func DeleteIntegration(c *gin.Context) {
	if err := database.DB.Delete(&integrations.Integration{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete integration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
