package admin

import (
	"errors"
	"net/http"

	"revenue-copilot/database"
	"revenue-copilot/internal/domain/customers"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func ListCustomers(c *gin.Context) {
	var items []customers.Customer
	if err := database.DB.Preload("Organization").Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load customers"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateCustomer(c *gin.Context) {
	var input struct {
		OrganizationID string            `json:"organizationId" binding:"required"`
		Email          string            `json:"email" binding:"required,email"`
		Name           *string           `json:"name"`
		ExternalID     *string           `json:"externalId"`
		Metadata       datatypes.JSONMap `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	item := customers.Customer{
		OrganizationID: input.OrganizationID,
		Email:          input.Email,
		Name:           input.Name,
		ExternalID:     input.ExternalID,
		Metadata:       input.Metadata,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		persistError(c, err, "Customer already exists", "Failed to create customer")
		return
	}

	database.DB.Preload("Organization").First(&item, "id = ?", item.ID)
	c.JSON(http.StatusCreated, item)
}

func GetCustomer(c *gin.Context) {
	var item customers.Customer
	if err := database.DB.Preload("Organization").First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load customer"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func UpdateCustomer(c *gin.Context) {
	var input struct {
		OrganizationID *string            `json:"organizationId"`
		Email          *string            `json:"email" binding:"omitempty,email"`
		Name           *string            `json:"name"`
		ExternalID     *string            `json:"externalId"`
		Metadata       *datatypes.JSONMap `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	var item customers.Customer
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load customers"})
		return
	}

	updates := map[string]any{}
	if input.OrganizationID != nil {
		updates["organization_id"] = *input.OrganizationID
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.ExternalID != nil {
		updates["external_id"] = *input.ExternalID
	}
	if input.Metadata != nil {
		updates["metadata"] = *input.Metadata
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			persistError(c, err, "Customer already exists", "Failed to update customer")
			return
		}
	}

	database.DB.Preload("Organization").First(&item, "id = ?", item.ID)
	c.JSON(http.StatusOK, item)
}

func DeleteCustomer(c *gin.Context) {
	if err := database.DB.Delete(&customers.Customer{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
