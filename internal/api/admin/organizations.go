package admin

import (
	"errors"
	"net/http"

	"revenue-copilot/database"
	"revenue-copilot/internal/domain/orgs"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListOrganizations(c *gin.Context) {
	var items []orgs.Organization
	if err := database.DB.Preload("Owner").Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load organizations"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateOrganization(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Slug    string `json:"slug" binding:"required"`
		OwnerID string `json:"ownerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	item := orgs.Organization{Name: input.Name, Slug: input.Slug, OwnerID: input.OwnerID}
	if err := database.DB.Create(&item).Error; err != nil {
		persistError(c, err, "An organization with this slug already exists", "Failed to create organization")
		return
	}

	database.DB.Preload("Owner").First(&item, "id = ?", item.ID)
	c.JSON(http.StatusCreated, item)
}

func GetOrganization(c *gin.Context) {
	var item orgs.Organization
	if err := database.DB.Preload("Owner").First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load organization"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func UpdateOrganization(c *gin.Context) {
	var input struct {
		Name    *string `json:"name" binding:"omitempty,min=1"`
		Slug    *string `json:"slug" binding:"omitempty,min=1"`
		OwnerID *string `json:"ownerId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	var item orgs.Organization
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load organizations"})
		return
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Slug != nil {
		updates["slug"] = *input.Slug
	}
	if input.OwnerID != nil {
		updates["owner_id"] = *input.OwnerID
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			persistError(c, err, "An organization with this slug already exists", "Failed to update organization")
			return
		}
	}

	database.DB.Preload("Owner").First(&item, "id = ?", item.ID)
	c.JSON(http.StatusOK, item)
}

func DeleteOrganization(c *gin.Context) {
	if err := database.DB.Delete(&orgs.Organization{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete organization"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
