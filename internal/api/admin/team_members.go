package admin

import (
	"errors"
	"net/http"

	"revenue-copilot/database"
	"revenue-copilot/internal/domain/orgs"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListTeamMembers(c *gin.Context) {
	var items []orgs.TeamMember
	if err := database.DB.Preload("User").Preload("Organization").Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load team members"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateTeamMember(c *gin.Context) {
	var input struct {
		UserID         string `json:"userId" binding:"required"`
		OrganizationID string `json:"organizationId" binding:"required"`
		Role           string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	if input.Role == "" {
		input.Role = "member"
	}

	item := orgs.TeamMember{
		UserID:         input.UserID,
		OrganizationID: input.OrganizationID,
		Role:           input.Role,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		persistError(c, err, "Team member already exists", "Failed to create team member")
		return
	}

	database.DB.Preload("User").Preload("Organization").First(&item, "id = ?", item.ID)
	c.JSON(http.StatusCreated, item)
}

func GetTeamMember(c *gin.Context) {
	var item orgs.TeamMember
	if err := database.DB.Preload("User").Preload("Organization").First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load team member"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func UpdateTeamMember(c *gin.Context) {
	var input struct {
		UserID         *string `json:"userId"`
		OrganizationID *string `json:"organizationId"`
		Role           *string `json:"role" binding:"omitempty,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	var item orgs.TeamMember
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load team members"})
		return
	}

	updates := map[string]any{}
	if input.UserID != nil {
		updates["user_id"] = *input.UserID
	}
	if input.OrganizationID != nil {
		updates["organization_id"] = *input.OrganizationID
	}
	if input.Role != nil {
		updates["role"] = *input.Role
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			persistError(c, err, "Team member already exists", "Failed to update team member")
			return
		}
	}

	database.DB.Preload("User").Preload("Organization").First(&item, "id = ?", item.ID)
	c.JSON(http.StatusOK, item)
}

func DeleteTeamMember(c *gin.Context) {
	if err := database.DB.Delete(&orgs.TeamMember{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
