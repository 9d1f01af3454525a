package admin

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"revenue-copilot/database"
	"revenue-copilot/internal/domain/integrations"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const keyPrefixLen = 12

// generateAPIKey returns the raw secret, its bcrypt hash, and the display
// prefix. The raw secret leaves this process exactly once, in the creation
// response.
func generateAPIKey() (raw, hash, prefix string, err error) {
	b := make([]byte, 32)
	if _, err = rand.Read(b); err != nil {
		return "", "", "", err
	}
	raw = "rcp_" + hex.EncodeToString(b)

	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", "", "", err
	}

	return raw, string(hashed), raw[:keyPrefixLen] + "...", nil
}

func ListAPIKeys(c *gin.Context) {
	var items []integrations.APIKey
	if err := database.DB.Preload("Organization").Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load API keys"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateAPIKey(c *gin.Context) {
	var input struct {
		OrganizationID string  `json:"organizationId" binding:"required"`
		Name           string  `json:"name" binding:"required"`
		ExpiresAt      *string `json:"expiresAt"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	raw, hash, prefix, err := generateAPIKey()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate key"})
		return
	}

	item := integrations.APIKey{
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		KeyHash:        hash,
		KeyPrefix:      prefix,
	}
	if input.ExpiresAt != nil {
		expires, err := parseDate(*input.ExpiresAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"fields": gin.H{"expiresAt": "must be an ISO-8601 timestamp"}}})
			return
		}
		item.ExpiresAt = &expires
	}

	if err := database.DB.Create(&item).Error; err != nil {
		persistError(c, err, "API key already exists", "Failed to create API key")
		return
	}

	database.DB.Preload("Organization").First(&item, "id = ?", item.ID)

	// the only response that ever carries the unhashed secret
	c.JSON(http.StatusCreated, struct {
		integrations.APIKey
		RawKey string `json:"rawKey"`
	}{item, raw})
}

func GetAPIKey(c *gin.Context) {
	var item integrations.APIKey
	if err := database.DB.Preload("Organization").First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load API key"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func UpdateAPIKey(c *gin.Context) {
	var input struct {
		OrganizationID *string         `json:"organizationId"`
		Name           *string         `json:"name" binding:"omitempty,min=1"`
		ExpiresAt      json.RawMessage `json:"expiresAt"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	var item integrations.APIKey
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load API keys"})
		return
	}

	updates := map[string]any{}
	if input.OrganizationID != nil {
		updates["organization_id"] = *input.OrganizationID
	}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if set, expires, err := optionalDate(input.ExpiresAt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"fields": gin.H{"expiresAt": "must be an ISO-8601 timestamp or null"}}})
		return
	} else if set {
		updates["expires_at"] = expires
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			persistError(c, err, "API key already exists", "Failed to update API key")
			return
		}
	}

	database.DB.Preload("Organization").First(&item, "id = ?", item.ID)
	c.JSON(http.StatusOK, item)
}

func DeleteAPIKey(c *gin.Context) {
	if err := database.DB.Delete(&integrations.APIKey{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete API key"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
