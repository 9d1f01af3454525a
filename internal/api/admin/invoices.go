package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"revenue-copilot/database"
	"revenue-copilot/internal/domain/billing"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func ListInvoices(c *gin.Context) {
	var items []billing.Invoice
	if err := database.DB.Preload("Organization").Preload("Customer").Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoices"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateInvoice(c *gin.Context) {
	var input struct {
		OrganizationID string            `json:"organizationId" binding:"required"`
		CustomerID     *string           `json:"customerId"`
		Number         string            `json:"number" binding:"required"`
		Amount         *float64          `json:"amount" binding:"required"`
		Currency       string            `json:"currency"`
		Status         string            `json:"status" binding:"omitempty,oneof=draft sent paid cancelled overdue"`
		DueDate        *string           `json:"dueDate"`
		PaidAt         *string           `json:"paidAt"`
		ExternalID     *string           `json:"externalId"`
		Metadata       datatypes.JSONMap `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	if input.Currency == "" {
		input.Currency = "USD"
	}
	if input.Status == "" {
		input.Status = billing.InvoiceDraft
	}

	item := billing.Invoice{
		OrganizationID: input.OrganizationID,
		CustomerID:     input.CustomerID,
		Number:         input.Number,
		Amount:         *input.Amount,
		Currency:       input.Currency,
		Status:         input.Status,
		ExternalID:     input.ExternalID,
		Metadata:       input.Metadata,
	}
	if input.DueDate != nil {
		due, err := parseDate(*input.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"fields": gin.H{"dueDate": "must be an ISO-8601 timestamp"}}})
			return
		}
		item.DueDate = &due
	}
	if input.PaidAt != nil {
		paid, err := parseDate(*input.PaidAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"fields": gin.H{"paidAt": "must be an ISO-8601 timestamp"}}})
			return
		}
		item.PaidAt = &paid
	}

	if err := database.DB.Create(&item).Error; err != nil {
		persistError(c, err, "An invoice with this number already exists", "Failed to create invoice")
		return
	}

	database.DB.Preload("Organization").Preload("Customer").First(&item, "id = ?", item.ID)
	c.JSON(http.StatusCreated, item)
}

func GetInvoice(c *gin.Context) {
	var item billing.Invoice
	if err := database.DB.Preload("Organization").Preload("Customer").First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoice"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func UpdateInvoice(c *gin.Context) {
	var input struct {
		OrganizationID *string            `json:"organizationId"`
		CustomerID     *string            `json:"customerId"`
		Number         *string            `json:"number" binding:"omitempty,min=1"`
		Amount         *float64           `json:"amount"`
		Currency       *string            `json:"currency"`
		Status         *string            `json:"status" binding:"omitempty,oneof=draft sent paid cancelled overdue"`
		DueDate        json.RawMessage    `json:"dueDate"`
		PaidAt         json.RawMessage    `json:"paidAt"`
		ExternalID     *string            `json:"externalId"`
		Metadata       *datatypes.JSONMap `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	var item billing.Invoice
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoices"})
		return
	}

	updates := map[string]any{}
	if input.OrganizationID != nil {
		updates["organization_id"] = *input.OrganizationID
	}
	if input.CustomerID != nil {
		updates["customer_id"] = *input.CustomerID
	}
	if input.Number != nil {
		updates["number"] = *input.Number
	}
	if input.Amount != nil {
		updates["amount"] = *input.Amount
	}
	if input.Currency != nil {
		updates["currency"] = *input.Currency
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.ExternalID != nil {
		updates["external_id"] = *input.ExternalID
	}
	if input.Metadata != nil {
		updates["metadata"] = *input.Metadata
	}
	if set, due, err := optionalDate(input.DueDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"fields": gin.H{"dueDate": "must be an ISO-8601 timestamp or null"}}})
		return
	} else if set {
		updates["due_date"] = due
	}
	if set, paid, err := optionalDate(input.PaidAt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"fields": gin.H{"paidAt": "must be an ISO-8601 timestamp or null"}}})
		return
	} else if set {
		updates["paid_at"] = paid
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			persistError(c, err, "An invoice with this number already exists", "Failed to update invoice")
			return
		}
	}

	database.DB.Preload("Organization").Preload("Customer").First(&item, "id = ?", item.ID)
	c.JSON(http.StatusOK, item)
}

func DeleteInvoice(c *gin.Context) {
	if err := database.DB.Delete(&billing.Invoice{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoice"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
