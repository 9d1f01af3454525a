package billing

import (
	"time"

	"revenue-copilot/internal/domain/customers"
	"revenue-copilot/internal/domain/orgs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	InvoiceDraft     = "draft"
	InvoiceSent      = "sent"
	InvoicePaid      = "paid"
	InvoiceCancelled = "cancelled"
	InvoiceOverdue   = "overdue"
)

type Invoice struct {
	ID             string              `gorm:"primaryKey;type:uuid" json:"id"`
	OrganizationID string              `gorm:"type:uuid;not null" json:"organizationId"`
	Organization   *orgs.Organization  `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
	CustomerID     *string             `gorm:"type:uuid" json:"customerId"`
	Customer       *customers.Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"customer,omitempty"`
	Number         string              `gorm:"not null;uniqueIndex:idx_invoices_number" json:"number"`
	Amount         float64             `gorm:"not null" json:"amount"`
	Currency       string              `gorm:"not null;default:'USD'" json:"currency"`
	Status         string              `gorm:"not null;default:'draft'" json:"status"`
	DueDate        *time.Time          `json:"dueDate"`
	PaidAt         *time.Time          `json:"paidAt"`
	ExternalID     *string             `json:"externalId"`
	Metadata       datatypes.JSONMap   `json:"metadata"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
