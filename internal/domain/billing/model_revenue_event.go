package billing

import (
	"time"

	"revenue-copilot/internal/domain/customers"
	"revenue-copilot/internal/domain/orgs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RevenueEvent is a signed ledger entry; negative amounts record refunds
// and credits.
type RevenueEvent struct {
	ID             string              `gorm:"primaryKey;type:uuid" json:"id"`
	OrganizationID string              `gorm:"type:uuid;not null" json:"organizationId"`
	Organization   *orgs.Organization  `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
	CustomerID     *string             `gorm:"type:uuid" json:"customerId"`
	Customer       *customers.Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"customer,omitempty"`
	Amount         float64             `gorm:"not null" json:"amount"`
	Currency       string              `gorm:"not null;default:'USD'" json:"currency"`
	Type           string              `gorm:"not null" json:"type"`
	Description    *string             `json:"description"`
	Metadata       datatypes.JSONMap   `json:"metadata"`
	EffectiveDate  time.Time           `gorm:"not null" json:"effectiveDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e *RevenueEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
