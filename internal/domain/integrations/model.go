package integrations

import (
	"time"

	"revenue-copilot/internal/domain/orgs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TypeStripe  = "STRIPE"
	TypeBilling = "BILLING"
	TypeCustom  = "CUSTOM"
)

// Integration holds a provider connection for an organization. Config is
// opaque and may contain credentials, so it is stored as-is and never
// inspected beyond being a JSON object.
type Integration struct {
	ID             string             `gorm:"primaryKey;type:uuid" json:"id"`
	OrganizationID string             `gorm:"type:uuid;not null" json:"organizationId"`
	Organization   *orgs.Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
	Type           string             `gorm:"type:varchar(20);not null" json:"type"`
	Name           string             `gorm:"not null" json:"name"`
	Config         datatypes.JSONMap  `json:"config"`
	// no column default: GORM would skip the column on insert when the
	// struct holds false; absent input is defaulted in the handler instead
	IsActive bool `gorm:"not null" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *Integration) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
