package customers

import (
	"time"

	"revenue-copilot/internal/domain/orgs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Customer struct {
	ID             string             `gorm:"primaryKey;type:uuid" json:"id"`
	OrganizationID string             `gorm:"type:uuid;not null" json:"organizationId"`
	Organization   *orgs.Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
	Email          string             `gorm:"not null" json:"email"`
	Name           *string            `json:"name"`
	ExternalID     *string            `json:"externalId"`
	Metadata       datatypes.JSONMap  `json:"metadata"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
