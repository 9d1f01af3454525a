package billing

import (
	"time"

	"revenue-copilot/internal/domain/orgs"
	"revenue-copilot/internal/domain/plans"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subscription struct {
	ID                 string             `gorm:"primaryKey;type:uuid" json:"id"`
	OrganizationID     string             `gorm:"type:uuid;not null" json:"organizationId"`
	Organization       *orgs.Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
	PlanID             string             `gorm:"type:uuid;not null" json:"planId"`
	Plan               *plans.Plan        `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	Status             string             `gorm:"not null;default:'active'" json:"status"`
	CurrentPeriodStart time.Time          `gorm:"not null" json:"currentPeriodStart"`
	CurrentPeriodEnd   time.Time          `gorm:"not null" json:"currentPeriodEnd"`
	ExternalID         *string            `json:"externalId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
