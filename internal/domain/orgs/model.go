package orgs

import (
	"time"

	"revenue-copilot/internal/domain/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Organization struct {
	ID      string      `gorm:"primaryKey;type:uuid" json:"id"`
	Name    string      `gorm:"not null" json:"name"`
	Slug    string      `gorm:"not null;uniqueIndex:idx_organizations_slug" json:"slug"`
	OwnerID string      `gorm:"type:uuid;not null" json:"ownerId"`
	Owner   *users.User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// TeamMember links a user to an organization with an org-level role.
type TeamMember struct {
	ID             string        `gorm:"primaryKey;type:uuid" json:"id"`
	UserID         string        `gorm:"type:uuid;not null" json:"userId"`
	User           *users.User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	OrganizationID string        `gorm:"type:uuid;not null" json:"organizationId"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
	Role           string        `gorm:"not null;default:'member'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
