package integrations

import (
	"time"

	"revenue-copilot/internal/domain/orgs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// APIKey stores only the bcrypt hash of a key. The raw secret is returned
// exactly once, in the creation response; KeyPrefix is the truncated,
// non-secret derivative shown everywhere else.
type APIKey struct {
	ID             string             `gorm:"primaryKey;type:uuid" json:"id"`
	OrganizationID string             `gorm:"type:uuid;not null" json:"organizationId"`
	Organization   *orgs.Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
	Name           string             `gorm:"not null" json:"name"`
	KeyHash        string             `gorm:"not null" json:"-"`
	KeyPrefix      string             `gorm:"not null" json:"keyPrefix"`
	LastUsedAt     *time.Time         `json:"lastUsedAt"`
	ExpiresAt      *time.Time         `json:"expiresAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (k *APIKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return nil
}
