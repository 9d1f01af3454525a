package metrics

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UsageMetric references its organization by id only; no relation is
// declared, matching the admin surface which never joins metrics.
type UsageMetric struct {
	ID             string            `gorm:"primaryKey;type:uuid" json:"id"`
	OrganizationID string            `gorm:"type:uuid;not null;index" json:"organizationId"`
	MetricType     string            `gorm:"not null" json:"metricType"`
	Value          float64           `gorm:"not null" json:"value"`
	Period         string            `gorm:"not null" json:"period"`
	Metadata       datatypes.JSONMap `json:"metadata"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *UsageMetric) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
