package plans

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TypeIndividual = "INDIVIDUAL"
	TypeTeam       = "TEAM"
	TypeEnterprise = "ENTERPRISE"
)

type Plan struct {
	ID       string            `gorm:"primaryKey;type:uuid" json:"id"`
	Name     string            `gorm:"not null" json:"name"`
	Type     string            `gorm:"type:varchar(20);not null" json:"type"`
	Price    float64           `gorm:"not null" json:"price"`
	Currency string            `gorm:"not null;default:'USD'" json:"currency"`
	Interval string            `gorm:"not null;default:'month'" json:"interval"`
	Features datatypes.JSONMap `json:"features"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
