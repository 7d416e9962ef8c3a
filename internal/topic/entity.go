package topic

import (
	"time"

	"github.com/Prathapkumar-67/aptitude-website/internal/user"
	"github.com/google/uuid"
)

type Topic struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Category     Category   `gorm:"type:varchar(20);not null;index" json:"category"`
	DisplayOrder int        `gorm:"not null" json:"display_order"`
	CreatedByID  *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	UpdatedByID  *uuid.UUID `gorm:"type:uuid" json:"updated_by,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	CreatedBy *user.User `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	UpdatedBy *user.User `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL" json:"-"`
}
