package subtopic

import (
	"time"

	"github.com/Prathapkumar-67/aptitude-website/internal/topic"
	"github.com/Prathapkumar-67/aptitude-website/internal/user"
	"github.com/google/uuid"
)

type Subtopic struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TopicID      uint       `gorm:"not null;index" json:"topic_id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	DisplayOrder int        `gorm:"not null" json:"display_order"`
	CreatedByID  *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	UpdatedByID  *uuid.UUID `gorm:"type:uuid" json:"updated_by,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Topic     topic.Topic `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedBy *user.User  `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	UpdatedBy *user.User  `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL" json:"-"`
}
