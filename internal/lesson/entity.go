package lesson

import (
	"time"

	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
	"github.com/Prathapkumar-67/aptitude-website/internal/user"
	"github.com/google/uuid"
)

// VideoLesson is the taught video for a subtopic. A subtopic may hold several,
// but the lesson page surfaces the first one by id.
type VideoLesson struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	SubtopicID  uint       `gorm:"not null;index" json:"subtopic_id"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	VideoURL    string     `gorm:"type:text;not null" json:"video_url"`
	Duration    int        `gorm:"not null" json:"duration"`
	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	UpdatedByID *uuid.UUID `gorm:"type:uuid" json:"updated_by,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Subtopic  subtopic.Subtopic `gorm:"foreignKey:SubtopicID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedBy *user.User        `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	UpdatedBy *user.User        `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL" json:"-"`
}

// Note is written study material. FileURL points at an externally stored
// document and may be empty.
type Note struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	SubtopicID  uint       `gorm:"not null;index" json:"subtopic_id"`
	Heading     string     `gorm:"type:varchar(200);not null" json:"heading"`
	Content     string     `gorm:"type:text" json:"content"`
	FileURL     *string    `gorm:"type:text" json:"file_url,omitempty"`
	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	UpdatedByID *uuid.UUID `gorm:"type:uuid" json:"updated_by,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Subtopic  subtopic.Subtopic `gorm:"foreignKey:SubtopicID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedBy *user.User        `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	UpdatedBy *user.User        `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL" json:"-"`
}

// Resource is an external reference link.
type Resource struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	SubtopicID  uint       `gorm:"not null;index" json:"subtopic_id"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Link        string     `gorm:"type:text;not null" json:"link"`
	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	UpdatedByID *uuid.UUID `gorm:"type:uuid" json:"updated_by,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Subtopic  subtopic.Subtopic `gorm:"foreignKey:SubtopicID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedBy *user.User        `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	UpdatedBy *user.User        `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL" json:"-"`
}
