package question

import (
	"time"

	"github.com/Prathapkumar-67/aptitude-website/internal/subtopic"
	"github.com/Prathapkumar-67/aptitude-website/internal/user"
	"github.com/google/uuid"
)

const OptionsPerQuestion = 4

type Question struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	SubtopicID  uint       `gorm:"not null;index" json:"subtopic_id"`
	Difficulty  Difficulty `gorm:"type:varchar(10);not null;index" json:"difficulty"`
	Text        string     `gorm:"type:text;not null" json:"text"`
	TimeLimit   int        `gorm:"not null;default:60" json:"time_limit"`
	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Subtopic  subtopic.Subtopic `gorm:"foreignKey:SubtopicID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedBy *user.User        `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	Options   []Option          `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

type Option struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Text       string `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"is_correct"`
}
