package practice

import (
	"time"

	"github.com/Prathapkumar-67/aptitude-website/internal/question"
	"github.com/Prathapkumar-67/aptitude-website/internal/user"
	"github.com/google/uuid"
)

// UserAnswer is an append-only log row. IsCorrect is copied from the option
// at submission time so later edits to the option never rewrite history.
type UserAnswer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	OptionID   uint      `gorm:"not null" json:"option_id"`
	IsCorrect  bool      `gorm:"not null" json:"is_correct"`
	TimeTaken  int       `gorm:"not null" json:"time_taken"`
	AnsweredAt time.Time `gorm:"autoCreateTime" json:"answered_at"`

	User     user.User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Question question.Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	Option   question.Option   `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE" json:"-"`
}
