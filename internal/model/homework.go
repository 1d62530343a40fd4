package model

import "time"

// Homework is an assignment a teacher attaches to a homework-flagged theme.
// Students answer it through Submission rows.
type Homework struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ThemeID   uint      `gorm:"not null;index" json:"theme_id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Text      string    `gorm:"type:text" json:"text"`
	MaxScore  *int      `json:"max_score,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Theme       Theme        `gorm:"foreignKey:ThemeID" json:"-"`
	Submissions []Submission `gorm:"foreignKey:HomeworkID;constraint:OnDelete:CASCADE" json:"submissions,omitempty"`
}
