package model

import "time"

type Theme struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CourseID   uint      `gorm:"not null;index" json:"course_id"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	Text       string    `gorm:"type:text" json:"text"`
	IsHomework bool      `gorm:"not null;default:false" json:"is_homework"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Course    Course      `gorm:"foreignKey:CourseID" json:"-"`
	Homeworks []Homework  `gorm:"foreignKey:ThemeID;constraint:OnDelete:CASCADE" json:"homeworks,omitempty"`
	Files     []ThemeFile `gorm:"foreignKey:ThemeID;constraint:OnDelete:CASCADE" json:"files,omitempty"`
}

// ThemeProgress records that a user finished a theme. One row per
// (user, theme); course progress is computed by counting them.
type ThemeProgress struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_theme;not null" json:"user_id"`
	ThemeID   uint      `gorm:"uniqueIndex:idx_user_theme;not null" json:"theme_id"`
	CourseID  uint      `gorm:"index;not null" json:"course_id"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	UpdatedAt time.Time `json:"completed_at"`
}
