package model

import "time"

// ThemeFile is a material attached to a theme. Rows go away with the theme;
// physical storage is handled outside this service.
type ThemeFile struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ThemeID   uint      `gorm:"not null;index" json:"theme_id"`
	FilePath  string    `gorm:"type:text;not null" json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmissionFile is an attachment on a homework submission.
type SubmissionFile struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	SubmissionID uint      `gorm:"not null;index" json:"submission_id"`
	FilePath     string    `gorm:"type:text;not null" json:"file_path"`
	CreatedAt    time.Time `json:"created_at"`
}
