package dto

import "time"

type CourseCreateDTO struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
}

type CourseUpdateDTO struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description"`
}

// CourseSummaryDTO is the list-view shape for /courses/my.
type CourseSummaryDTO struct {
	ID          uint      `json:"id"`
	OwnerID     uint      `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CourseDetailDTO struct {
	ID          uint       `json:"id"`
	OwnerID     uint       `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Themes      []ThemeDTO `json:"themes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ProgressDTO reports how far a student is through a course.
type ProgressDTO struct {
	StudentID          uint    `json:"student_id"`
	StudentName        string  `json:"student_name,omitempty"`
	CourseID           uint    `json:"course_id"`
	CourseName         string  `json:"course_name"`
	CompletedThemes    int     `json:"completed_themes"`
	TotalThemes        int     `json:"total_themes"`
	ProgressPercentage float64 `json:"progress_percentage"`
}
