package model

import "time"

const (
	// SubmissionStatusSubmitted: answered but not yet graded.
	SubmissionStatusSubmitted = "submitted"
	// SubmissionStatusGraded: the course owner assigned a score.
	SubmissionStatusGraded = "graded"
)

// Submission is a student's answer to a homework. The unique index on
// (homework_id, student_id) enforces one submission per pair; a second
// attempt is rejected as a conflict.
type Submission struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	HomeworkID     uint      `gorm:"uniqueIndex:idx_homework_student;not null" json:"homework_id"`
	StudentID      uint      `gorm:"uniqueIndex:idx_homework_student;not null" json:"student_id"`
	Answer         string    `gorm:"type:text;not null" json:"answer"`
	SubmittedAt    time.Time `gorm:"autoCreateTime" json:"submitted_at"`
	Score          *int      `json:"score,omitempty"`
	TeacherComment string    `gorm:"type:text" json:"teacher_comment,omitempty"`
	Status         string    `gorm:"size:32;not null;default:'submitted'" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Homework Homework         `gorm:"foreignKey:HomeworkID" json:"-"`
	Student  User             `gorm:"foreignKey:StudentID" json:"-"`
	Files    []SubmissionFile `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"files,omitempty"`
}

func (s Submission) IsGraded() bool { return s.Status == SubmissionStatusGraded }
