package dto

import "time"

type HomeworkCreateDTO struct {
	Title    string `json:"title" binding:"required,max=200"`
	Text     string `json:"text" binding:"required"`
	MaxScore *int   `json:"max_score" binding:"omitempty,gt=0"`
}

type HomeworkDTO struct {
	ID        uint      `json:"id"`
	ThemeID   uint      `json:"theme_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	MaxScore  *int      `json:"max_score,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SubmissionCreateDTO struct {
	Answer string `json:"answer" binding:"required"`
}

// GradeDTO is the teacher's verdict on a submission. Score bounds against the
// homework's max_score are enforced in the service, not here, because
// max_score is per-homework.
type GradeDTO struct {
	Score          int    `json:"score" binding:"min=0"`
	TeacherComment string `json:"teacher_comment"`
}

type SubmissionDTO struct {
	ID             uint      `json:"id"`
	HomeworkID     uint      `json:"homework_id"`
	StudentID      uint      `json:"student_id"`
	Answer         string    `json:"answer"`
	SubmittedAt    time.Time `json:"submitted_at"`
	Score          *int      `json:"score,omitempty"`
	TeacherComment string    `json:"teacher_comment,omitempty"`
	Status         string    `json:"status"`
	Files          []string  `json:"files,omitempty"`
}

// ReviewFilterDTO narrows the teacher's grading queue.
type ReviewFilterDTO struct {
	CourseID  *uint   `form:"course_id"`
	ThemeID   *uint   `form:"theme_id"`
	Status    *string `form:"status" binding:"omitempty,oneof=submitted graded"`
	StudentID *uint   `form:"student_id"`
	Skip      int     `form:"skip,default=0" binding:"min=0"`
	Limit     int     `form:"limit,default=10" binding:"min=1,max=100"`
}
