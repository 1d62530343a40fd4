package model

import "time"

// Enrollment is the join row granting a student visibility into a course.
// The composite primary key rules out duplicate enrollment even under
// concurrent double-enroll attempts.
type Enrollment struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	CourseID  uint      `gorm:"primaryKey" json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}
