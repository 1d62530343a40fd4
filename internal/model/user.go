package model

import "time"

// Role is the closed set of user roles. The legacy API exposed a boolean
// is_teacher flag; it is mapped onto this enum at registration and never
// changes afterwards.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	FullName       string    `gorm:"size:100;not null" json:"full_name"`
	Email          string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"size:256;not null" json:"-"`
	Role           Role      `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	OwnedCourses    []Course `gorm:"foreignKey:OwnerID" json:"-"`
	EnrolledCourses []Course `gorm:"many2many:enrollments" json:"-"`
}

func (u User) IsTeacher() bool { return u.Role == RoleTeacher }

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// RoleFromLegacy maps the old is_teacher boolean onto the role enum.
func RoleFromLegacy(isTeacher bool) Role {
	if isTeacher {
		return RoleTeacher
	}
	return RoleStudent
}
