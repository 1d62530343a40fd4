package model

import "time"

type Course struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Owner    User    `gorm:"foreignKey:OwnerID" json:"-"`
	Themes   []Theme `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"themes,omitempty"`
	Students []User  `gorm:"many2many:enrollments" json:"-"`
}
