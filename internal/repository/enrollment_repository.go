package repository

import (
	"github.com/akozyreva/coursehub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository interface {
	Exists(userID, courseID uint) (bool, error)
	// Create inserts the association row. ON CONFLICT DO NOTHING makes the
	// insert safe under concurrent double-enroll attempts; the composite
	// primary key is the backstop.
	Create(enrollment *model.Enrollment) error
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Exists(userID, courseID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *enrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(enrollment).Error
}
