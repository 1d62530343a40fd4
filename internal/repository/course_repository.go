package repository

import (
	"github.com/akozyreva/coursehub/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(course *model.Course) error
	FindByID(id uint) (*model.Course, error)
	FindByIDWithThemes(id uint) (*model.Course, error)
	Update(course *model.Course) error
	// Delete removes the course row; themes, homework, submissions and file
	// rows go with it through the FK cascade chain.
	Delete(course *model.Course) error
	ListByOwner(ownerID uint) ([]model.Course, error)
	ListEnrolled(userID uint) ([]model.Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *model.Course) error {
	return r.db.Create(course).Error
}

func (r *courseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindByIDWithThemes(id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.Preload("Themes", func(db *gorm.DB) *gorm.DB {
		return db.Order("themes.id ASC")
	}).First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) Update(course *model.Course) error {
	return r.db.Save(course).Error
}

func (r *courseRepository) Delete(course *model.Course) error {
	return r.db.Delete(course).Error
}

func (r *courseRepository) ListByOwner(ownerID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.Where("owner_id = ?", ownerID).Order("id ASC").Find(&courses).Error
	return courses, err
}

func (r *courseRepository) ListEnrolled(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ?", userID).
		Order("courses.id ASC").
		Find(&courses).Error
	return courses, err
}
