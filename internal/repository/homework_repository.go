package repository

import (
	"github.com/akozyreva/coursehub/internal/model"
	"gorm.io/gorm"
)

// HomeworkFilter narrows the review-queue query. Nil fields are skipped.
type HomeworkFilter struct {
	TeacherID *uint
	StudentID *uint
	CourseID  *uint
	ThemeID   *uint
	Status    *string
	Skip      int
	Limit     int
}

type HomeworkRepository interface {
	Create(homework *model.Homework) error
	FindByID(id uint) (*model.Homework, error)
	// FindByIDWithCourse preloads theme and course for ownership checks.
	FindByIDWithCourse(id uint) (*model.Homework, error)
	ListByTheme(themeID uint) ([]model.Homework, error)
	Delete(homework *model.Homework) error
}

type homeworkRepository struct {
	db *gorm.DB
}

func NewHomeworkRepository(db *gorm.DB) HomeworkRepository {
	return &homeworkRepository{db: db}
}

func (r *homeworkRepository) Create(homework *model.Homework) error {
	return r.db.Create(homework).Error
}

func (r *homeworkRepository) FindByID(id uint) (*model.Homework, error) {
	var homework model.Homework
	err := r.db.First(&homework, id).Error
	if err != nil {
		return nil, err
	}
	return &homework, nil
}

func (r *homeworkRepository) FindByIDWithCourse(id uint) (*model.Homework, error) {
	var homework model.Homework
	err := r.db.Preload("Theme.Course").First(&homework, id).Error
	if err != nil {
		return nil, err
	}
	return &homework, nil
}

func (r *homeworkRepository) ListByTheme(themeID uint) ([]model.Homework, error) {
	var homeworks []model.Homework
	err := r.db.Where("theme_id = ?", themeID).Order("id ASC").Find(&homeworks).Error
	return homeworks, err
}

func (r *homeworkRepository) Delete(homework *model.Homework) error {
	return r.db.Delete(homework).Error
}
