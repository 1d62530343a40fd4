package repository

import (
	"github.com/akozyreva/coursehub/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.Submission) error
	FindByID(id uint) (*model.Submission, error)
	// FindByIDWithCourse preloads the homework -> theme -> course chain so
	// the grading path can resolve the course owner in one query.
	FindByIDWithCourse(id uint) (*model.Submission, error)
	FindByHomeworkAndStudent(homeworkID, studentID uint) (*model.Submission, error)
	ListByStudent(studentID uint, themeID *uint, skip, limit int) ([]model.Submission, error)
	// ListForReview returns submissions on courses owned by the teacher,
	// optionally narrowed by course, theme, status or student.
	ListForReview(filter HomeworkFilter) ([]model.Submission, error)
	Update(submission *model.Submission) error
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindByIDWithCourse(id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.Preload("Homework.Theme.Course").Preload("Files").First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindByHomeworkAndStudent(homeworkID, studentID uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.Where("homework_id = ? AND student_id = ?", homeworkID, studentID).First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) ListByStudent(studentID uint, themeID *uint, skip, limit int) ([]model.Submission, error) {
	query := r.db.
		Joins("JOIN homeworks ON homeworks.id = submissions.homework_id").
		Where("submissions.student_id = ?", studentID)
	if themeID != nil {
		query = query.Where("homeworks.theme_id = ?", *themeID)
	}

	var submissions []model.Submission
	err := query.Order("submissions.id ASC").Offset(skip).Limit(limit).Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) ListForReview(filter HomeworkFilter) ([]model.Submission, error) {
	query := r.db.
		Joins("JOIN homeworks ON homeworks.id = submissions.homework_id").
		Joins("JOIN themes ON themes.id = homeworks.theme_id").
		Joins("JOIN courses ON courses.id = themes.course_id")

	if filter.TeacherID != nil {
		query = query.Where("courses.owner_id = ?", *filter.TeacherID)
	}
	if filter.CourseID != nil {
		query = query.Where("themes.course_id = ?", *filter.CourseID)
	}
	if filter.ThemeID != nil {
		query = query.Where("homeworks.theme_id = ?", *filter.ThemeID)
	}
	if filter.Status != nil {
		query = query.Where("submissions.status = ?", *filter.Status)
	}
	if filter.StudentID != nil {
		query = query.Where("submissions.student_id = ?", *filter.StudentID)
	}

	var submissions []model.Submission
	err := query.Order("submissions.id ASC").Offset(filter.Skip).Limit(filter.Limit).Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) Update(submission *model.Submission) error {
	return r.db.Save(submission).Error
}
