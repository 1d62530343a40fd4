package repository

import (
	"github.com/akozyreva/coursehub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ThemeRepository interface {
	Create(theme *model.Theme) error
	FindByID(id uint) (*model.Theme, error)
	// FindByIDWithCourse preloads the owning course so callers can run
	// ownership checks without a second query.
	FindByIDWithCourse(id uint) (*model.Theme, error)
	ListByCourse(courseID uint) ([]model.Theme, error)
	CountByCourse(courseID uint) (int64, error)
	Update(theme *model.Theme) error
	Delete(theme *model.Theme) error

	// UpsertProgress records theme completion; repeating it is a no-op
	// thanks to the (user_id, theme_id) unique index.
	UpsertProgress(progress *model.ThemeProgress) error
	CountCompleted(userID, courseID uint) (int64, error)
}

type themeRepository struct {
	db *gorm.DB
}

func NewThemeRepository(db *gorm.DB) ThemeRepository {
	return &themeRepository{db: db}
}

func (r *themeRepository) Create(theme *model.Theme) error {
	return r.db.Create(theme).Error
}

func (r *themeRepository) FindByID(id uint) (*model.Theme, error) {
	var theme model.Theme
	err := r.db.First(&theme, id).Error
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

func (r *themeRepository) FindByIDWithCourse(id uint) (*model.Theme, error) {
	var theme model.Theme
	err := r.db.Preload("Course").First(&theme, id).Error
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

func (r *themeRepository) ListByCourse(courseID uint) ([]model.Theme, error) {
	var themes []model.Theme
	err := r.db.Where("course_id = ?", courseID).Order("id ASC").Find(&themes).Error
	return themes, err
}

func (r *themeRepository) CountByCourse(courseID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Theme{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}

func (r *themeRepository) Update(theme *model.Theme) error {
	return r.db.Save(theme).Error
}

func (r *themeRepository) Delete(theme *model.Theme) error {
	return r.db.Delete(theme).Error
}

func (r *themeRepository) UpsertProgress(progress *model.ThemeProgress) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "theme_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
	}).Create(progress).Error
}

func (r *themeRepository) CountCompleted(userID, courseID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.ThemeProgress{}).
		Where("user_id = ? AND course_id = ? AND completed = ?", userID, courseID, true).
		Count(&count).Error
	return count, err
}
