package service

import (
	"errors"

	"github.com/akozyreva/coursehub/internal/apperr"
	"github.com/akozyreva/coursehub/internal/dto"
	"github.com/akozyreva/coursehub/internal/model"
	"github.com/akozyreva/coursehub/internal/policy"
	"github.com/akozyreva/coursehub/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CourseService orchestrates course and theme CRUD. Every mutation resolves
// existence first, then runs the access policy, so 404 and 403 never leak
// information inconsistently.
type CourseService interface {
	Create(actor *model.User, req dto.CourseCreateDTO) (*dto.CourseDetailDTO, error)
	Get(courseID uint) (*dto.CourseDetailDTO, error)
	Update(actor *model.User, courseID uint, req dto.CourseUpdateDTO) (*dto.CourseDetailDTO, error)
	Delete(actor *model.User, courseID uint) error

	ListThemes(actor *model.User, courseID uint) ([]dto.ThemeDTO, error)
	CreateTheme(actor *model.User, courseID uint, req dto.ThemeCreateDTO) (*dto.ThemeDTO, error)
	UpdateTheme(actor *model.User, themeID uint, req dto.ThemeUpdateDTO) (*dto.ThemeDTO, error)
	DeleteTheme(actor *model.User, themeID uint) error
	// CompleteTheme records that the student finished a theme; repeating it
	// is a no-op.
	CompleteTheme(actor *model.User, themeID uint) error
}

type courseService struct {
	courseRepo     repository.CourseRepository
	themeRepo      repository.ThemeRepository
	enrollmentRepo repository.EnrollmentRepository
}

func NewCourseService(
	courseRepo repository.CourseRepository,
	themeRepo repository.ThemeRepository,
	enrollmentRepo repository.EnrollmentRepository,
) CourseService {
	return &courseService{
		courseRepo:     courseRepo,
		themeRepo:      themeRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *courseService) Create(actor *model.User, req dto.CourseCreateDTO) (*dto.CourseDetailDTO, error) {
	if !policy.CanCreateCourse(actor) {
		return nil, apperr.Forbidden("only teachers can create courses")
	}

	course := model.Course{
		OwnerID:     actor.ID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.courseRepo.Create(&course); err != nil {
		log.Error().Err(err).Uint("ownerID", actor.ID).Msg("CreateCourse: insert failed")
		return nil, apperr.Internal("error creating course", err)
	}

	log.Info().Uint("courseID", course.ID).Uint("ownerID", actor.ID).Msg("Course created")
	return courseToDetailDTO(&course), nil
}

func (s *courseService) Get(courseID uint) (*dto.CourseDetailDTO, error) {
	course, err := s.findCourseWithThemes(courseID)
	if err != nil {
		return nil, err
	}
	return courseToDetailDTO(course), nil
}

func (s *courseService) Update(actor *model.User, courseID uint, req dto.CourseUpdateDTO) (*dto.CourseDetailDTO, error) {
	course, err := s.findCourse(courseID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageCourse(actor, course) {
		return nil, apperr.Forbidden("you are not the owner of this course")
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if err := s.courseRepo.Update(course); err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("UpdateCourse: save failed")
		return nil, apperr.Internal("error updating course", err)
	}
	return courseToDetailDTO(course), nil
}

func (s *courseService) Delete(actor *model.User, courseID uint) error {
	course, err := s.findCourse(courseID)
	if err != nil {
		return err
	}
	if !policy.CanManageCourse(actor, course) {
		return apperr.Forbidden("you are not the owner of this course")
	}

	if err := s.courseRepo.Delete(course); err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("DeleteCourse: delete failed")
		return apperr.Internal("error deleting course", err)
	}
	log.Info().Uint("courseID", courseID).Uint("actorID", actor.ID).Msg("Course deleted")
	return nil
}

func (s *courseService) ListThemes(actor *model.User, courseID uint) ([]dto.ThemeDTO, error) {
	course, err := s.findCourse(courseID)
	if err != nil {
		return nil, err
	}
	if err := s.requireContentAccess(actor, course); err != nil {
		return nil, err
	}

	themes, err := s.themeRepo.ListByCourse(courseID)
	if err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("ListThemes: query failed")
		return nil, apperr.Internal("error listing themes", err)
	}

	dtos := make([]dto.ThemeDTO, 0, len(themes))
	for _, theme := range themes {
		var d dto.ThemeDTO
		copier.Copy(&d, &theme)
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *courseService) CreateTheme(actor *model.User, courseID uint, req dto.ThemeCreateDTO) (*dto.ThemeDTO, error) {
	course, err := s.findCourse(courseID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageCourse(actor, course) {
		return nil, apperr.Forbidden("you are not the owner of this course")
	}

	theme := model.Theme{
		CourseID:   courseID,
		Name:       req.Name,
		Text:       req.Text,
		IsHomework: req.IsHomework,
	}
	if err := s.themeRepo.Create(&theme); err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("CreateTheme: insert failed")
		return nil, apperr.Internal("error creating theme", err)
	}

	var d dto.ThemeDTO
	copier.Copy(&d, &theme)
	return &d, nil
}

func (s *courseService) UpdateTheme(actor *model.User, themeID uint, req dto.ThemeUpdateDTO) (*dto.ThemeDTO, error) {
	theme, err := s.findThemeWithCourse(themeID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageCourse(actor, &theme.Course) {
		return nil, apperr.Forbidden("you are not the owner of this course")
	}

	if req.Name != nil {
		theme.Name = *req.Name
	}
	if req.Text != nil {
		theme.Text = *req.Text
	}
	if req.IsHomework != nil {
		theme.IsHomework = *req.IsHomework
	}
	if err := s.themeRepo.Update(theme); err != nil {
		log.Error().Err(err).Uint("themeID", themeID).Msg("UpdateTheme: save failed")
		return nil, apperr.Internal("error updating theme", err)
	}

	var d dto.ThemeDTO
	copier.Copy(&d, theme)
	return &d, nil
}

func (s *courseService) DeleteTheme(actor *model.User, themeID uint) error {
	theme, err := s.findThemeWithCourse(themeID)
	if err != nil {
		return err
	}
	if !policy.CanManageCourse(actor, &theme.Course) {
		return apperr.Forbidden("you are not the owner of this course")
	}

	if err := s.themeRepo.Delete(theme); err != nil {
		log.Error().Err(err).Uint("themeID", themeID).Msg("DeleteTheme: delete failed")
		return apperr.Internal("error deleting theme", err)
	}
	return nil
}

func (s *courseService) CompleteTheme(actor *model.User, themeID uint) error {
	theme, err := s.findThemeWithCourse(themeID)
	if err != nil {
		return err
	}
	if actor.Role != model.RoleStudent {
		return apperr.Forbidden("only students track theme progress")
	}

	enrolled, err := s.enrollmentRepo.Exists(actor.ID, theme.CourseID)
	if err != nil {
		return apperr.Internal("error checking enrollment", err)
	}
	if !enrolled {
		return apperr.Forbidden("you are not enrolled in this course")
	}

	progress := model.ThemeProgress{
		UserID:    actor.ID,
		ThemeID:   theme.ID,
		CourseID:  theme.CourseID,
		Completed: true,
	}
	if err := s.themeRepo.UpsertProgress(&progress); err != nil {
		log.Error().Err(err).Uint("themeID", themeID).Uint("userID", actor.ID).Msg("CompleteTheme: upsert failed")
		return apperr.Internal("error saving progress", err)
	}
	return nil
}

func (s *courseService) findCourse(id uint) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("course not found")
		}
		return nil, apperr.Internal("error loading course", err)
	}
	return course, nil
}

func (s *courseService) findCourseWithThemes(id uint) (*model.Course, error) {
	course, err := s.courseRepo.FindByIDWithThemes(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("course not found")
		}
		return nil, apperr.Internal("error loading course", err)
	}
	return course, nil
}

func (s *courseService) findThemeWithCourse(id uint) (*model.Theme, error) {
	theme, err := s.themeRepo.FindByIDWithCourse(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("theme not found")
		}
		return nil, apperr.Internal("error loading theme", err)
	}
	return theme, nil
}

func (s *courseService) requireContentAccess(actor *model.User, course *model.Course) error {
	enrolled, err := s.enrollmentRepo.Exists(actor.ID, course.ID)
	if err != nil {
		return apperr.Internal("error checking enrollment", err)
	}
	if !policy.CanViewCourseContent(actor, course, enrolled) {
		return apperr.Forbidden("you are not enrolled in this course")
	}
	return nil
}

func courseToDetailDTO(course *model.Course) *dto.CourseDetailDTO {
	var d dto.CourseDetailDTO
	copier.Copy(&d, course)
	return &d
}
