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

// EnrollmentService handles course membership and progress.
type EnrollmentService interface {
	// Enroll is idempotent: enrolling twice reports already=true and
	// leaves a single association row.
	Enroll(actor *model.User, courseID uint) (already bool, err error)
	// ListCoursesFor branches on role: teachers see owned courses,
	// students see enrolled ones. Ordered by id ascending.
	ListCoursesFor(actor *model.User) ([]dto.CourseSummaryDTO, error)
	// Progress reports the actor's own completion for a course.
	Progress(actor *model.User, courseID uint) (*dto.ProgressDTO, error)
	// StudentProgress lets the course owner inspect one student.
	StudentProgress(actor *model.User, courseID, studentID uint) (*dto.ProgressDTO, error)
}

type enrollmentService struct {
	courseRepo     repository.CourseRepository
	themeRepo      repository.ThemeRepository
	enrollmentRepo repository.EnrollmentRepository
	userRepo       repository.UserRepository
}

func NewEnrollmentService(
	courseRepo repository.CourseRepository,
	themeRepo repository.ThemeRepository,
	enrollmentRepo repository.EnrollmentRepository,
	userRepo repository.UserRepository,
) EnrollmentService {
	return &enrollmentService{
		courseRepo:     courseRepo,
		themeRepo:      themeRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
	}
}

func (s *enrollmentService) Enroll(actor *model.User, courseID uint) (bool, error) {
	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperr.NotFound("course not found")
		}
		return false, apperr.Internal("error loading course", err)
	}
	if actor.Role != model.RoleStudent {
		return false, apperr.Forbidden("only students can enroll in courses")
	}

	enrolled, err := s.enrollmentRepo.Exists(actor.ID, course.ID)
	if err != nil {
		return false, apperr.Internal("error checking enrollment", err)
	}
	if enrolled {
		return true, nil
	}

	enrollment := model.Enrollment{UserID: actor.ID, CourseID: course.ID}
	if err := s.enrollmentRepo.Create(&enrollment); err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Uint("userID", actor.ID).Msg("Enroll: insert failed")
		return false, apperr.Internal("error enrolling", err)
	}

	log.Info().Uint("courseID", courseID).Uint("userID", actor.ID).Msg("Student enrolled")
	return false, nil
}

func (s *enrollmentService) ListCoursesFor(actor *model.User) ([]dto.CourseSummaryDTO, error) {
	var (
		courses []model.Course
		err     error
	)
	if actor.IsTeacher() || actor.IsAdmin() {
		courses, err = s.courseRepo.ListByOwner(actor.ID)
	} else {
		courses, err = s.courseRepo.ListEnrolled(actor.ID)
	}
	if err != nil {
		log.Error().Err(err).Uint("userID", actor.ID).Msg("ListCoursesFor: query failed")
		return nil, apperr.Internal("error listing courses", err)
	}

	dtos := make([]dto.CourseSummaryDTO, 0, len(courses))
	for _, course := range courses {
		var d dto.CourseSummaryDTO
		copier.Copy(&d, &course)
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *enrollmentService) Progress(actor *model.User, courseID uint) (*dto.ProgressDTO, error) {
	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("course not found")
		}
		return nil, apperr.Internal("error loading course", err)
	}

	enrolled, err := s.enrollmentRepo.Exists(actor.ID, course.ID)
	if err != nil {
		return nil, apperr.Internal("error checking enrollment", err)
	}
	if !policy.CanViewCourseContent(actor, course, enrolled) {
		return nil, apperr.Forbidden("you are not enrolled in this course")
	}

	return s.computeProgress(actor, course)
}

func (s *enrollmentService) StudentProgress(actor *model.User, courseID, studentID uint) (*dto.ProgressDTO, error) {
	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("course not found")
		}
		return nil, apperr.Internal("error loading course", err)
	}
	if !policy.CanManageCourse(actor, course) {
		return nil, apperr.Forbidden("you are not the owner of this course")
	}

	student, err := s.userRepo.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("student not found")
		}
		return nil, apperr.Internal("error loading student", err)
	}

	return s.computeProgress(student, course)
}

// computeProgress counts completed vs total themes. A course with no themes
// reports zero percent rather than dividing by zero.
func (s *enrollmentService) computeProgress(user *model.User, course *model.Course) (*dto.ProgressDTO, error) {
	total, err := s.themeRepo.CountByCourse(course.ID)
	if err != nil {
		return nil, apperr.Internal("error counting themes", err)
	}
	completed, err := s.themeRepo.CountCompleted(user.ID, course.ID)
	if err != nil {
		return nil, apperr.Internal("error counting completed themes", err)
	}

	percentage := 0.0
	if total > 0 {
		percentage = float64(completed) / float64(total) * 100
	}

	return &dto.ProgressDTO{
		StudentID:          user.ID,
		StudentName:        user.FullName,
		CourseID:           course.ID,
		CourseName:         course.Name,
		CompletedThemes:    int(completed),
		TotalThemes:        int(total),
		ProgressPercentage: percentage,
	}, nil
}
