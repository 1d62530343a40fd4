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

// HomeworkService drives the homework lifecycle: a teacher attaches homework
// to a theme, an enrolled student submits once, the course owner grades and
// may re-grade. Existence checks always run before authorization checks.
type HomeworkService interface {
	CreateHomework(actor *model.User, themeID uint, req dto.HomeworkCreateDTO) (*dto.HomeworkDTO, error)
	ListForTheme(actor *model.User, themeID uint) ([]dto.HomeworkDTO, error)
	DeleteHomework(actor *model.User, homeworkID uint) error

	// Submit creates the student's answer. A second submission for the same
	// homework is rejected with a conflict.
	Submit(actor *model.User, homeworkID uint, req dto.SubmissionCreateDTO) (*dto.SubmissionDTO, error)
	MySubmission(actor *model.User, homeworkID uint) (*dto.SubmissionDTO, error)
	MySubmissions(actor *model.User, themeID *uint, skip, limit int) ([]dto.SubmissionDTO, error)

	// Grade sets score and comment. Re-grading overwrites them; UpdatedAt
	// records when.
	Grade(actor *model.User, submissionID uint, req dto.GradeDTO) (*dto.SubmissionDTO, error)
	ReviewQueue(actor *model.User, filter dto.ReviewFilterDTO) ([]dto.SubmissionDTO, error)
}

type homeworkService struct {
	themeRepo      repository.ThemeRepository
	homeworkRepo   repository.HomeworkRepository
	submissionRepo repository.SubmissionRepository
	enrollmentRepo repository.EnrollmentRepository
}

func NewHomeworkService(
	themeRepo repository.ThemeRepository,
	homeworkRepo repository.HomeworkRepository,
	submissionRepo repository.SubmissionRepository,
	enrollmentRepo repository.EnrollmentRepository,
) HomeworkService {
	return &homeworkService{
		themeRepo:      themeRepo,
		homeworkRepo:   homeworkRepo,
		submissionRepo: submissionRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *homeworkService) CreateHomework(actor *model.User, themeID uint, req dto.HomeworkCreateDTO) (*dto.HomeworkDTO, error) {
	theme, err := s.findTheme(themeID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageCourse(actor, &theme.Course) {
		return nil, apperr.Forbidden("you are not the owner of this course")
	}
	if !policy.CanCreateHomeworkOnTheme(theme) {
		return nil, apperr.Validation("theme is not flagged for homework")
	}

	homework := model.Homework{
		ThemeID:  themeID,
		Title:    req.Title,
		Text:     req.Text,
		MaxScore: req.MaxScore,
	}
	if err := s.homeworkRepo.Create(&homework); err != nil {
		log.Error().Err(err).Uint("themeID", themeID).Msg("CreateHomework: insert failed")
		return nil, apperr.Internal("error creating homework", err)
	}

	log.Info().Uint("homeworkID", homework.ID).Uint("themeID", themeID).Msg("Homework created")
	var d dto.HomeworkDTO
	copier.Copy(&d, &homework)
	return &d, nil
}

func (s *homeworkService) ListForTheme(actor *model.User, themeID uint) ([]dto.HomeworkDTO, error) {
	theme, err := s.findTheme(themeID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollmentRepo.Exists(actor.ID, theme.CourseID)
	if err != nil {
		return nil, apperr.Internal("error checking enrollment", err)
	}
	if !policy.CanViewCourseContent(actor, &theme.Course, enrolled) {
		return nil, apperr.Forbidden("you are not enrolled in this course")
	}

	homeworks, err := s.homeworkRepo.ListByTheme(themeID)
	if err != nil {
		log.Error().Err(err).Uint("themeID", themeID).Msg("ListForTheme: query failed")
		return nil, apperr.Internal("error listing homeworks", err)
	}

	dtos := make([]dto.HomeworkDTO, 0, len(homeworks))
	for _, homework := range homeworks {
		var d dto.HomeworkDTO
		copier.Copy(&d, &homework)
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *homeworkService) DeleteHomework(actor *model.User, homeworkID uint) error {
	homework, err := s.findHomework(homeworkID)
	if err != nil {
		return err
	}
	if !policy.CanManageCourse(actor, &homework.Theme.Course) {
		return apperr.Forbidden("you are not the owner of this course")
	}

	if err := s.homeworkRepo.Delete(homework); err != nil {
		log.Error().Err(err).Uint("homeworkID", homeworkID).Msg("DeleteHomework: delete failed")
		return apperr.Internal("error deleting homework", err)
	}
	return nil
}

func (s *homeworkService) Submit(actor *model.User, homeworkID uint, req dto.SubmissionCreateDTO) (*dto.SubmissionDTO, error) {
	homework, err := s.findHomework(homeworkID)
	if err != nil {
		return nil, err
	}
	if !policy.CanSubmitHomework(actor) {
		return nil, apperr.Forbidden("teachers cannot submit homework")
	}

	enrolled, err := s.enrollmentRepo.Exists(actor.ID, homework.Theme.CourseID)
	if err != nil {
		return nil, apperr.Internal("error checking enrollment", err)
	}
	if !enrolled {
		return nil, apperr.Forbidden("you are not enrolled in this course")
	}

	existing, err := s.submissionRepo.FindByHomeworkAndStudent(homeworkID, actor.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("error checking existing submission", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("homework already submitted")
	}

	submission := model.Submission{
		HomeworkID: homeworkID,
		StudentID:  actor.ID,
		Answer:     req.Answer,
		Status:     model.SubmissionStatusSubmitted,
	}
	// The unique index on (homework_id, student_id) closes the race between
	// the existence check above and this insert.
	if err := s.submissionRepo.Create(&submission); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("homework already submitted")
		}
		log.Error().Err(err).Uint("homeworkID", homeworkID).Uint("studentID", actor.ID).Msg("Submit: insert failed")
		return nil, apperr.Internal("error creating submission", err)
	}

	log.Info().Uint("submissionID", submission.ID).Uint("homeworkID", homeworkID).Uint("studentID", actor.ID).Msg("Homework submitted")
	return submissionToDTO(&submission), nil
}

func (s *homeworkService) MySubmission(actor *model.User, homeworkID uint) (*dto.SubmissionDTO, error) {
	if _, err := s.findHomework(homeworkID); err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.FindByHomeworkAndStudent(homeworkID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("submission not found")
		}
		return nil, apperr.Internal("error loading submission", err)
	}
	return submissionToDTO(submission), nil
}

func (s *homeworkService) MySubmissions(actor *model.User, themeID *uint, skip, limit int) ([]dto.SubmissionDTO, error) {
	if actor.Role != model.RoleStudent {
		return nil, apperr.Forbidden("only for students")
	}

	submissions, err := s.submissionRepo.ListByStudent(actor.ID, themeID, skip, limit)
	if err != nil {
		log.Error().Err(err).Uint("studentID", actor.ID).Msg("MySubmissions: query failed")
		return nil, apperr.Internal("error listing submissions", err)
	}
	return submissionsToDTOs(submissions), nil
}

func (s *homeworkService) Grade(actor *model.User, submissionID uint, req dto.GradeDTO) (*dto.SubmissionDTO, error) {
	submission, err := s.findSubmission(submissionID)
	if err != nil {
		return nil, err
	}

	courseOwnerID := submission.Homework.Theme.Course.OwnerID
	if !policy.CanGradeSubmission(actor, courseOwnerID) {
		return nil, apperr.Forbidden("you are not the owner of this course")
	}

	if req.Score < 0 {
		return nil, apperr.Validation("score must not be negative")
	}
	if maxScore := submission.Homework.MaxScore; maxScore != nil && req.Score > *maxScore {
		return nil, apperr.Validation("score %d exceeds max score %d", req.Score, *maxScore)
	}

	score := req.Score
	submission.Score = &score
	submission.TeacherComment = req.TeacherComment
	submission.Status = model.SubmissionStatusGraded

	if err := s.submissionRepo.Update(submission); err != nil {
		log.Error().Err(err).Uint("submissionID", submissionID).Msg("Grade: save failed")
		return nil, apperr.Internal("error saving grade", err)
	}

	log.Info().Uint("submissionID", submissionID).Int("score", score).Uint("teacherID", actor.ID).Msg("Submission graded")
	return submissionToDTO(submission), nil
}

func (s *homeworkService) ReviewQueue(actor *model.User, filter dto.ReviewFilterDTO) ([]dto.SubmissionDTO, error) {
	if !actor.IsTeacher() {
		return nil, apperr.Forbidden("only for teachers")
	}

	repoFilter := repository.HomeworkFilter{
		TeacherID: &actor.ID,
		CourseID:  filter.CourseID,
		ThemeID:   filter.ThemeID,
		Status:    filter.Status,
		StudentID: filter.StudentID,
		Skip:      filter.Skip,
		Limit:     filter.Limit,
	}
	submissions, err := s.submissionRepo.ListForReview(repoFilter)
	if err != nil {
		log.Error().Err(err).Uint("teacherID", actor.ID).Msg("ReviewQueue: query failed")
		return nil, apperr.Internal("error listing submissions", err)
	}
	return submissionsToDTOs(submissions), nil
}

func (s *homeworkService) findTheme(id uint) (*model.Theme, error) {
	theme, err := s.themeRepo.FindByIDWithCourse(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("theme not found")
		}
		return nil, apperr.Internal("error loading theme", err)
	}
	return theme, nil
}

func (s *homeworkService) findHomework(id uint) (*model.Homework, error) {
	homework, err := s.homeworkRepo.FindByIDWithCourse(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("homework not found")
		}
		return nil, apperr.Internal("error loading homework", err)
	}
	return homework, nil
}

func (s *homeworkService) findSubmission(id uint) (*model.Submission, error) {
	submission, err := s.submissionRepo.FindByIDWithCourse(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("submission not found")
		}
		return nil, apperr.Internal("error loading submission", err)
	}
	return submission, nil
}

func submissionToDTO(submission *model.Submission) *dto.SubmissionDTO {
	var d dto.SubmissionDTO
	copier.Copy(&d, submission)
	d.Files = nil
	for _, file := range submission.Files {
		d.Files = append(d.Files, file.FilePath)
	}
	return &d
}

func submissionsToDTOs(submissions []model.Submission) []dto.SubmissionDTO {
	dtos := make([]dto.SubmissionDTO, 0, len(submissions))
	for i := range submissions {
		dtos = append(dtos, *submissionToDTO(&submissions[i]))
	}
	return dtos
}
