package controller

import (
	"net/http"
	"strconv"

	"github.com/akozyreva/coursehub/internal/dto"
	"github.com/akozyreva/coursehub/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HomeworkController struct {
	homeworkService service.HomeworkService
}

func NewHomeworkController(homeworkService service.HomeworkService) *HomeworkController {
	return &HomeworkController{homeworkService: homeworkService}
}

// ListForTheme godoc
// @Summary Homeworks of a theme (enrolled users and the owner)
// @Tags homeworks
// @Produce json
// @Param theme_id path int true "Theme ID"
// @Success 200 {array} dto.HomeworkDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /themes/{theme_id}/homeworks [get]
func (c *HomeworkController) ListForTheme(ctx *gin.Context) {
	themeID, ok := pathID(ctx, "theme_id")
	if !ok {
		return
	}
	homeworks, err := c.homeworkService.ListForTheme(CurrentUser(ctx), themeID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, homeworks)
}

// CreateHomework godoc
// @Summary (Owner) Attach a homework to a theme
// @Description The theme must be flagged as carrying a homework assignment.
// @Tags homeworks
// @Accept json
// @Produce json
// @Param theme_id path int true "Theme ID"
// @Param homework_data body dto.HomeworkCreateDTO true "Homework data"
// @Success 201 {object} dto.HomeworkDTO
// @Failure 400 {object} dto.ErrorResponse "Theme is not flagged for homework"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /themes/{theme_id}/homeworks [post]
func (c *HomeworkController) CreateHomework(ctx *gin.Context) {
	themeID, ok := pathID(ctx, "theme_id")
	if !ok {
		return
	}
	var req dto.HomeworkCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateHomework: failed to bind JSON")
		respondBindError(ctx, err)
		return
	}

	homework, err := c.homeworkService.CreateHomework(CurrentUser(ctx), themeID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, homework)
}

// DeleteHomework godoc
// @Summary (Owner) Delete a homework
// @Tags homeworks
// @Produce json
// @Param homework_id path int true "Homework ID"
// @Success 200 {object} dto.DetailResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /homeworks/{homework_id} [delete]
func (c *HomeworkController) DeleteHomework(ctx *gin.Context) {
	homeworkID, ok := pathID(ctx, "homework_id")
	if !ok {
		return
	}
	if err := c.homeworkService.DeleteHomework(CurrentUser(ctx), homeworkID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DetailResponse{Detail: "homework deleted successfully"})
}

// Submit godoc
// @Summary (Student) Submit an answer for a homework
// @Description One submission per student per homework; a repeat is rejected with 409.
// @Tags submissions
// @Accept json
// @Produce json
// @Param homework_id path int true "Homework ID"
// @Param submission_data body dto.SubmissionCreateDTO true "Answer"
// @Success 201 {object} dto.SubmissionDTO
// @Failure 403 {object} dto.ErrorResponse "Not a student or not enrolled"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already submitted"
// @Router /homeworks/{homework_id}/submissions [post]
func (c *HomeworkController) Submit(ctx *gin.Context) {
	homeworkID, ok := pathID(ctx, "homework_id")
	if !ok {
		return
	}
	var req dto.SubmissionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Submit: failed to bind JSON")
		respondBindError(ctx, err)
		return
	}

	submission, err := c.homeworkService.Submit(CurrentUser(ctx), homeworkID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, submission)
}

// MySubmission godoc
// @Summary (Student) My submission for a homework
// @Tags submissions
// @Produce json
// @Param homework_id path int true "Homework ID"
// @Success 200 {object} dto.SubmissionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /homeworks/{homework_id}/submissions/my [get]
func (c *HomeworkController) MySubmission(ctx *gin.Context) {
	homeworkID, ok := pathID(ctx, "homework_id")
	if !ok {
		return
	}
	submission, err := c.homeworkService.MySubmission(CurrentUser(ctx), homeworkID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, submission)
}

// MySubmissions godoc
// @Summary (Student) List my submissions
// @Tags submissions
// @Produce json
// @Param theme_id query int false "Filter by theme"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} dto.SubmissionDTO
// @Failure 403 {object} dto.ErrorResponse
// @Router /submissions/my [get]
func (c *HomeworkController) MySubmissions(ctx *gin.Context) {
	var themeID *uint
	if raw := ctx.Query("theme_id"); raw != "" {
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid theme_id format"})
			return
		}
		id := uint(value)
		themeID = &id
	}
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	submissions, err := c.homeworkService.MySubmissions(CurrentUser(ctx), themeID, skip, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// Grade godoc
// @Summary (Owner) Grade a submission
// @Description Score must stay within the homework's max_score. Re-grading overwrites.
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission_id path int true "Submission ID"
// @Param grade_data body dto.GradeDTO true "Score and optional comment"
// @Success 200 {object} dto.SubmissionDTO
// @Failure 400 {object} dto.ErrorResponse "Score out of bounds"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /submissions/{submission_id}/grade [put]
func (c *HomeworkController) Grade(ctx *gin.Context) {
	submissionID, ok := pathID(ctx, "submission_id")
	if !ok {
		return
	}
	var req dto.GradeDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Grade: failed to bind JSON")
		respondBindError(ctx, err)
		return
	}

	submission, err := c.homeworkService.Grade(CurrentUser(ctx), submissionID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, submission)
}

// ReviewQueue godoc
// @Summary (Teacher) Submissions on my courses awaiting review
// @Tags submissions
// @Produce json
// @Param course_id query int false "Filter by course"
// @Param theme_id query int false "Filter by theme"
// @Param status query string false "submitted or graded"
// @Param student_id query int false "Filter by student"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} dto.SubmissionDTO
// @Failure 403 {object} dto.ErrorResponse
// @Router /submissions [get]
func (c *HomeworkController) ReviewQueue(ctx *gin.Context) {
	var filter dto.ReviewFilterDTO
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		respondBindError(ctx, err)
		return
	}

	submissions, err := c.homeworkService.ReviewQueue(CurrentUser(ctx), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}
