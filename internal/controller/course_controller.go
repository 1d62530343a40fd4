package controller

import (
	"net/http"
	"strconv"

	"github.com/akozyreva/coursehub/internal/dto"
	"github.com/akozyreva/coursehub/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type CourseController struct {
	courseService     service.CourseService
	enrollmentService service.EnrollmentService
}

func NewCourseController(courseService service.CourseService, enrollmentService service.EnrollmentService) *CourseController {
	return &CourseController{courseService: courseService, enrollmentService: enrollmentService}
}

// CreateCourse godoc
// @Summary (Teacher) Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param course_data body dto.CourseCreateDTO true "Course data"
// @Success 201 {object} dto.CourseDetailDTO
// @Failure 403 {object} dto.ErrorResponse "Actor is not a teacher"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateCourse: failed to bind JSON")
		respondBindError(ctx, err)
		return
	}

	course, err := c.courseService.Create(CurrentUser(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// MyCourses godoc
// @Summary List my courses (owned for teachers, enrolled for students)
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseSummaryDTO
// @Router /courses/my [get]
func (c *CourseController) MyCourses(ctx *gin.Context) {
	courses, err := c.enrollmentService.ListCoursesFor(CurrentUser(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetCourse godoc
// @Summary Course details with themes
// @Tags courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.CourseDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{course_id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "course_id")
	if !ok {
		return
	}
	course, err := c.courseService.Get(courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// UpdateCourse godoc
// @Summary (Owner) Update course fields
// @Tags courses
// @Accept json
// @Produce json
// @Param course_id path int true "Course ID"
// @Param course_data body dto.CourseUpdateDTO true "Fields to update"
// @Success 200 {object} dto.CourseDetailDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{course_id} [patch]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "course_id")
	if !ok {
		return
	}
	var req dto.CourseUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	course, err := c.courseService.Update(CurrentUser(ctx), courseID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse godoc
// @Summary (Owner) Delete a course and everything under it
// @Tags courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.DetailResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{course_id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "course_id")
	if !ok {
		return
	}
	if err := c.courseService.Delete(CurrentUser(ctx), courseID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DetailResponse{Detail: "course deleted successfully"})
}

// Enroll godoc
// @Summary (Student) Enroll in a course
// @Description Idempotent: enrolling twice reports success without a second row.
// @Tags courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.DetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{course_id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "course_id")
	if !ok {
		return
	}
	already, err := c.enrollmentService.Enroll(CurrentUser(ctx), courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if already {
		ctx.JSON(http.StatusOK, dto.DetailResponse{Detail: "already enrolled"})
		return
	}
	ctx.JSON(http.StatusOK, dto.DetailResponse{Detail: "enrolled successfully"})
}

// MyProgress godoc
// @Summary My completion progress for a course
// @Tags courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.ProgressDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{course_id}/progress [get]
func (c *CourseController) MyProgress(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "course_id")
	if !ok {
		return
	}
	progress, err := c.enrollmentService.Progress(CurrentUser(ctx), courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// StudentProgress godoc
// @Summary (Owner) A student's progress in my course
// @Tags courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.ProgressDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{course_id}/students/{student_id}/progress [get]
func (c *CourseController) StudentProgress(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "course_id")
	if !ok {
		return
	}
	studentID, ok := pathID(ctx, "student_id")
	if !ok {
		return
	}
	progress, err := c.enrollmentService.StudentProgress(CurrentUser(ctx), courseID, studentID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// ListThemes godoc
// @Summary Themes of a course (enrolled users and the owner)
// @Tags themes
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {array} dto.ThemeDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{course_id}/themes [get]
func (c *CourseController) ListThemes(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "course_id")
	if !ok {
		return
	}
	themes, err := c.courseService.ListThemes(CurrentUser(ctx), courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, themes)
}

// CreateTheme godoc
// @Summary (Owner) Add a theme to a course
// @Tags themes
// @Accept json
// @Produce json
// @Param course_id path int true "Course ID"
// @Param theme_data body dto.ThemeCreateDTO true "Theme data"
// @Success 201 {object} dto.ThemeDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{course_id}/themes [post]
func (c *CourseController) CreateTheme(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "course_id")
	if !ok {
		return
	}
	var req dto.ThemeCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	theme, err := c.courseService.CreateTheme(CurrentUser(ctx), courseID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, theme)
}

// UpdateTheme godoc
// @Summary (Owner) Update a theme
// @Tags themes
// @Accept json
// @Produce json
// @Param theme_id path int true "Theme ID"
// @Param theme_data body dto.ThemeUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ThemeDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /themes/{theme_id} [patch]
func (c *CourseController) UpdateTheme(ctx *gin.Context) {
	themeID, ok := pathID(ctx, "theme_id")
	if !ok {
		return
	}
	var req dto.ThemeUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	theme, err := c.courseService.UpdateTheme(CurrentUser(ctx), themeID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, theme)
}

// DeleteTheme godoc
// @Summary (Owner) Delete a theme
// @Tags themes
// @Produce json
// @Param theme_id path int true "Theme ID"
// @Success 200 {object} dto.DetailResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /themes/{theme_id} [delete]
func (c *CourseController) DeleteTheme(ctx *gin.Context) {
	themeID, ok := pathID(ctx, "theme_id")
	if !ok {
		return
	}
	if err := c.courseService.DeleteTheme(CurrentUser(ctx), themeID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DetailResponse{Detail: "theme deleted successfully"})
}

// CompleteTheme godoc
// @Summary (Student) Mark a theme as completed
// @Tags themes
// @Produce json
// @Param theme_id path int true "Theme ID"
// @Success 200 {object} dto.DetailResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /themes/{theme_id}/complete [post]
func (c *CourseController) CompleteTheme(ctx *gin.Context) {
	themeID, ok := pathID(ctx, "theme_id")
	if !ok {
		return
	}
	if err := c.courseService.CompleteTheme(CurrentUser(ctx), themeID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DetailResponse{Detail: "theme marked as completed"})
}

// pathID parses a numeric path parameter, answering 400 on garbage input.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(value), true
}
