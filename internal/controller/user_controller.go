package controller

import (
	"net/http"
	"strconv"

	"github.com/akozyreva/coursehub/internal/dto"
	"github.com/akozyreva/coursehub/internal/model"
	"github.com/akozyreva/coursehub/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	userRepo repository.UserRepository
}

func NewUserController(userRepo repository.UserRepository) *UserController {
	return &UserController{userRepo: userRepo}
}

// ListStudents godoc
// @Summary (Teacher) List student accounts
// @Tags users
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(50)
// @Success 200 {array} dto.UserResponseDTO
// @Failure 403 {object} dto.ErrorResponse
// @Router /users/students [get]
func (c *UserController) ListStudents(ctx *gin.Context) {
	c.listByRole(ctx, model.RoleStudent)
}

// ListTeachers godoc
// @Summary List teacher accounts
// @Tags users
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(50)
// @Success 200 {array} dto.UserResponseDTO
// @Router /users/teachers [get]
func (c *UserController) ListTeachers(ctx *gin.Context) {
	c.listByRole(ctx, model.RoleTeacher)
}

func (c *UserController) listByRole(ctx *gin.Context, role model.Role) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	users, err := c.userRepo.ListByRole(role, skip, limit)
	if err != nil {
		log.Error().Err(err).Str("role", string(role)).Msg("ListByRole: query failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "error listing users"})
		return
	}

	dtos := make([]dto.UserResponseDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, dto.UserResponseDTO{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     string(user.Role),
		})
	}
	ctx.JSON(http.StatusOK, dtos)
}
