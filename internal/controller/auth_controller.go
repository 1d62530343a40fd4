package controller

import (
	"net/http"

	"github.com/akozyreva/coursehub/internal/dto"
	"github.com/akozyreva/coursehub/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService  service.AuthService
	cookieDomain string
}

func NewAuthController(authService service.AuthService, cookieDomain string) *AuthController {
	return &AuthController{authService: authService, cookieDomain: cookieDomain}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param user_data body dto.RegisterDTO true "Registration data"
// @Success 201 {object} dto.UserResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Email already taken or invalid input"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Register: failed to bind JSON")
		respondBindError(ctx, err)
		return
	}

	user, err := c.authService.Register(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in and receive the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "Email and password"
// @Success 200 {object} dto.TokenResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Incorrect email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Login: failed to bind JSON")
		respondBindError(ctx, err)
		return
	}

	token, _, err := c.authService.Login(req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	maxAge := int(c.authService.TokenTTL().Seconds())
	ctx.SetCookie(AccessTokenCookie, token, maxAge, "/", c.cookieDomain, false, true)
	ctx.JSON(http.StatusOK, dto.TokenResponseDTO{AccessToken: token, TokenType: "bearer"})
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.DetailResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(AccessTokenCookie, "", -1, "/", c.cookieDomain, false, true)
	ctx.JSON(http.StatusOK, dto.DetailResponse{Detail: "successfully logged out"})
}

// Me godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := CurrentUser(ctx)
	ctx.JSON(http.StatusOK, dto.UserResponseDTO{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     string(user.Role),
	})
}
