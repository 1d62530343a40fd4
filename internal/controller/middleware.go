package controller

import (
	"net/http"
	"strings"

	"github.com/akozyreva/coursehub/internal/apperr"
	"github.com/akozyreva/coursehub/internal/dto"
	"github.com/akozyreva/coursehub/internal/model"
	"github.com/akozyreva/coursehub/internal/policy"
	"github.com/akozyreva/coursehub/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	// AccessTokenCookie is where the transport keeps the session token.
	AccessTokenCookie = "access_token"
	currentUserKey    = "currentUser"
)

// AuthRequired resolves the session token (cookie first, bearer header as a
// fallback) into the current user and aborts with 401 otherwise.
func AuthRequired(auth service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(AccessTokenCookie)
		if err != nil || token == "" {
			header := ctx.GetHeader("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				token = strings.TrimPrefix(header, "Bearer ")
			}
		}
		if token == "" {
			abortUnauthorized(ctx, "not authenticated")
			return
		}

		userID, err := auth.Verify(token)
		if err != nil {
			abortUnauthorized(ctx, apperr.MessageOf(err))
			return
		}

		user, err := auth.UserByID(userID)
		if err != nil {
			abortUnauthorized(ctx, apperr.MessageOf(err))
			return
		}

		ctx.Set(currentUserKey, user)
		ctx.Next()
	}
}

// RequireRole gates a route group on a role. Admins pass every gate.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := CurrentUser(ctx)
		if user == nil {
			abortUnauthorized(ctx, "not authenticated")
			return
		}
		if !policy.HasRole(user, role) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Message: "insufficient rights, required role: " + string(role),
			})
			return
		}
		ctx.Next()
	}
}

// CurrentUser returns the authenticated user set by AuthRequired, or nil.
func CurrentUser(ctx *gin.Context) *model.User {
	value, exists := ctx.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}

func abortUnauthorized(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: message})
}
