package controller

import (
	"net/http"

	"github.com/akozyreva/coursehub/internal/apperr"
	"github.com/akozyreva/coursehub/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps the domain error taxonomy onto HTTP statuses in one
// place, so every controller reports failures the same way.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindForbidden:
		status = http.StatusForbidden
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindUnauthenticated:
		status = http.StatusUnauthorized
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
	}
	ctx.JSON(status, dto.ErrorResponse{Message: apperr.MessageOf(err)})
}

func respondBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Message: "Invalid request body",
		Details: []string{err.Error()},
	})
}
