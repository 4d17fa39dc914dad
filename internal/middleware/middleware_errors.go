package middleware

import (
	"net/http"

	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
)

var (
	ErrTokenMissing = apperror.New(
		"UNAUTHORIZED",
		"token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"token has expired",
		http.StatusUnauthorized,
	)
	ErrMissingAuthContext = apperror.New(
		"UNAUTHORIZED",
		"missing auth context",
		http.StatusUnauthorized,
	)
	ErrPermissionDenied = apperror.New(
		apperror.CodeForbidden,
		"you do not have permission to access this resource",
		http.StatusForbidden,
	)
	ErrRequestInFlight = apperror.New(
		"PROCESSING",
		"a request with this idempotency key is still being processed",
		http.StatusConflict,
	)
	ErrTooManyRequests = apperror.New(
		"TOO_MANY_REQUESTS",
		"too many requests",
		http.StatusTooManyRequests,
	)
)

func abort(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, err.Details)
	c.Abort()
}
