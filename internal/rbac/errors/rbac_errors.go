package rbacerrors

import (
	"net/http"

	"go-hris-leave/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidRoleID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid role id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"role not found",
		http.StatusNotFound,
	)
	ErrRoleExists = apperror.New(
		apperror.CodeConflict,
		"a role with this name already exists",
		http.StatusConflict,
	)
	ErrUnknownPermission = apperror.New(
		apperror.CodeInvalidInput,
		"unknown permission id",
		http.StatusBadRequest,
	)
)
