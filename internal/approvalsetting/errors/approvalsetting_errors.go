package approvalsettingerrors

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
	ErrInvalidApproverID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid approver id",
		http.StatusBadRequest,
	)
	ErrSameApprover = apperror.New(
		apperror.CodeInvalidInput,
		"first and second level approvers must differ",
		http.StatusBadRequest,
	)
	ErrSettingNotFound = apperror.New(
		apperror.CodeNotFound,
		"approval setting not found",
		http.StatusNotFound,
	)
	// ErrNoApprover is returned when neither a type-scoped nor a global
	// setting exists, so nobody may decide.
	ErrNoApprover = apperror.New(
		apperror.CodeForbidden,
		"no approver configured for this leave type",
		http.StatusForbidden,
	)
)
