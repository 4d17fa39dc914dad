package ledgererrors

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
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidPolicyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave policy id",
		http.StatusBadRequest,
	)
	ErrLeaveTypeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"leave_type is required",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"adjustment reason is required",
		http.StatusBadRequest,
	)
	ErrNegativeEntitlement = apperror.New(
		apperror.CodeInvalidInput,
		"entitlement cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"effective_date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year is invalid",
		http.StatusBadRequest,
	)
	ErrLeaveTypeNotActivated = apperror.New(
		apperror.CodeInvalidInput,
		"leave type is not activated for this company",
		http.StatusBadRequest,
	)
	ErrPolicyExists = apperror.New(
		apperror.CodeConflict,
		"employee already has a policy for this leave type",
		http.StatusConflict,
	)
	ErrPolicyNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee leave policy not found",
		http.StatusNotFound,
	)
)
