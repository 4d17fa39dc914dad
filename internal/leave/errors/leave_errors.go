package leaveerrors

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
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidApplicationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave application id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date is before start_date",
		http.StatusBadRequest,
	)
	ErrInvalidDayType = apperror.New(
		apperror.CodeInvalidInput,
		"day type must be Full Day or Half Day",
		http.StatusBadRequest,
	)
	ErrNonPositiveDays = apperror.New(
		apperror.CodeInvalidInput,
		"total days must be greater than zero",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"leave already exists in overlapping period",
		http.StatusConflict,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"insufficient leave balance",
		http.StatusUnprocessableEntity,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave application not found",
		http.StatusNotFound,
	)
	ErrNotApprover = apperror.New(
		apperror.CodeForbidden,
		"you are not an approver for this leave type",
		http.StatusForbidden,
	)
	ErrNotPending = apperror.New(
		apperror.CodeInvalidState,
		"leave application is no longer pending",
		http.StatusConflict,
	)
)
