package leavepolicyerrors

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
	ErrInvalidPolicyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid system leave policy id",
		http.StatusBadRequest,
	)
	ErrLeaveTypeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"leave_type is required",
		http.StatusBadRequest,
	)
	ErrNegativeEntitlement = apperror.New(
		apperror.CodeInvalidInput,
		"entitlement days cannot be negative",
		http.StatusBadRequest,
	)
	ErrLeaveTypeExists = apperror.New(
		apperror.CodeConflict,
		"a system leave policy with this leave type already exists",
		http.StatusConflict,
	)
	ErrSystemPolicyNotFound = apperror.New(
		apperror.CodeNotFound,
		"system leave policy not found",
		http.StatusNotFound,
	)
	ErrSystemPolicyDisabled = apperror.New(
		apperror.CodeInvalidState,
		"system leave policy is disabled",
		http.StatusConflict,
	)
	ErrCompanyTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type is not activated for this company",
		http.StatusNotFound,
	)
)
