package grouppolicyerrors

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
	ErrSettingExists = apperror.New(
		apperror.CodeConflict,
		"role already added for this leave type",
		http.StatusConflict,
	)
	ErrSettingNotFound = apperror.New(
		apperror.CodeNotFound,
		"group policy setting not found",
		http.StatusNotFound,
	)

	// Eligibility failures. Each names the precondition that failed.
	ErrTypeNotEnabled = apperror.New(
		apperror.CodeNotEligible,
		"leave type is not enabled for this company",
		http.StatusUnprocessableEntity,
	)
	ErrRoleNotPermitted = apperror.New(
		apperror.CodeNotEligible,
		"role not permitted for this leave type",
		http.StatusUnprocessableEntity,
	)
	ErrPolicyRestricted = apperror.New(
		apperror.CodeNotEligible,
		"leave type is disabled for this employee",
		http.StatusUnprocessableEntity,
	)
)
