package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-hris-leave/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := apperror.New(apperror.CodeNotEligible, "role not permitted for this leave type", http.StatusUnprocessableEntity)

		got := apperror.ToHTTP(fmt.Errorf("submit: %w", err))

		assert.Equal(t, http.StatusUnprocessableEntity, got.Status)
		assert.Equal(t, apperror.CodeNotEligible, got.Code)
		assert.Equal(t, "role not permitted for this leave type", got.Message)
	})

	t.Run("unknown error hides message", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "connection refused")
	})

	t.Run("details survive and sentinel still matches", func(t *testing.T) {
		base := apperror.New(apperror.CodeInsufficientBalance, "insufficient leave balance", http.StatusUnprocessableEntity)
		withDetails := base.WithDetails(map[string]string{"available": "2"})

		assert.True(t, errors.Is(withDetails, base))
		assert.Equal(t, map[string]string{"available": "2"}, apperror.ToHTTP(withDetails).Details)
		assert.Nil(t, base.Details)
	})
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		LeaveType string `validate:"required"`
		DayType   string `validate:"oneof=FULL HALF"`
	}
	v := validator.New()

	err := v.Struct(payload{DayType: "FULL"})
	mapped := apperror.MapValidationError(err)
	assert.True(t, apperror.HasCode(mapped, apperror.CodeInvalidInput))
	assert.Contains(t, mapped.Error(), "is required")

	err = v.Struct(payload{LeaveType: "Annual Leave", DayType: "QUARTER"})
	mapped = apperror.MapValidationError(err)
	assert.Contains(t, mapped.Error(), "must be one of")

	mapped = apperror.MapValidationError(errors.New("EOF"))
	assert.Equal(t, "Invalid input", mapped.Error())
}
