package counter_test

import (
	"context"
	"testing"

	"go-hris-leave/internal/shared/counter"
	"go-hris-leave/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRepository_GetNextValue(t *testing.T) {
	db := testdb.Open(t, &counter.CompanyCounter{})

	repo := counter.NewRepository(db)
	ctx := context.Background()
	companyA := uuid.New().String()
	companyB := uuid.New().String()

	first, err := repo.GetNextValue(ctx, companyA, "leave_application")
	assert.NoError(t, err)
	second, err := repo.GetNextValue(ctx, companyA, "leave_application")
	assert.NoError(t, err)
	other, err := repo.GetNextValue(ctx, companyB, "leave_application")
	assert.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
	assert.Equal(t, int64(1), other)
}
