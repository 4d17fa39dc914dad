package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hris-leave/internal/shared/connection"
	"go-hris-leave/internal/shared/testdb"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterModules(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := testdb.Open(t)
	require.NoError(t, migrate(gdb, connection.DriverSQLite))
	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	router := gin.New()
	_, err = registerModules(router, sqlDB, gdb, nil, Config{})
	require.NoError(t, err)

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"POST /api/v1/leave-applications",
		"POST /api/v1/leave-applications/:id/approve",
		"GET /api/v1/leave-summary/:employeeId",
		"GET /api/v1/leave-statistics",
		"POST /api/v1/rbac/enforce",
	} {
		assert.True(t, registered[want], want)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leave-applications", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
