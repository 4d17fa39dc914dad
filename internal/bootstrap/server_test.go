package bootstrap

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"go-hris-leave/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingAudit struct {
	entries []AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry AuditLog) {
	r.entries = append(r.entries, entry)
}

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var l AuditLogger = NewStdoutAuditLogger(zap.New(core))
	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	ctx = contextutil.WithCompanyID(ctx, "c-1")
	l.Log(ctx, AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Leave API is shutting down",
		Meta:    map[string]any{"signal": "terminated"},
	})

	entries := logs.FilterMessage("audit event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "c-1", fields["company_id"])
	assert.Equal(t, "audit", entries[0].LoggerName)
}

func TestServe_ShutsDownOnSignal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	audit := &recordingAudit{}
	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGTERM

	err := serve(gin.New(), ServerConfig{Port: "0", ShutdownTimeout: time.Second}, audit, quit)

	require.NoError(t, err)
	require.Len(t, audit.entries, 2)
	assert.Equal(t, "SERVER_STARTED", audit.entries[0].Action)
	assert.Equal(t, "SERVER_SHUTDOWN", audit.entries[1].Action)
}
