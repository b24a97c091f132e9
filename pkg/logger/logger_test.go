package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextFieldsAreAttached(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	ctx := WithTraceID(context.Background(), "trace-1")
	ctx = WithCompanyID(ctx, "company-1")
	ctx = WithPaymentID(ctx, "payment-1")

	log.Warn(ctx, "something odd", "page", 3, 42, "ignored-non-string-key")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "trace-1", fields["trace_id"])
	assert.Equal(t, "company-1", fields["company_id"])
	assert.Equal(t, "payment-1", fields["payment_id"])
	assert.Equal(t, int64(3), fields["page"])
	assert.Len(t, fields, 4)
}

func TestGetters_EmptyContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))
	assert.Empty(t, GetCompanyID(ctx))
	assert.Empty(t, GetPaymentID(ctx))
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log := New("verbose")
	require.NotNil(t, log)
	assert.False(t, log.zap.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.zap.Core().Enabled(zapcore.InfoLevel))
}
