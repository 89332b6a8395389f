package logger

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	t.Run("plain context", func(t *testing.T) {
		assert.Equal(t, "unknown", RequestID(context.Background()))
		assert.Equal(t, "req-1", RequestID(WithRequestID(context.Background(), "req-1")))
	})

	t.Run("gin context prefers its own key", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		c.Request = c.Request.WithContext(WithRequestID(c.Request.Context(), "from-request"))
		assert.Equal(t, "from-request", RequestID(c))

		c.Set(RequestIDKey, "from-gin")
		assert.Equal(t, "from-gin", RequestID(c))
	})

	t.Run("gin context without request", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Equal(t, "unknown", RequestID(c))
	})
}

func TestError_AddsRequestIDAndCause(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)
	ctx := WithRequestID(context.Background(), "req-42")

	Error(ctx, log, "checkout failed", errors.New("stock changed"), zap.String("cart_id", "c1"))
	Warn(ctx, log, "slow query")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "stock changed", fields["error"])
	assert.Equal(t, "c1", fields["cart_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestNew(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		log, err := New(env)
		require.NoError(t, err, env)
		assert.NotNil(t, log)
	}
}
