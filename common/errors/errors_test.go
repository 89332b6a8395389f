package errors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestWrap_KeepsBaseUntouched(t *testing.T) {
	cause := errors.New("socket closed")

	wrapped := Wrap(ErrServiceUnavailable, cause)

	assert.Equal(t, http.StatusServiceUnavailable, wrapped.Code)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "Service unavailable: socket closed", wrapped.Error())
	assert.Nil(t, ErrServiceUnavailable.Err)
	assert.JSONEq(t, `{"code":503,"error":"Service unavailable"}`, wrapped.JSON())
}

func TestErrorMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(ErrorMiddleware(zap.NewNop()))
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(New(http.StatusConflict, "Already exists.", nil))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("connection refused"))
	})
	r.GET("/written", func(c *gin.Context) {
		_ = c.Error(errors.New("ignored"))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/app", http.StatusConflict, `{"error":"Already exists."}`},
		{"/plain", http.StatusInternalServerError, `{"error":"Internal server error"}`},
		{"/written", http.StatusOK, `{"ok":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
