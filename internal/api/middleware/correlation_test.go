package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidboard/vidboard/internal/utils"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotCorrelation, gotRequest string
	engine := gin.New()
	engine.Use(CorrelationIDMiddleware())
	engine.GET("/ping", func(c *gin.Context) {
		ctx := c.Request.Context()
		gotCorrelation = utils.GetCorrelationID(ctx)
		gotRequest = utils.GetRequestID(ctx)
		c.Status(http.StatusOK)
	})

	t.Run("generates IDs when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.Equal(t, w.Header().Get("X-Correlation-ID"), gotCorrelation)
		assert.Equal(t, w.Header().Get("X-Request-ID"), gotRequest)
	})

	t.Run("reuses a provided correlation ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Correlation-ID", "caller-supplied")

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "caller-supplied", w.Header().Get("X-Correlation-ID"))
		assert.Equal(t, "caller-supplied", gotCorrelation)
	})
}
