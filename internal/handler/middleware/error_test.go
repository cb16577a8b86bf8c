//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.ErrorHandler())
	return engine
}

func perform(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	t.Run("abort writes the flat envelope", func(t *testing.T) {
		engine := newEngine()
		engine.GET("/boom", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusNotFound, errors.New("row missing"), "Booking not found")
		})

		w := perform(t, engine, "/boom")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Booking not found"}`, w.Body.String())
	})

	t.Run("pushed public error is rendered when nothing was written", func(t *testing.T) {
		engine := newEngine()
		engine.GET("/pushed", func(c *gin.Context) {
			_ = c.Error(&gin.Error{
				Err:  errors.New("conflict"),
				Type: gin.ErrorTypePublic,
				Meta: httperr.Response{Status: http.StatusConflict, Error: "Email already in use"},
			})
		})

		w := perform(t, engine, "/pushed")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error": "Email already in use"}`, w.Body.String())
	})

	t.Run("bare errors fall back to the generic envelope", func(t *testing.T) {
		engine := newEngine()
		engine.GET("/bare", func(c *gin.Context) {
			_ = c.Error(errors.New("unexpected"))
		})

		w := perform(t, engine, "/bare")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error": "Internal server error"}`, w.Body.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	engine := newEngine()
	engine.GET("/panic", func(_ *gin.Context) {
		panic("worker blew up")
	})

	w := perform(t, engine, "/panic")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, w.Body.String())
}
