package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/funfun03/form-showcase/internal/shared/middleware"
	"github.com/funfun03/form-showcase/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetupEngine_RecoversFromPanic(t *testing.T) {
	// Given
	engine := NewBootstrap(testutil.NewTestConfig()).SetupEngine()
	engine.GET("/boom", func(c *gin.Context) { panic("boom") })

	// When
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	// Then
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "ERROR-003")
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestSetupEngine_LoadsTemplates(t *testing.T) {
	cfg := testutil.NewTestConfig()
	engine := NewBootstrap(cfg).SetupEngine()
	engine.GET("/page", func(c *gin.Context) {
		c.HTML(http.StatusOK, "accepted", gin.H{"Title": "t", "Heading": "Done", "ReceiptID": "r-1"})
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "r-1")
	assert.Equal(t, cfg.Upload.MaxMultipartBytes, engine.MaxMultipartMemory)
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	cfg := testutil.NewTestConfig()
	srv := New(cfg, http.NotFoundHandler())

	assert.Equal(t, ":8080", srv.Addr())
	assert.NoError(t, srv.Shutdown(context.Background()))
}
