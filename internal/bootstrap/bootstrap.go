package bootstrap

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/funfun03/form-showcase/internal/config"
	sharedError "github.com/funfun03/form-showcase/internal/shared/error"
	"github.com/funfun03/form-showcase/internal/shared/middleware"
	"github.com/funfun03/form-showcase/internal/web"
	"github.com/gin-gonic/gin"
)

// Bootstrap builds the gin engine shared by every form
type Bootstrap struct {
	cfg *config.Config
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates a gin engine with the common middleware and the page templates
func (b *Bootstrap) SetupEngine() *gin.Engine {
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	engine := gin.New()
	engine.MaxMultipartMemory = b.cfg.Upload.MaxMultipartBytes
	engine.SetHTMLTemplate(web.MustTemplates())

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout))
	engine.Use(middleware.LoggerMiddleware())

	return engine
}

// recoveryHandler handles panics
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	slog.Error("Panic Recovered",
		"error", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, sharedError.InternalServerError)
}
