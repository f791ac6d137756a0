package router

import (
	"github.com/funfun03/form-showcase/internal/account"
	"github.com/funfun03/form-showcase/internal/config"
	"github.com/funfun03/form-showcase/internal/login"
	"github.com/funfun03/form-showcase/internal/meta"
	"github.com/funfun03/form-showcase/internal/registration"
	"github.com/funfun03/form-showcase/internal/shared/metrics"
	"github.com/funfun03/form-showcase/internal/shared/middleware"
	"github.com/funfun03/form-showcase/internal/showcase"
	"github.com/funfun03/form-showcase/internal/userreg"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Setup configures all application-specific routes using dependency injection.
// The returned limiter owns a goroutine; stop it on shutdown.
func Setup(router *gin.Engine, cfg *config.Config, registry *prometheus.Registry) *middleware.RateLimiter {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg)
	router.GET("/health", metaHandler.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler(registry)))

	// shared services
	gateway := account.NewLogGateway()
	hasher := account.NewHasher(cfg.Account.BcryptCost)
	recorder := metrics.NewCollector(registry)
	limiter := middleware.NewRateLimiter(cfg.RateLimit)

	// service
	showcaseService := showcase.NewShowcaseService(gateway, hasher)
	registrationService := registration.NewRegistrationService(gateway, hasher)
	loginService := login.NewLoginService(gateway)
	userRegistrationService := userreg.NewUserRegistrationService(gateway, hasher)

	// handler
	showcaseHandler := showcase.NewShowcaseHandler(showcaseService, recorder)
	registrationHandler := registration.NewRegistrationHandler(registrationService, recorder)
	loginHandler := login.NewLoginHandler(loginService, recorder)
	userRegistrationHandler := userreg.NewUserRegistrationHandler(userRegistrationService, recorder)

	// Pages
	router.GET("/", showcaseHandler.Page)
	router.GET("/register", registrationHandler.Page)
	router.GET("/login", loginHandler.Page)
	router.GET("/users/register", userRegistrationHandler.Page)

	submit := router.Group("")
	submit.Use(limiter.Middleware(), middleware.BodyLimit(cfg.Upload.MaxMultipartBytes))
	{
		submit.POST("/showcase/signin", showcaseHandler.SignIn)
		submit.POST("/showcase/signup", showcaseHandler.SignUp)
		submit.POST("/showcase/login", showcaseHandler.LogIn)
		submit.POST("/register", registrationHandler.Submit)
		submit.POST("/login", loginHandler.Submit)
		submit.POST("/users/register", userRegistrationHandler.Submit)
	}

	// API v1 routes
	showcaseV1 := router.Group("/api/v1/showcase")
	showcaseV1.Use(limiter.Middleware(), middleware.BodyLimit(cfg.Upload.MaxMultipartBytes))
	{
		showcaseV1.POST("/signin", showcaseHandler.SignInAPI)
		showcaseV1.POST("/nav-visibility", showcaseHandler.NavVisibility)
	}

	formsV1 := router.Group("/api/v1/forms")
	formsV1.Use(limiter.Middleware(), middleware.BodyLimit(cfg.Upload.MaxMultipartBytes))
	{
		formsV1.POST("/register", registrationHandler.API)
		formsV1.POST("/login", loginHandler.API)
		formsV1.POST("/user-registration", userRegistrationHandler.API)
	}

	return limiter
}
