package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roast-backend/internal/roast"
	"roast-backend/internal/services/health"
	"roast-backend/internal/shared/config"
	"roast-backend/internal/shared/metrics"
	"roast-backend/internal/shared/server/middleware"
	"roast-backend/internal/shared/server/respond"
)

// RouterDeps carries everything the router wires together.
type RouterDeps struct {
	Config       config.Config
	RoastHandler *roast.Handler
	HealthSvc    *health.Service
	Metrics      *metrics.Metrics
	Limiter      *middleware.WindowLimiter
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(deps.Config.IsDev()),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}

	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, deps.HealthSvc.Status())
	})
	if deps.Metrics != nil {
		r.GET("/metrics", deps.Metrics.Handler())
	}

	roastGroup := r.Group("/roast")
	roastGroup.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:   deps.Config.RateLimit,
		Window:  time.Duration(deps.Config.RateWindowMin) * time.Minute,
		Limiter: deps.Limiter,
	}))
	deps.RoastHandler.RegisterRoutes(roastGroup)

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not found", "")
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
