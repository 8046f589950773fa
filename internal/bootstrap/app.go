package bootstrap

import (
	"github.com/gin-gonic/gin"

	"roast-backend/internal/llm"
	"roast-backend/internal/llm/openai"
	"roast-backend/internal/roast"
	"roast-backend/internal/services/health"
	"roast-backend/internal/shared/config"
	"roast-backend/internal/shared/metrics"
	"roast-backend/internal/shared/server"
	"roast-backend/internal/shared/server/middleware"
)

// App holds shared dependencies.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	LLM          llm.Client
	Metrics      *metrics.Metrics
	Limiter      *middleware.WindowLimiter
	RoastService *roast.Service
	RoastHandler *roast.Handler
}

// Build wires dependencies and the router.
func Build(cfg config.Config) *App {
	app := &App{
		Config:  cfg,
		Metrics: metrics.New(),
		Limiter: middleware.NewWindowLimiter(nil),
	}

	app.LLM = openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	app.RoastService = &roast.Service{
		LLM:      app.LLM,
		MaxChars: cfg.MaxRoastChars,
		Metrics:  app.Metrics,
	}
	app.RoastHandler = roast.NewHandler(app.RoastService, cfg.IsDev(), cfg.MaxUploadBytes)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:       cfg,
		RoastHandler: app.RoastHandler,
		HealthSvc:    health.NewService(),
		Metrics:      app.Metrics,
		Limiter:      app.Limiter,
	})

	return app
}
