package routes

import (
	"stockdock/auth"
	"stockdock/client"
	"stockdock/config"
	"stockdock/controller"
	"stockdock/middleware"
	"stockdock/provider"
	"stockdock/repository"
	"stockdock/service"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

// Services holds the wired services. Stock is nil when no market data API
// credentials are configured.
type Services struct {
	Chart     service.ChartService
	Stock     service.StockService
	Dashboard service.DashboardService
}

// BuildServices wires clients, repositories and services. db may be nil, in
// which case quotes are served but never persisted.
func BuildServices(cfg *config.SystemConfigs, db *mongo.Database) *Services {
	// --- 1. Providers & Clients ---
	static := provider.NewStaticProvider()
	var chartProvider provider.PriceHistoryProvider = static

	var stockSvc service.StockService
	if cfg.Config.HasAlpaca() {
		alpacaClient := client.NewAlpacaClient(cfg.Config.AlpacaBaseUrl, cfg.Config.AlpacaKey, cfg.Config.AlpacaSecret)
		chartProvider = provider.NewFallbackProvider(provider.NewAlpacaProvider(alpacaClient), static)

		// --- 2. Repositories ---
		var store service.CurrentStockStore
		if db != nil {
			store = repository.NewCurrentStockRepository(db)
		}
		stockSvc = service.NewStockService(alpacaClient, store, cfg.Symbols.Predefined)
	} else {
		log.Warn().Msg("Alpaca credentials missing, serving the sample price history only")
	}

	// --- 3. Services ---
	chartSvc := service.NewChartService(chartProvider, static, cfg.Runtime)

	return &Services{
		Chart:     chartSvc,
		Stock:     stockSvc,
		Dashboard: service.NewDashboardService(chartSvc, stockSvc),
	}
}

func SetupRouter(cfg *config.SystemConfigs, svcs *Services) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.RecoveryMiddleware,
		middleware.ZerologMiddleware(),
		middleware.CORS(cfg.Config.FrontendUrls),
		middleware.RateLimiter(cfg.Runtime),
	)

	signer := auth.NewSigner(cfg.Config.JwtSecret)
	adminMw := middleware.AdminOnly(signer)

	humaConfig := huma.DefaultConfig("StockDock API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	api := humagin.New(r, humaConfig)

	chartCtrl := controller.NewChartController(svcs.Chart, adminMw)
	dashboardCtrl := controller.NewDashboardController(svcs.Dashboard)

	// --- Huma operations ---
	chartCtrl.RegisterRoutes(api)
	dashboardCtrl.RegisterRoutes(api)
	controller.NewConfigController(cfg.Runtime, cfg.Symbols, middleware.HumaAdminOnly(api, signer)).RegisterRoutes(api)

	// --- Gin routes ---
	apiGroup := r.Group("/api")
	{
		controller.NewHealthController().RegisterRoutes(apiGroup)
		chartCtrl.RegisterGinRoutes(apiGroup)

		if svcs.Stock != nil {
			controller.NewStockController(svcs.Stock, adminMw).RegisterRoutes(apiGroup)
		}
	}
	dashboardCtrl.RegisterPageRoutes(r)

	return r
}
