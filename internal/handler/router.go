package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"organic-storefront/internal/handler/api"
	"organic-storefront/internal/handler/middleware"
	"organic-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	orderHandler *api.OrderHandler,
	storefrontHandler *api.StorefrontHandler,
	adminOrderHandler *api.AdminOrderHandler,
	adminInventoryHandler *api.AdminInventoryHandler,
	adminBannerHandler *api.AdminBannerHandler,
	adminSettingsHandler *api.AdminSettingsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine,
		orderHandler, storefrontHandler,
		adminOrderHandler, adminInventoryHandler, adminBannerHandler, adminSettingsHandler,
		authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	orderHandler *api.OrderHandler,
	storefrontHandler *api.StorefrontHandler,
	adminOrderHandler *api.AdminOrderHandler,
	adminInventoryHandler *api.AdminInventoryHandler,
	adminBannerHandler *api.AdminBannerHandler,
	adminSettingsHandler *api.AdminSettingsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/catalog", Handler: storefrontHandler.ListCatalog},
			{Method: http.MethodGet, Path: "/inventory/:date", Handler: storefrontHandler.GetInventory},
			{Method: http.MethodGet, Path: "/banners", Handler: storefrontHandler.ListBanners},
			{Method: http.MethodGet, Path: "/payment-methods", Handler: storefrontHandler.ListPaymentMethods},
		})

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.CreateOrder},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.GetOrder},
				{Method: http.MethodPost, Path: "/:id/receipt", Handler: orderHandler.SubmitReceipt},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: orderHandler.CancelOrder},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/orders", Handler: adminOrderHandler.ListOrders},
				{Method: http.MethodPost, Path: "/orders/release-expired", Handler: adminOrderHandler.ReleaseExpired},
				{Method: http.MethodGet, Path: "/orders/:id", Handler: adminOrderHandler.GetOrder},
				{Method: http.MethodPost, Path: "/orders/:id/verify", Handler: adminOrderHandler.VerifyOrder},
				{Method: http.MethodPost, Path: "/orders/:id/reject", Handler: adminOrderHandler.RejectOrder},

				{Method: http.MethodGet, Path: "/inventory/:date", Handler: adminInventoryHandler.GetLedger},
				{Method: http.MethodPut, Path: "/inventory/:date", Handler: adminInventoryHandler.SaveLedger},

				{Method: http.MethodGet, Path: "/banners", Handler: adminBannerHandler.ListBanners},
				{Method: http.MethodPost, Path: "/banners", Handler: adminBannerHandler.CreateBanner},
				{Method: http.MethodPut, Path: "/banners/:id", Handler: adminBannerHandler.UpdateBanner},
				{Method: http.MethodPatch, Path: "/banners/:id/active", Handler: adminBannerHandler.SetBannerActive},
				{Method: http.MethodDelete, Path: "/banners/:id", Handler: adminBannerHandler.DeleteBanner},

				{Method: http.MethodGet, Path: "/products", Handler: adminSettingsHandler.ListProducts},
				{Method: http.MethodPost, Path: "/products", Handler: adminSettingsHandler.CreateProduct},
				{Method: http.MethodPut, Path: "/products/:id", Handler: adminSettingsHandler.UpdateProduct},

				{Method: http.MethodGet, Path: "/payment-methods", Handler: adminSettingsHandler.ListPaymentMethods},
				{Method: http.MethodPost, Path: "/payment-methods", Handler: adminSettingsHandler.AddPaymentMethod},
				{Method: http.MethodDelete, Path: "/payment-methods/:id", Handler: adminSettingsHandler.RemovePaymentMethod},

				{Method: http.MethodGet, Path: "/audit", Handler: adminSettingsHandler.ListAudit},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
