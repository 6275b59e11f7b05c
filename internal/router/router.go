package router

import (
	"time"

	"github.com/jrmmllrs/CoffeeShop-backend/internal/config"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/handler"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/middleware"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/model"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/repository"
	"github.com/jrmmllrs/CoffeeShop-backend/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	logRepo := repository.NewInventoryLogRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	userSvc := service.NewUserService(userRepo)
	productSvc := service.NewProductService(productRepo, logRepo)
	inventorySvc := service.NewInventoryService(logRepo, productRepo)
	saleSvc := service.NewSaleService(saleRepo, productRepo, logRepo,
		time.Duration(cfg.SaleTxTimeoutSeconds)*time.Second)
	reportSvc := service.NewReportService(reportRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc)
	productsH := handler.NewProductsHandler(productSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc, cfg.LowStockThreshold)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db))

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/register", authH.Register)
		auth.GET("/profile", jwtMW, authH.Profile)
	}

	products := api.Group("/products")
	{
		// Reads are public so the storefront can browse the catalog.
		products.GET("", productsH.List)
		products.GET("/:id", productsH.GetByID)
		// Writes require a valid token.
		products.POST("", jwtMW, productsH.Create)
		products.PUT("/:id", jwtMW, productsH.Update)
		products.DELETE("/:id", jwtMW, productsH.Delete)
		products.PATCH("/:id/stock", jwtMW, productsH.AdjustStock)
	}

	sales := api.Group("/sales", jwtMW)
	{
		sales.POST("", salesH.CreateSale)
		sales.GET("", salesH.ListSales)
		sales.GET("/report", reportsH.DailySales)
		sales.GET("/hourly-sales", reportsH.HourlySales)
		sales.GET("/payment-analytics", reportsH.PaymentAnalytics)
		sales.GET("/category-sales", reportsH.CategorySales)
		sales.GET("/:id", salesH.GetSale)
		sales.GET("/:id/receipt", salesH.Receipt)
	}

	inventory := api.Group("/inventory", jwtMW)
	{
		inventory.GET("/logs", inventoryH.ListLogs)
		inventory.GET("/low-stock", inventoryH.LowStock)
	}

	users := api.Group("/users", jwtMW)
	{
		// Any authenticated user may list cashiers (dashboard dropdowns).
		users.GET("/cashiers/list", usersH.ListCashiers)

		admin := users.Group("", middleware.RequireRole(model.RoleAdmin))
		{
			admin.GET("", usersH.List)
			admin.POST("", usersH.Create)
			admin.GET("/:id", usersH.Get)
			admin.PUT("/:id", usersH.Update)
			admin.DELETE("/:id", usersH.Delete)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
