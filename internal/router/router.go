package router

import (
	"time"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/config"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/handler"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/middleware"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/repository"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/service"
	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
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
	supplierRepo := repository.NewSupplierRepository(db)
	medicationRepo := repository.NewMedicationStockRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	medOrderRepo := repository.NewMedicationOrderRepository(db)
	matOrderRepo := repository.NewMaterialOrderRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	supplierSvc := service.NewSupplierService(supplierRepo)
	medicationSvc := service.NewMedicationService(medicationRepo)
	materialSvc := service.NewMaterialService(materialRepo, matOrderRepo)

	medOrderSvc := service.NewOrderService(medOrderRepo, medicationRepo, cfg.PDFStoragePath)
	matOrderSvc := service.NewOrderService(matOrderRepo, materialRepo, cfg.PDFStoragePath)

	medReconcile := service.NewReconcileService(medOrderRepo, medicationRepo, userRepo, dispatcher, service.MedicationPolicy, cfg.ReconcileAtomic)
	matReconcile := service.NewReconcileService(matOrderRepo, materialRepo, userRepo, dispatcher, service.MaterialPolicy, cfg.ReconcileAtomic)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	medicationsH := handler.NewMedicationsHandler(medicationSvc)
	materialsH := handler.NewMaterialsHandler(materialSvc)
	medOrdersH := handler.NewOrdersHandler(medOrderSvc, medReconcile)
	matOrdersH := handler.NewOrdersHandler(matOrderSvc, matReconcile)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	adminMW := middleware.RequireAdmin(authSvc)

	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/session", authH.Session)
		v1.POST("/auth/logout", authH.Logout)

		// Orders: any authenticated user can place and read; resolving
		// an order is an administrator action with a fresh role check.
		for prefix, h := range map[string]*handler.OrdersHandler{
			"/orders/medications": medOrdersH,
			"/orders/materials":   matOrdersH,
		} {
			grp := v1.Group(prefix)
			grp.POST("", h.Place)
			grp.GET("/pending", h.ListPending)
			grp.GET("/:id", h.Get)
			grp.GET("/:id/pdf", h.ExportPDF)
			grp.PUT("/:id/state", adminMW, h.UpdateState)
		}

		// Master data: reads for everyone, writes for administrators
		v1.GET("/suppliers", suppliersH.List)
		v1.GET("/suppliers/:id", suppliersH.Get)
		suppliers := v1.Group("/suppliers", adminMW)
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		v1.GET("/materials", materialsH.List)
		v1.GET("/materials/:id", materialsH.Get)
		materials := v1.Group("/materials", adminMW)
		{
			materials.POST("", materialsH.Create)
			materials.PUT("/:id", materialsH.Update)
			materials.DELETE("/:id", materialsH.Delete)
		}

		v1.GET("/medications", medicationsH.List)
		v1.GET("/medications/:id", medicationsH.Get)
		medications := v1.Group("/medications", adminMW)
		{
			medications.POST("", medicationsH.Create)
			medications.PUT("/:id", medicationsH.Update)
			medications.DELETE("/:id", medicationsH.Delete)
		}

		users := v1.Group("/users", adminMW)
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
		}
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
