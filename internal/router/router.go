package router

import (
	"time"

	"github.com/chebellamachina/VC-LM/internal/config"
	"github.com/chebellamachina/VC-LM/internal/handler"
	"github.com/chebellamachina/VC-LM/internal/infra"
	"github.com/chebellamachina/VC-LM/internal/middleware"
	"github.com/chebellamachina/VC-LM/internal/repository"
	"github.com/chebellamachina/VC-LM/internal/service"
	"github.com/chebellamachina/VC-LM/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New wires repositories, services, and handlers into the HTTP engine.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher, almacen *infra.AlmacenAdjuntos) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
		middleware.ErrorHandler(),
		middleware.NewRateLimiter(100, time.Minute).Middleware(),
	)

	// Repositories
	solicitudRepo := repository.NewSolicitudRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)

	// Services
	solicitudSvc := service.NewSolicitudService(solicitudRepo, proveedorRepo, usuarioRepo, dispatcher, rdb)
	reporteSvc := service.NewReporteService(solicitudRepo, rdb)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	authSvc := service.NewAuthService(usuarioRepo, cfg)

	// Handlers
	healthH := handler.NewHealthHandler(db, rdb)
	authH := handler.NewAuthHandler(authSvc)
	solicitudH := handler.NewSolicitudHandler(solicitudSvc)
	reporteH := handler.NewReporteHandler(reporteSvc)
	usuarioH := handler.NewUsuarioHandler(usuarioSvc)
	proveedorH := handler.NewProveedorHandler(proveedorSvc)
	adjuntoH := handler.NewAdjuntoHandler(almacen)

	// Public
	r.GET("/health", healthH.Check)
	r.POST("/v1/auth/login", authH.Login)
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))

	// Any authenticated team member
	todos := auth.Group("", middleware.RequireEquipo("produccion", "admin"))
	{
		todos.POST("/solicitudes", solicitudH.Crear)
		todos.GET("/solicitudes", solicitudH.Listar)
		todos.GET("/solicitudes/:id", solicitudH.Obtener)
		todos.GET("/reportes/stats", reporteH.Stats)
		todos.GET("/proveedores", proveedorH.Listar)
		todos.POST("/adjuntos", adjuntoH.Subir)
		todos.GET("/adjuntos/:clave", adjuntoH.Descargar)
	}

	// CFO / treasury only
	admin := auth.Group("", middleware.RequireEquipo("admin"))
	{
		admin.POST("/solicitudes/:id/aprobar", solicitudH.Aprobar)
		admin.POST("/solicitudes/:id/rechazar", solicitudH.Rechazar)
		admin.POST("/solicitudes/:id/procesar", solicitudH.Procesar)
		admin.POST("/solicitudes/:id/completar", solicitudH.Completar)
		admin.PUT("/solicitudes/:id/notas", solicitudH.GuardarNotas)

		admin.GET("/reportes/calendario", reporteH.Calendario)
		admin.GET("/reportes/proximos", reporteH.Proximos)
		admin.GET("/reportes/cashflow", reporteH.Cashflow)
		admin.GET("/reportes/cashflow/acumulado", reporteH.CashflowAcumulado)

		admin.POST("/usuarios", usuarioH.Crear)
		admin.GET("/usuarios", usuarioH.Listar)
		admin.DELETE("/usuarios/:id", usuarioH.Eliminar)

		admin.POST("/proveedores", proveedorH.Crear)
	}

	return r
}
