package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/EspacoVitaServices/salon-scheduler/internal/audit"
	"github.com/EspacoVitaServices/salon-scheduler/internal/cache"
	"github.com/EspacoVitaServices/salon-scheduler/internal/config"
	"github.com/EspacoVitaServices/salon-scheduler/internal/events"
	"github.com/EspacoVitaServices/salon-scheduler/internal/handlers"
	"github.com/EspacoVitaServices/salon-scheduler/internal/middleware"
	"github.com/EspacoVitaServices/salon-scheduler/internal/payments"
	"github.com/EspacoVitaServices/salon-scheduler/internal/infra/repository"
	"github.com/EspacoVitaServices/salon-scheduler/internal/storage"
	"github.com/EspacoVitaServices/salon-scheduler/internal/usecase/appointment"
	"github.com/EspacoVitaServices/salon-scheduler/internal/usecase/order"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	rdb *redis.Client,
) {
	// ==================================================
	// Infra compartilhada
	// ==================================================
	repo := repository.NewAppointmentGormRepository(db)
	catalogGw := repository.NewCatalogGormRepository(db)
	reports := repository.NewReportGormRepository(db)

	auditor := audit.NewDispatcher(audit.New(db))

	bus := events.NewBus()

	dayGrid := cache.NewDayGrid(rdb)
	dayGrid.SubscribeInvalidation(bus)

	photos := storage.NewPhotoStore(
		cfg.S3Bucket,
		cfg.S3Region,
		cfg.AWSAccessKeyID,
		cfg.AWSSecretKey,
	)

	var paymentLinker appointment.PaymentLinker
	if cfg.MPAccessToken != "" {
		if mp, err := payments.NewMercadoPago(cfg.MPAccessToken); err == nil {
			paymentLinker = mp
		}
	}

	// ==================================================
	// Use cases
	// ==================================================
	createUC := appointment.NewCreateAppointment(repo, catalogGw, bus, auditor)
	deleteUC := appointment.NewDeleteAppointment(repo, catalogGw, bus, auditor)
	finalizeUC := appointment.NewFinalizeAppointment(repo, catalogGw, reports, bus, auditor, paymentLinker)
	retryUC := appointment.NewRetryReport(repo, catalogGw, reports)
	dayViewUC := appointment.NewDayView(repo, dayGrid)
	historyUC := appointment.NewHistory(reports)
	composer := order.NewComposer(repo, catalogGw, auditor)

	// ==================================================
	// Handlers
	// ==================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	productHandler := handlers.NewProductHandler(db, photos)
	appointmentHandler := handlers.NewAppointmentHandler(
		repo, catalogGw,
		createUC, deleteUC, finalizeUC, retryUC, dayViewUC, composer,
	)
	historyHandler := handlers.NewHistoryHandler(historyUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	publicHandler := handlers.NewPublicHandler(db, repo)

	// ==================================================
	// Rotas públicas
	// ==================================================
	r.POST("/api/auth/register", authHandler.Register)
	r.POST("/api/auth/login", authHandler.Login)

	r.GET("/api/public/:slug/agenda", publicHandler.Agenda)
	r.GET("/api/public/:slug/services", publicHandler.Services)

	// ==================================================
	// Rotas privadas (token do salão)
	// ==================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/me", meHandler.Me)

		api.GET("/me/salon", salonHandler.Get)
		api.PATCH("/me/salon", salonHandler.Update)

		api.GET("/me/clients", clientHandler.List)
		api.POST("/me/clients", clientHandler.Create)
		api.DELETE("/me/clients/:id", clientHandler.Delete)

		api.GET("/me/employees", employeeHandler.List)
		api.POST("/me/employees", employeeHandler.Create)
		api.PATCH("/me/employees/:id", employeeHandler.Update)
		api.DELETE("/me/employees/:id", employeeHandler.Delete)

		api.GET("/me/services", serviceHandler.List)
		api.POST("/me/services", serviceHandler.Create)
		api.PATCH("/me/services/:id", serviceHandler.Update)
		api.DELETE("/me/services/:id", serviceHandler.Delete)

		api.GET("/me/products", productHandler.List)
		api.POST("/me/products", productHandler.Create)
		api.PATCH("/me/products/:id", productHandler.Update)
		api.DELETE("/me/products/:id", productHandler.Delete)
		api.POST("/me/products/:id/photo", productHandler.UploadPhoto)

		api.POST("/me/appointments", appointmentHandler.Create)
		api.GET("/me/appointments/day", appointmentHandler.Day)
		api.POST("/me/appointments/fill-range", appointmentHandler.FillRange)
		api.GET("/me/appointments/by-client", appointmentHandler.ByClient)
		api.GET("/me/appointments/by-employee", appointmentHandler.ByEmployee)
		api.GET("/me/appointments/:id", appointmentHandler.Get)
		api.DELETE("/me/appointments/:id", appointmentHandler.Delete)
		api.POST("/me/appointments/:id/finalize", appointmentHandler.Finalize)
		api.POST("/me/appointments/:id/report/retry", appointmentHandler.RetryReport)
		api.POST("/me/appointments/:id/items", appointmentHandler.AddItems)
		api.DELETE("/me/appointments/:id/items/:index", appointmentHandler.RemoveItem)

		api.GET("/me/history", historyHandler.List)

		api.GET("/me/audit-logs", auditLogsHandler.List)
	}
}
