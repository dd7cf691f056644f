package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/notetime/booking-api/internal/audit"
	"github.com/notetime/booking-api/internal/cache"
	"github.com/notetime/booking-api/internal/config"
	"github.com/notetime/booking-api/internal/handlers"
	infraRepo "github.com/notetime/booking-api/internal/infra/repository"
	"github.com/notetime/booking-api/internal/middleware"
	"github.com/notetime/booking-api/internal/notify"
	"github.com/notetime/booking-api/internal/timezone"
	ucBooking "github.com/notetime/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (injeção explícita, nada de singleton global)
	// ======================================================
	loc := timezone.Location(cfg.Timezone)

	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	catalogCache := cache.NewCatalogCache(
		cfg.RedisAddr,
		cfg.RedisPassword,
		cfg.RedisDB,
		5*time.Minute,
	)

	mailer := notify.NewMailer(cfg)

	// ======================================================
	// USE CASES (BOOKINGS)
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher, loc)
	confirmBookingUC := ucBooking.NewConfirmBooking(bookingRepo, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher, loc)
	changeStatusUC := ucBooking.NewChangeBookingStatus(bookingRepo, auditDispatcher, loc)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		confirmBookingUC,
		cancelBookingUC,
		changeStatusUC,
		getBookingUC,
		listBookingsUC,
		mailer,
		loc,
	)

	serviceHandler := handlers.NewServiceHandler(db, catalogCache)
	staffHandler := handlers.NewStaffHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	unitHandler := handlers.NewUnitHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, catalogCache, createBookingUC, mailer)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/staff", publicHandler.ListStaff)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/bookings/:id/status", bookingHandler.ChangeStatus)

			secured.GET("/clients", clientHandler.List)
			secured.GET("/services", serviceHandler.List)

			// ------------------------------
			// GESTÃO (admin)
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.PATCH("/services/:id/activate", serviceHandler.Activate)
				admin.PATCH("/services/:id/deactivate", serviceHandler.Deactivate)

				admin.GET("/staff", staffHandler.List)
				admin.POST("/staff", staffHandler.Create)
				admin.PATCH("/staff/:id", staffHandler.Update)

				admin.PATCH("/clients/:id", clientHandler.Update)

				admin.GET("/units", unitHandler.List)
				admin.POST("/units", unitHandler.Create)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
