package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/notetime/booking-api/internal/config"
	dbpkg "github.com/notetime/booking-api/internal/db"
	infraRepo "github.com/notetime/booking-api/internal/infra/repository"
	"github.com/notetime/booking-api/internal/middleware"
	"github.com/notetime/booking-api/internal/notify"
	"github.com/notetime/booking-api/internal/reminder"
	"github.com/notetime/booking-api/internal/routes"
	"github.com/notetime/booking-api/internal/timezone"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	// lembretes diários (e-mail + SMS)
	loc := timezone.Location(cfg.Timezone)
	reminders := reminder.NewService(
		infraRepo.NewBookingGormRepository(db),
		notify.NewMailer(cfg),
		cfg,
		loc,
	)
	reminders.StartScheduler()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
