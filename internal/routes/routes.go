package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-chatbot/internal/audit"
	"github.com/BruksfildServices01/barber-chatbot/internal/chatbot"
	"github.com/BruksfildServices01/barber-chatbot/internal/config"
	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
	"github.com/BruksfildServices01/barber-chatbot/internal/handlers"
	"github.com/BruksfildServices01/barber-chatbot/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/barber-chatbot/internal/infra/repository"
	"github.com/BruksfildServices01/barber-chatbot/internal/middleware"
	"github.com/BruksfildServices01/barber-chatbot/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barber-chatbot/internal/usecase/booking"
)

// RegisterRoutes wires the booking stack and mounts the public API.
// rdb may be nil, in which case booked-time lists come from the in-process
// cache when one is configured, or straight from the database.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	auditDispatcher *audit.Dispatcher,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	roster := domain.Roster(cfg.Barbers)
	clock := timezone.Clock(cfg.Timezone)

	var bookingRepo domain.Repository = infraRepo.NewBookingGormRepository(db, cfg.StoreTimeout)
	switch {
	case rdb != nil:
		bookingRepo = cache.NewBookedTimesCache(bookingRepo, rdb, cfg.CacheTTL, log)
	case cfg.LocalCacheSize > 0:
		bookingRepo = cache.NewBookedTimesLRU(bookingRepo, cfg.LocalCacheSize, cfg.CacheTTL)
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	checkAvailabilityUC := ucBooking.NewCheckAvailability(bookingRepo)
	findAlternativesUC := ucBooking.NewFindAlternatives(bookingRepo)
	listDaySlotsUC := ucBooking.NewListDaySlots(bookingRepo, roster)
	commitBookingUC := ucBooking.NewCommitBooking(bookingRepo, roster, auditDispatcher, clock)

	engine := chatbot.NewEngine(
		roster,
		checkAvailabilityUC,
		findAlternativesUC,
		commitBookingUC,
		clock,
		log,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	chatbotHandler := handlers.NewChatbotHandler(engine, log)
	bookingHandler := handlers.NewBookingHandler(roster, listDaySlotsUC, commitBookingUC)

	// ======================================================
	// 🌐 PUBLIC API
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.NewRateLimiter(cfg.RateLimitPerMin, log).Middleware())
	{
		api.POST("/chatbot", chatbotHandler.Turn)

		api.GET("/barbers", bookingHandler.ListBarbers)
		api.GET("/availability", bookingHandler.Availability)
		api.POST("/bookings", bookingHandler.Create)
	}
}
