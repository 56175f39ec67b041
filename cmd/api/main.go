package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-chatbot/internal/audit"
	"github.com/BruksfildServices01/barber-chatbot/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-chatbot/internal/db"
	"github.com/BruksfildServices01/barber-chatbot/internal/infra/cache"
	"github.com/BruksfildServices01/barber-chatbot/internal/logger"
	"github.com/BruksfildServices01/barber-chatbot/internal/routes"
	"github.com/BruksfildServices01/barber-chatbot/internal/timezone"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.IsProduction())
	defer func() { _ = log.Sync() }()

	if !timezone.IsValid(cfg.Timezone) {
		log.Warn("unknown timezone, using default",
			zap.String("timezone", cfg.Timezone),
			zap.String("default", timezone.DefaultTimezone),
		)
		cfg.Timezone = timezone.DefaultTimezone
	}

	db := dbpkg.NewDB(cfg, log)

	var rdb *redis.Client
	if cfg.CacheEnabled() {
		client, err := cache.NewClient(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Warn("redis unavailable, booked-times cache disabled", zap.Error(err))
		} else {
			rdb = client
			defer rdb.Close()
		}
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)
	defer auditDispatcher.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, rdb, auditDispatcher)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	log.Info("server running", zap.String("addr", cfg.Addr()), zap.Strings("barbers", cfg.Barbers))
	if err := serve(srv, quit, log); err != nil {
		// returning still runs the deferred closes of the audit queue and redis
		log.Error("server stopped", zap.Error(err))
	}
}

// serve blocks until the listener fails or quit fires, then shuts srv down.
func serve(srv *http.Server, quit <-chan os.Signal, log *zap.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-quit:
		log.Info("server shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
