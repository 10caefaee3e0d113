package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-scheduler/internal/audit"
	"github.com/BruksfildServices01/service-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/service-scheduler/internal/db"
	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/infra/guard"
	infraRepo "github.com/BruksfildServices01/service-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/service-scheduler/internal/metrics"
	"github.com/BruksfildServices01/service-scheduler/internal/routes"
	ucScheduling "github.com/BruksfildServices01/service-scheduler/internal/usecase/scheduling"
)

func main() {

	cfg := config.Load()

	defs, err := config.LoadDefinitions(cfg.ResourcesFile)
	if err != nil {
		log.Fatalf("failed to load resource definitions: %v", err)
	}

	var (
		repo domain.Repository
		sink audit.Sink
	)

	switch cfg.Storage {
	case config.StorageMemory:
		log.Println("storage: memory (dados não persistem entre execuções)")
		repo = infraRepo.NewSchedulingMemoryRepository()
		sink = audit.LogSink{}
	default:
		db := dbpkg.NewDB(cfg)
		repo = infraRepo.NewSchedulingGormRepository(db)
		sink = audit.New(db)
	}

	dispatcher := audit.NewDispatcher(sink)

	var submitGuard ucScheduling.SubmissionGuard = guard.NoopSubmissionGuard{}
	if cfg.RedisURL != "" {
		rdb, err := guard.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		defer rdb.Close()
		submitGuard = guard.NewRedisSubmissionGuard(rdb, cfg.SubmitGuardTTL)
		log.Printf("submission guard enabled (ttl=%s)", cfg.SubmitGuardTTL)
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New("agserv")
	}

	r := gin.Default()

	routes.RegisterRoutes(r, routes.Deps{
		Repo:           repo,
		Guard:          submitGuard,
		Audit:          dispatcher,
		Definitions:    defs,
		Metrics:        m,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}
	dispatcher.Close()
}
