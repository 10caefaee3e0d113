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

	"github.com/BruksfildServices01/service-scheduler/internal/client"
	"github.com/BruksfildServices01/service-scheduler/internal/config"
	"github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/page"
	"github.com/BruksfildServices01/service-scheduler/internal/timezone"
	"github.com/BruksfildServices01/service-scheduler/internal/web"
)

func main() {

	cfg := config.Load()

	defs, err := config.LoadDefinitions(cfg.ResourcesFile)
	if err != nil {
		log.Fatalf("failed to load resource definitions: %v", err)
	}

	if !timezone.IsValid(cfg.Timezone) {
		log.Printf("invalid TIMEZONE %q, using %s", cfg.Timezone, timezone.DefaultTimezone)
	}

	httpClient := &http.Client{Timeout: cfg.ClientTimeout}

	r := gin.Default()

	web.RegisterRoutes(r, web.Deps{
		Definitions: defs,
		Backend: func(def scheduling.Definition) page.Backend {
			return client.NewWithHTTPClient(cfg.APIBaseURL, def.Prefix, httpClient)
		},
		Timezone: cfg.Timezone,
	})

	srv := &http.Server{
		Addr:              cfg.WebAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Web running on %s (api: %s)", cfg.WebAddr(), cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start web server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down web server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("web server forced to shutdown: %v", err)
	}
}
