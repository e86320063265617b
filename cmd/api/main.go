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
	"gorm.io/gorm"

	"github.com/BruksfildServices01/moving-backoffice/internal/audit"
	"github.com/BruksfildServices01/moving-backoffice/internal/config"
	dbpkg "github.com/BruksfildServices01/moving-backoffice/internal/db"
	infraRepo "github.com/BruksfildServices01/moving-backoffice/internal/infra/repository"
	"github.com/BruksfildServices01/moving-backoffice/internal/middleware"
	"github.com/BruksfildServices01/moving-backoffice/internal/routes"
	ucOverview "github.com/BruksfildServices01/moving-backoffice/internal/usecase/overview"
)

func main() {

	cfg := config.Load()

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	var (
		db   *gorm.DB
		sink audit.Sink = audit.Discard{}
	)
	if cfg.AuditEnabled {
		db = dbpkg.NewDB(cfg)
		sink = audit.New(db)
	}
	auditDispatcher := audit.NewDispatcher(sink)

	store := infraRepo.NewCollectionsHTTPRepository(cfg.BackendURL, &http.Client{}, cfg.RequestTimeout)
	registry := ucOverview.NewRegistry(cfg.ViewTTL)

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins...))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "views": registry.Len()})
	})

	routes.RegisterRoutes(r, db, cfg, store, registry, auditDispatcher)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepViews(ctx, registry, cfg.ViewTTL)

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	auditDispatcher.Close()
	log.Println("server stopped")
}

// sweepViews drops idle views every quarter TTL until ctx ends.
func sweepViews(ctx context.Context, registry *ucOverview.Registry, ttl time.Duration) {
	every := ttl / 4
	if every < time.Minute {
		every = time.Minute
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := registry.Sweep(); n > 0 {
				log.Printf("swept %d idle views", n)
			}
		}
	}
}
