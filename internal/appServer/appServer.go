package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds124wfegd/event-catalog/config"
	repository "github.com/ds124wfegd/event-catalog/internal/database/postgres"
	rediscache "github.com/ds124wfegd/event-catalog/internal/database/redis"
	"github.com/ds124wfegd/event-catalog/internal/imagestore"
	"github.com/ds124wfegd/event-catalog/internal/service"
	"github.com/ds124wfegd/event-catalog/internal/transport"
	"github.com/ds124wfegd/event-catalog/internal/worker"

	"github.com/ds124wfegd/event-catalog/pkg/postgres"
	"github.com/ds124wfegd/event-catalog/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},           // ban on outdate TLS certificate
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags), // os.Stderr can be replaced with ElsasticSearch in the feature
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize image storage
	images, err := imagestore.New(&cfg.Images)
	if err != nil {
		logrus.Fatalf("Failed to initialize image store: %v", err)
	}

	// Initialize repositories
	trackRepo := repository.NewTrackRepository(db)
	eventRepo := repository.NewEventRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	recommendationRepo := repository.NewRecommendationRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Catalog cache is optional; everything works without redis, just
	// slower on /full-data.
	var catalogCache service.CatalogCache
	if cfg.Cache.Enabled {
		redisClient := redis.NewRedisClient(&cfg.Redis)
		defer redisClient.Close()
		catalogCache = rediscache.NewCatalogCache(redisClient, cfg.Cache.TTL)
		logrus.Info("Catalog cache initialized")
	} else {
		logrus.Warn("Catalog cache disabled, /full-data always hits the database")
	}

	// Initialize services
	trackService := service.NewTrackService(trackRepo, eventRepo, feedbackRepo, images, catalogCache)
	eventService := service.NewEventService(eventRepo, trackRepo, feedbackRepo, images, catalogCache)
	feedbackService := service.NewFeedbackService(feedbackRepo, eventRepo, catalogCache)
	recommendationService := service.NewRecommendationService(recommendationRepo, eventRepo)
	catalogService := service.NewCatalogService(trackRepo, eventRepo, feedbackRepo, adminRepo, images, catalogCache)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Orphan sweeping only makes sense when images live on disk
	if cfg.Images.Backend == "file" {
		cleanupWorker := worker.NewUploadsCleanupWorker(adminRepo, cfg.Images.Dir, cfg.Worker.CleanupInterval)
		go cleanupWorker.Start(ctx)
		logrus.Info("Uploads cleanup worker started")
	}

	// Initialize handlers
	trackHandler := transport.NewTrackHandler(trackService)
	eventHandler := transport.NewEventHandler(eventService)
	feedbackHandler := transport.NewFeedbackHandler(feedbackService)
	recommendationHandler := transport.NewRecommendationHandler(recommendationService)
	catalogHandler := transport.NewCatalogHandler(catalogService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	uploadsDir := ""
	if cfg.Images.Backend == "file" {
		uploadsDir = cfg.Images.Dir
	}

	srv := new(Server)
	go func() {
		routes := transport.InitRoutes(trackHandler, eventHandler, feedbackHandler, recommendationHandler, catalogHandler, uploadsDir)
		if err := srv.Run(cfg, routes); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
