package main

import (
	"log"

	"betenlace/config"
	"betenlace/jobs"
	"betenlace/routes"
	"betenlace/services"
	"betenlace/services/archive"
	"betenlace/services/cache"
	"betenlace/services/ingest"
	"betenlace/services/lock"
	"betenlace/services/logger"
	"betenlace/services/notification"
	"betenlace/services/store"
	"betenlace/utils"
)

func main() {
	config.LoadEnv()
	settings := config.LoadSettings()

	appLogger, err := logger.NewZapLogger(logger.ParseLevel(settings.LogLevel), settings.Env == "dev")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	loc, err := utils.LoadLocation(settings.OperatorTimezone)
	if err != nil {
		log.Fatalf("Invalid OPERATOR_TIMEZONE %q: %v", settings.OperatorTimezone, err)
	}

	ingestors, err := config.LoadIngestors(settings.IngestorsFile)
	if err != nil {
		log.Fatalf("Failed to load ingestors: %v", err)
	}

	router, m, c, err := config.InitApp(settings, loc)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	services.SetTokenSecret(settings.JWTSecret)

	repo := store.NewStore(config.DB, settings.BulkBatchSize)
	if err := repo.Migrate(); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	var locker lock.Locker = lock.NewLocalLocker()
	var statusCache cache.StatusCache = cache.NewMemoryStatusCache()
	if config.RedisClient != nil {
		locker = lock.NewRedisLocker(config.RedisClient, settings.LockTTL)
		statusCache = cache.NewRedisStatusCache(config.RedisClient)
	}

	notifiers := []notification.Service{notification.NewMelodyService(m)}
	if settings.ChatWebhookURL != "" {
		notifiers = append(notifiers, notification.NewWebhookService(settings.ChatWebhookURL))
	}

	var archiver archive.Archiver = archive.NopArchiver{}
	if config.Cloudinary != nil {
		archiver = archive.NewCloudinaryArchiver(config.Cloudinary)
	}

	ingestService := ingest.NewService(ingest.ServiceOptions{
		Repo:             repo,
		Locker:           locker,
		Cache:            statusCache,
		Notifier:         notification.NewMultiService(appLogger, notifiers...),
		Archiver:         archiver,
		Logger:           appLogger,
		Ingestors:        ingestors,
		Location:         loc,
		MinCPATrackerDay: settings.MinCPATrackerDay,
	})

	if err := jobs.InitCronJobs(c, settings.WatchdogCron, ingestService); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, ingestService)

	appLogger.Info("🚀 Server starting on port %s (%d ingestor, múi giờ %s)", settings.Port, len(ingestors), loc)
	if err := router.Run(":" + settings.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
