package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"douren-backend/internal/config"
	artistJob "douren-backend/internal/domains/artist/job"
	eventJob "douren-backend/internal/domains/event/job"
	tagJob "douren-backend/internal/domains/tag/job"
	"douren-backend/internal/infrastructure/queue"
	"douren-backend/internal/shared"
	"douren-backend/pkg/container"
	"douren-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize container: %v", err)
	}
	defer c.Close()

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.Job.WorkerConcurrency,
		Queues: map[string]int{
			shared.QueueDefault:     6,
			shared.QueueMaintenance: 3,
		},
	})

	mux := asynq.NewServeMux()
	mux.Handle(shared.TypeSyncTagCounts, tagJob.NewSyncCountsHandler(c.TagService))
	mux.Handle(shared.TypeBackfillBooths, eventJob.NewBackfillHandler(c.EventService))
	mux.Handle(shared.TypeDeleteArtistFiles, artistJob.NewDeleteFilesHandler(c.Storage))
	mux.Handle(shared.TypeCleanupOrphans, artistJob.NewCleanupOrphansHandler(c.DB.Pool))

	scheduler, err := queue.NewScheduler(redisOpt, cfg.Job)
	if err != nil {
		log.Fatalf("❌ Failed to configure scheduler: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatalf("❌ Scheduler error: %v", err)
		}
	}()

	go func() {
		log.Printf("🚀 Worker running with concurrency %d", cfg.Job.WorkerConcurrency)
		if err := srv.Run(mux); err != nil {
			log.Fatalf("❌ Worker error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down worker...")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Println("✅ Worker stopped")
}
