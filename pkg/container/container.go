package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"douren-backend/internal/config"
	"douren-backend/internal/domains/artist"
	artistHandler "douren-backend/internal/domains/artist/handler"
	artistRepo "douren-backend/internal/domains/artist/repository"
	artistService "douren-backend/internal/domains/artist/service"
	"douren-backend/internal/domains/event"
	eventHandler "douren-backend/internal/domains/event/handler"
	eventRepo "douren-backend/internal/domains/event/repository"
	eventService "douren-backend/internal/domains/event/service"
	"douren-backend/internal/domains/invite"
	inviteHandler "douren-backend/internal/domains/invite/handler"
	inviteRepo "douren-backend/internal/domains/invite/repository"
	inviteService "douren-backend/internal/domains/invite/service"
	"douren-backend/internal/domains/tag"
	tagHandler "douren-backend/internal/domains/tag/handler"
	tagRepo "douren-backend/internal/domains/tag/repository"
	tagService "douren-backend/internal/domains/tag/service"
	"douren-backend/internal/domains/user"
	userHandler "douren-backend/internal/domains/user/handler"
	userRepo "douren-backend/internal/domains/user/repository"
	userService "douren-backend/internal/domains/user/service"
	infraCache "douren-backend/internal/infrastructure/cache"
	"douren-backend/internal/infrastructure/database"
	"douren-backend/internal/infrastructure/storage"
	"douren-backend/pkg/jwt"
)

// Container wires the whole dependency graph:
// config -> infrastructure -> repositories -> services -> handlers.
type Container struct {
	Config *config.Config

	// Infrastructure
	DB          *database.PostgresDB
	Cache       *infraCache.RedisCache
	Storage     *storage.MinIOStorage
	QueueClient *asynq.Client
	JWTManager  *jwt.Manager

	// Repositories
	ArtistRepo artist.Repository
	TagRepo    tag.Repository
	EventRepo  event.Repository
	InviteRepo invite.Repository
	UserRepo   user.Repository

	// Services
	ArtistService artist.Service
	TagService    tag.Service
	EventService  event.Service
	InviteService invite.Service
	UserService   user.Service

	// Handlers
	ArtistHandler *artistHandler.ArtistHandler
	TagHandler    *tagHandler.TagHandler
	EventHandler  *eventHandler.EventHandler
	InviteHandler *inviteHandler.InviteHandler
	UserHandler   *userHandler.UserHandler
}

// New builds the container. Order matters: each phase depends on the
// previous one.
func New(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initInfrastructure(); err != nil {
		return nil, fmt.Errorf("infrastructure init failed: %w", err)
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("✅ Container initialized successfully")
	return c, nil
}

func (c *Container) initInfrastructure() error {
	ctx := context.Background()

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	log.Println("✅ PostgreSQL connected")

	c.Cache = infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := c.Cache.Connect(ctx); err != nil {
		// Cache is an optimization, not a dependency
		log.Printf("⚠️  Redis unavailable, continuing without cache warm-up: %v", err)
	} else {
		log.Println("✅ Redis connected")
	}

	c.Storage, err = storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	log.Println("✅ MinIO storage ready")

	c.QueueClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	log.Println("✅ Task queue client ready")

	c.JWTManager = jwt.NewManager(
		c.Config.JWT.Secret,
		time.Duration(c.Config.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(c.Config.JWT.RefreshTokenExpiry)*time.Hour,
	)

	return nil
}

func (c *Container) initRepositories() {
	c.ArtistRepo = artistRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.TagRepo = tagRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.EventRepo = eventRepo.NewPostgresRepository(c.DB.Pool)
	c.InviteRepo = inviteRepo.NewPostgresRepository(c.DB.Pool)
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.ArtistService = artistService.NewArtistService(c.ArtistRepo, c.Storage, c.QueueClient)
	c.TagService = tagService.NewTagService(c.TagRepo)
	c.EventService = eventService.NewEventService(c.EventRepo, c.Storage, c.QueueClient)
	c.InviteService = inviteService.NewInviteService(c.InviteRepo, c.Config.Invite, c.Config.App.Environment)
	c.UserService = userService.NewUserService(c.UserRepo, c.InviteService, c.JWTManager)
}

func (c *Container) initHandlers() {
	c.ArtistHandler = artistHandler.NewArtistHandler(c.ArtistService)
	c.TagHandler = tagHandler.NewTagHandler(c.TagService)
	c.EventHandler = eventHandler.NewEventHandler(c.EventService)
	c.InviteHandler = inviteHandler.NewInviteHandler(c.InviteService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Close releases infrastructure resources in reverse order.
func (c *Container) Close() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			log.Printf("queue client close: %v", err)
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Printf("cache close: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Println("👋 Container shut down")
}
