package di

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"task-manager-api/application/serviceimpl"
	"task-manager-api/domain/ports"
	"task-manager-api/domain/repositories"
	"task-manager-api/domain/services"
	"task-manager-api/infrastructure/database"
	"task-manager-api/infrastructure/messaging"
	"task-manager-api/interfaces/api/handlers"
	"task-manager-api/pkg/config"
	"task-manager-api/pkg/logger"
	"task-manager-api/pkg/metrics"
	"task-manager-api/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	EventPublisher ports.TaskEventPublisher
	Metrics        *metrics.Metrics // nil when METRICS_ENABLED=false
	EventScheduler scheduler.EventScheduler

	// Repositories
	TaskRepository repositories.TaskRepository

	// Services
	TaskService        services.TaskService
	StoreHealthService *serviceimpl.StoreHealthService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbCfg := c.Config.Database
	db, err := database.NewDatabase(database.DatabaseConfig{
		Driver:          dbCfg.Driver,
		Host:            dbCfg.Host,
		Port:            dbCfg.Port,
		User:            dbCfg.User,
		Password:        dbCfg.Password,
		DBName:          dbCfg.DBName,
		SSLMode:         dbCfg.SSLMode,
		Path:            dbCfg.Path,
		MaxOpenConns:    dbCfg.MaxOpenConns,
		MaxIdleConns:    dbCfg.MaxIdleConns,
		ConnMaxLifetime: dbCfg.ConnMaxLifetime,
		PingOnStart:     dbCfg.PingOnStart,
		LogLevel:        dbCfg.LogLevel,
		SlowThreshold:   dbCfg.SlowThreshold,
	})
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "driver", dbCfg.Driver, "host", dbCfg.Host, "db", dbCfg.DBName)

	if dbCfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
		logger.Info("Database migrated")
	}

	if c.Config.Metrics.Enabled {
		c.Metrics = metrics.New("taskapi")
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := c.Metrics.RegisterDB(sqlDB, dbCfg.DBName); err != nil {
			logger.Warn("Failed to register database metrics", "error", err)
		}
		logger.Info("Metrics enabled", "path", c.Config.Metrics.Path)
	}

	// events are optional; the API works without a broker
	if c.Config.NATS.URL != "" {
		publisher, err := messaging.NewNATSTaskEventPublisher(messaging.NATSConfig{
			URL:           c.Config.NATS.URL,
			SubjectPrefix: c.Config.NATS.SubjectPrefix,
		})
		if err != nil {
			logger.Warn("NATS unavailable, task events disabled", "error", err)
		} else {
			c.EventPublisher = publisher
			logger.Info("NATS task event publisher initialized", "url", c.Config.NATS.URL)
		}
	}
	if c.EventPublisher == nil {
		c.EventPublisher = messaging.NewNoopTaskEventPublisher()
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.TaskRepository = database.NewTaskRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.EventPublisher)

	var recorder serviceimpl.StoreHealthRecorder
	if c.Metrics != nil {
		recorder = c.Metrics
	}
	c.EventScheduler = scheduler.NewEventScheduler()
	c.StoreHealthService = serviceimpl.NewStoreHealthService(
		serviceimpl.StoreHealthConfig{CheckCron: c.Config.Scheduler.HealthCheckCron},
		func(ctx context.Context) error { return database.Ping(ctx, c.DB) },
		recorder,
		c.EventScheduler,
	)

	logger.Info("Services initialized")
	return nil
}

func (c *Container) initScheduler() error {
	if !c.StoreHealthService.Enabled() {
		logger.Info("Store health job disabled")
		return nil
	}

	if err := c.StoreHealthService.RegisterJob(); err != nil {
		return fmt.Errorf("failed to register store health job: %w", err)
	}
	logger.Info("Store health job registered", "cron", c.Config.Scheduler.HealthCheckCron)

	c.EventScheduler.Start()
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
	}

	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			logger.Warn("Failed to close event publisher", "error", err)
		} else {
			logger.Info("Event publisher closed")
		}
	}

	if c.DB != nil {
		if err := database.Close(c.DB); err != nil {
			logger.Warn("Failed to close database connection", "error", err)
		} else {
			logger.Info("Database connection closed")
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		TaskService: c.TaskService,
		DB:          c.DB,
		AppName:     c.Config.App.Name,
		Pagination: handlers.PaginationConfig{
			DefaultLimit: c.Config.Pagination.DefaultLimit,
			MaxLimit:     c.Config.Pagination.MaxLimit,
		},
	}
}
