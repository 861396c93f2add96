package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/SergeyKozhin/yearly-calendar/internal/api"
	"github.com/SergeyKozhin/yearly-calendar/internal/backup"
	events_service "github.com/SergeyKozhin/yearly-calendar/internal/business/events"
	"github.com/SergeyKozhin/yearly-calendar/internal/config"
	"github.com/SergeyKozhin/yearly-calendar/internal/database"
	"github.com/SergeyKozhin/yearly-calendar/internal/database/events"
	"github.com/SergeyKozhin/yearly-calendar/internal/holidays"
	"github.com/SergeyKozhin/yearly-calendar/internal/interchange"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
	"github.com/SergeyKozhin/yearly-calendar/internal/pkg/auth"
	"github.com/SergeyKozhin/yearly-calendar/internal/redis"
	"github.com/SergeyKozhin/yearly-calendar/internal/storage"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type eventStore interface {
	Load(ctx context.Context) ([]*model.Event, error)
	Save(ctx context.Context, events []*model.Event) error
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		if err := hashPassword(os.Stdin, os.Stdout, os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "hash-password: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initializae logger: %v", err)
	}

	codec := interchange.NewCodec(config.Location())

	store, err := initStore(ctx, logger, codec)
	if err != nil {
		logger.Fatalw("unable to initialize storage", "storage", config.Storage(), "err", err)
	}

	eventsService := events_service.NewService(logger, store, config.Location())
	if err := eventsService.Load(ctx); err != nil {
		logger.Fatalw("unable to load events", "err", err)
	}

	registry, err := holidays.NewDefaultRegistry(config.HolidaysDir())
	if err != nil {
		logger.Fatalw("unable to load holidays", "dir", config.HolidaysDir(), "err", err)
	}

	if spec := config.BackupCron(); spec != "" {
		scheduler := backup.NewScheduler(logger, eventsService, config.BackupDir(), config.Location())
		if err := scheduler.Start(spec); err != nil {
			logger.Fatalw("unable to schedule backups", "err", err)
		}
	}

	editors := auth.Credentials{
		User: config.EditUser(),
		Hash: config.EditPasswordHash(),
	}
	if !editors.Enabled() {
		logger.Warnw("Edit routes are not protected, set EDIT_USER and EDIT_PASSWORD_HASH to enable basic auth")
	}

	api, err := api.NewApi(
		logger,
		config.Location(),
		editors,
		config.MaxImportSize(),
		eventsService,
		registry,
	)
	if err != nil {
		logger.Fatalw("unable to initialize api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	closer.Bind(func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout())
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Errorw("Failed shutting down server", "err", err)
		}
	})

	go func() {
		logger.Infow("Started server", "port", config.Port(), "storage", config.Storage(), "timezone", config.Location().String())
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("server error", "err", err)
			closer.Exit(1)
		}
	}()

	closer.Hold()
}

func initStore(ctx context.Context, logger *zap.SugaredLogger, codec *interchange.Codec) (eventStore, error) {
	switch config.Storage() {
	case config.StorageFile:
		return storage.NewFileStore(logger, config.DataFile(), codec), nil

	case config.StorageMemory:
		return storage.NewMemoryStore(), nil

	case config.StorageRedis:
		pool := redis.NewRedisPool(logger)
		return redis.NewEventStore(pool, config.RedisKey(), codec, logger), nil

	case config.StoragePostgres:
		db, err := database.NewPGX(ctx)
		if err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			return nil, err
		}
		return events.NewStore(db, events.NewRepository(), logger), nil

	default:
		return nil, fmt.Errorf("unknown storage %q", config.Storage())
	}
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
