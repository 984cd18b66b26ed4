// Command portal runs the appointment portal gateway: it keeps the session
// and resource slices for one client, guards its views, and relays actions
// to the hospital appointment API.
//
//	@title			Appointment Portal Gateway
//	@version		1.0
//	@description	Session, guard and resource-slice gateway in front of the hospital appointment API.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/medibook/appointment-portal/internal/api"
	"github.com/medibook/appointment-portal/internal/core/navigation"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/core/service"
	"github.com/medibook/appointment-portal/internal/core/state"
	"github.com/medibook/appointment-portal/internal/infrastructure/backend"
	mongostore "github.com/medibook/appointment-portal/internal/infrastructure/db/mongo"
	redisstore "github.com/medibook/appointment-portal/internal/infrastructure/db/redis"
	"github.com/medibook/appointment-portal/internal/infrastructure/localstore"
	"github.com/medibook/appointment-portal/internal/pkg/config"
	"github.com/medibook/appointment-portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "portal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "appointment-portal",
	})

	store := state.New()

	client, err := backend.New(backend.Options{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.Timeout,
		Rate:    cfg.Backend.Rate,
		Burst:   cfg.Backend.Burst,
	}, store.Auth, logger.Component("backend"))
	if err != nil {
		return err
	}
	defer client.Close()

	chatStore, closeChatStore, err := openChatStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeChatStore()

	routes, err := navigation.DefaultTable()
	if err != nil {
		return err
	}

	keepAlive := service.NewKeepAlive(client, cfg.KeepAlive.Interval, logger.Component("keepalive"))
	heartbeat := keepAlive.Start(ctx)
	defer heartbeat.Stop()

	e := api.NewRouter(api.Dependencies{
		Store:        store,
		Routes:       routes,
		Auth:         service.NewAuthService(client, store.Auth, logger.Component("auth")),
		Doctors:      service.NewDoctorService(client, store, logger.Component("doctors")),
		Patients:     service.NewPatientService(client, store, logger.Component("patients")),
		Appointments: service.NewAppointmentService(client, client, store, logger.Component("appointments")),
		Admin:        service.NewAdminService(client, store, logger.Component("admin")),
		Chat:         service.NewChatService(client, chatStore, logger.Component("chat")),
		Backend:      client,
		ChatStore:    chatStore,
		Log:          logger.Component("gateway"),
	})

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("backend", cfg.Backend.URL).Msg("gateway listening")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}
	return nil
}

// openChatStore returns the configured chat session store and a function
// releasing its connection.
func openChatStore(ctx context.Context, cfg *config.Config) (ports.ChatSessionStore, func(), error) {
	log := logger.Component("chat_store")

	switch cfg.Chat.Store {
	case config.ChatStoreRedis:
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("chat sessions in redis")
		return redisstore.NewChatSessionStore(rdb, cfg.Chat.ClientKey), closeWith(log, "redis", rdb.Close), nil

	case config.ChatStoreMongo:
		mc, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		store := mongostore.NewChatSessionStore(db, cfg.Chat.ClientKey)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = mc.Disconnect(context.Background())
			return nil, nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("chat sessions in mongo")
		disconnect := func() error { return mc.Disconnect(context.Background()) }
		return store, closeWith(log, "mongo", disconnect), nil

	default:
		path := cfg.Chat.StorePath
		if path == "" {
			var err error
			if path, err = localstore.DefaultPath(); err != nil {
				return nil, nil, err
			}
		}
		log.Info().Str("path", filepath.Clean(path)).Msg("chat sessions on disk")
		return localstore.NewChatSessionStore(path), func() {}, nil
	}
}

func closeWith(log zerolog.Logger, name string, fn func() error) func() {
	return func() {
		if err := fn(); err != nil {
			log.Warn().Err(err).Str("store", name).Msg("close failed")
		}
	}
}
