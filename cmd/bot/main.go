package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/handler"
	"storefront/internal/logger"
	"storefront/internal/middleware"
	"storefront/internal/repository/document"
	"storefront/internal/service"
	"storefront/internal/session"
	"storefront/internal/storage"
	"storefront/internal/storage/filestore"
	pgstore "storefront/internal/storage/postgres"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting storefront bot", zap.String("storage", cfg.Storage))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open the document backend
	var backend storage.Backend
	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := connectDatabase(cfg.DatabaseURL, log)
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := runMigrations(db, cfg.MigrationsDir, log); err != nil {
			log.Fatal("Failed to run migrations", zap.Error(err))
		}
		backend = pgstore.New(db)
	default:
		fs, err := filestore.New(cfg.DataDir)
		if err != nil {
			log.Fatal("Failed to open data directory", zap.Error(err))
		}
		backend = fs
	}

	store := storage.New(backend, log)
	if err := seedDocuments(ctx, store); err != nil {
		log.Fatal("Failed to seed documents", zap.Error(err))
	}

	// Initialize repositories
	settingsRepo := document.NewSettingsRepo(store)
	menuRepo := document.NewMenuRepo(store)
	userRepo := document.NewUserRepo(store)
	orderRepo := document.NewOrderRepo(store)
	adminRepo := document.NewAdminRepo(store)

	// Initialize services
	settingsService := service.NewSettingsService(settingsRepo)
	if err := settingsService.MergeAdminIDs(ctx, cfg.AdminIDs); err != nil {
		log.Fatal("Failed to merge ADMIN_IDS", zap.Error(err))
	}
	authService := service.NewAuthService(settingsRepo, adminRepo)
	userService := service.NewUserService(userRepo, settingsRepo)

	settings, err := settingsService.Get(ctx)
	if err != nil {
		log.Fatal("Failed to load settings", zap.Error(err))
	}
	token, err := config.ResolveToken(cfg.BotToken, settings.BotToken)
	if err != nil {
		log.Fatal("Bot token is not configured", zap.Error(err))
	}

	// Initialize Telegram bot. Updates are handled one at a time.
	bot, err := tele.NewBot(tele.Settings{
		Token:       token,
		Poller:      &tele.LongPoller{Timeout: cfg.PollTimeout},
		ParseMode:   tele.ModeHTML,
		Synchronous: true,
		OnError: func(err error, c tele.Context) {
			log.Error("Handler failed", zap.Error(err))
		},
	})
	if err != nil {
		log.Fatal("Failed to create bot", zap.Error(err))
	}

	log.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	messenger := service.NewMessengerService(handler.NewNotifier(bot), authService, userService, log)
	svc := handler.Services{
		Auth:      authService,
		Settings:  settingsService,
		Menu:      service.NewMenuService(menuRepo),
		Users:     userService,
		Orders:    service.NewOrderService(orderRepo),
		Stats:     service.NewStatsService(userRepo, orderRepo, log),
		Messenger: messenger,
	}
	sessions := session.NewEngine(session.Services{
		Menu:      svc.Menu,
		Settings:  svc.Settings,
		Auth:      svc.Auth,
		Users:     svc.Users,
		Orders:    svc.Orders,
		Messenger: svc.Messenger,
	}, log)

	// Initialize handler
	bot.Use(middleware.BotStatusMiddleware(authService, log))
	h := handler.NewHandler(bot, svc, sessions, log)
	h.RegisterHandlers()

	log.Info("Handlers registered")

	// Start bot in background
	go func() {
		log.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	log.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	log.Info("Bot stopped gracefully")
}

// seedDocuments writes the default of every document that does not exist yet
func seedDocuments(ctx context.Context, store *storage.Store) error {
	defaults := []struct {
		name string
		def  any
	}{
		{storage.DocConfig, domain.DefaultSettings()},
		{storage.DocMenu, domain.DefaultMenu()},
		{storage.DocUsers, domain.Users{}},
		{storage.DocOrders, []domain.Order{}},
		{storage.DocAdmins, domain.AdminRegistry{Admins: []domain.Admin{}}},
	}
	for _, d := range defaults {
		if err := store.Ensure(ctx, d.name, d.def); err != nil {
			return err
		}
	}
	return nil
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, log *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			log.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			log.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations applies the documents table schema
func runMigrations(db *sql.DB, dir string, log *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		log.Info("Migrations applied successfully")
	}

	return nil
}
