package app

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"gigflow/internal/config"
	"gigflow/internal/controller"
	"gigflow/internal/logger"
	"gigflow/internal/notifier"
	"gigflow/internal/repo"
	"gigflow/internal/service"
	"gigflow/pkg/http_server"
	"gigflow/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
)

func runMigrations(postgresDB *postgres.Postgres, sourceUrl string) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{})
	if err != nil {
		logger.Fatal("failed to prepare migration driver", "error", err.Error())
	}

	migrations, err := migrate.NewWithDatabaseInstance(sourceUrl, "postgres", driver)
	if err != nil {
		logger.Fatal("failed to load migrations", "error", err.Error())
	}

	if err := migrations.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no change made by migration scripts")
		} else {
			logger.Fatal("migration failed", "error", err.Error())
		}
	}
}

func Run() {
	cfg := config.New()
	logger.Init(cfg.Env)

	logger.Info("connecting database...")
	postgresDB, err := postgres.NewDB(cfg.PostgresConn)
	if err != nil {
		logger.Fatal("error occurred while connecting to db", "error", err.Error())
	}
	defer postgresDB.Close()

	logger.Info("running migrations...")
	runMigrations(postgresDB, cfg.MigrationsUrl)

	repositories := repo.NewRepositories(postgresDB)
	hub := notifier.NewHub()
	services := service.NewServices(repositories, hub, cfg.JWTSecret)
	handler := echo.New()

	logger.Info("setup routes...")
	controller.SetupRoutesHandlers(handler, services, hub, cfg.JWTSecret)

	logger.Info("starting server...", "address", cfg.ServerAddress)
	httpServer := http_server.New(handler, cfg.ServerAddress)

	logger.Info("ready to process requests")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		logger.Info("got signal: " + s.String())
	case err = <-httpServer.Notify():
		logger.Error("server stopped", "error", err.Error())
	}

	logger.Info("shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		logger.Error("shutdown error", "error", err.Error())
	} else {
		logger.Info("successful shutdown")
	}
}
