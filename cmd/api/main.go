package main

import (
	"os"
	"os/signal"
	"syscall"

	config "github.com/jgrivera/fruition/configs"
	"github.com/jgrivera/fruition/database"
	"github.com/jgrivera/fruition/logger"
	"github.com/jgrivera/fruition/repository"
	"github.com/jgrivera/fruition/routes"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("🔥 Invalid configuration: %v", err)
	}
	logger.Init(cfg.LogLevel)

	repo, err := newBadgeRepository(cfg)
	if err != nil {
		logrus.Fatalf("🔥 Failed to set up badge store: %v", err)
	}

	app := routes.NewApp(cfg, repo)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logrus.Info("Shutting down server")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("Shutdown failed: %v", err)
		}
	}()

	logrus.Infof("✅ Server is running on %s", cfg.ListenAddr())
	if err := app.Listen(cfg.ListenAddr()); err != nil {
		logrus.Fatalf("🔥 Server failed to start: %v", err)
	}
}

func newBadgeRepository(cfg *config.Config) (repository.BadgeRepository, error) {
	if cfg.DBDriver == config.DriverMemory {
		logrus.Warn("Using in-memory badge store, data is lost on exit")
		repo, err := repository.NewMemoryBadgeRepository()
		if err != nil {
			return nil, err
		}
		return repo, nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return repository.NewBadgeRepository(db), nil
}
