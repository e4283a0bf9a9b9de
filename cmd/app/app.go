package app

import (
	"log"

	"insighthub/internal/config"
	"insighthub/internal/database"
	"insighthub/internal/mail"
	"insighthub/internal/repository"
	"insighthub/internal/service"
	"insighthub/internal/storage"
)

// App wires the dependency graph: database, avatar storage, mailer,
// repositories and services.
func App(cfg *config.Config) (*database.DB, *service.Service, mail.Mailer) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		log.Fatalf("failed to initialize avatar storage: %v", err)
	}

	mailer := mail.NewMailer(cfg)

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store)

	return db, services, mailer
}
