package handlers

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"insighthub/internal/config"
	"insighthub/internal/database"
	"insighthub/internal/mail"
	"insighthub/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	PostService    service.PostService
	FollowService  service.FollowService
	ProfileService service.ProfileService
	Mailer         mail.Mailer
	DB             *database.DB
	Cfg            *config.Config
	Logger         *slog.Logger
	Validate       *validator.Validate
}

func NewHandlers(services *service.Service, mailer mail.Mailer, db *database.DB, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		PostService:    services.Post,
		FollowService:  services.Follow,
		ProfileService: services.Profile,
		Mailer:         mailer,
		DB:             db,
		Cfg:            cfg,
		Logger:         logger,
		Validate:       validator.New(),
	}
}
