package service

import (
	"insighthub/internal/config"
	"insighthub/internal/repository"
	"insighthub/internal/storage"
)

// Actor identifies the authenticated caller of a service operation,
// extracted from the JWT claims by the auth middleware.
type Actor struct {
	ID    int64
	Email string
	Admin bool
}

type Service struct {
	Auth    AuthService
	Post    PostService
	Follow  FollowService
	Profile ProfileService
}

func NewService(repo *repository.Repository, cfg *config.Config, store storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, cfg),
		Post:    NewPostService(repo.Post, repo.User),
		Follow:  NewFollowService(repo.Follow, repo.User),
		Profile: NewProfileService(repo.Profile, repo.User, repo.Post, repo.Follow, store, cfg),
	}
}
