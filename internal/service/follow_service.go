package service

import (
	"context"

	"insighthub/internal/apperror"
	"insighthub/internal/repository"
)

// FollowCounts is the aggregate view shown on a profile.
type FollowCounts struct {
	Followers int `json:"followers"`
	Following int `json:"following"`
}

type FollowService interface {
	// Follow is idempotent: following an already-followed user is a no-op.
	Follow(ctx context.Context, followerID, targetID int64) error
	// Unfollow is idempotent: removing a missing edge is not an error.
	Unfollow(ctx context.Context, followerID, targetID int64) error
	IsFollowing(ctx context.Context, followerID, targetID int64) (bool, error)
	Counts(ctx context.Context, userID int64) (*FollowCounts, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *followService) Follow(ctx context.Context, followerID, targetID int64) error {
	if followerID == targetID {
		return apperror.ValidationFailed("targetId", "you cannot follow yourself")
	}

	if _, err := s.userRepo.GetUserByID(ctx, targetID); err != nil {
		return err
	}

	return s.followRepo.Follow(ctx, followerID, targetID)
}

func (s *followService) Unfollow(ctx context.Context, followerID, targetID int64) error {
	return s.followRepo.Unfollow(ctx, followerID, targetID)
}

func (s *followService) IsFollowing(ctx context.Context, followerID, targetID int64) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, targetID)
}

func (s *followService) Counts(ctx context.Context, userID int64) (*FollowCounts, error) {
	followers, err := s.followRepo.FollowerCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	following, err := s.followRepo.FollowingCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &FollowCounts{Followers: followers, Following: following}, nil
}
