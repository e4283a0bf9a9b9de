package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"insighthub/internal/models"
)

type UserRepository interface {
	// CreateUser inserts the user row and its default profile-info row in a
	// single transaction. The password is hashed inside the repository.
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID int64, newPassword string) error
	UpdateRefreshToken(ctx context.Context, userID int64, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	GetByAuthorID(ctx context.Context, authorID int64) ([]models.Post, error)
	List(ctx context.Context, limit, offset int) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID int64) error
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentsByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
}

type FollowRepository interface {
	Follow(ctx context.Context, followerID, followedID int64) error
	Unfollow(ctx context.Context, followerID, followedID int64) error
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)
	FollowerCount(ctx context.Context, userID int64) (int, error)
	FollowingCount(ctx context.Context, userID int64) (int, error)
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.ProfileInfo, error)
	// UpdateProfile writes the user identity columns and the profile-info
	// row in a single transaction.
	UpdateProfile(ctx context.Context, user *models.User, info *models.ProfileInfo) error
	UpdateAvatar(ctx context.Context, userID int64, filename string) error
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Follow  FollowRepository
	Profile ProfileRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Follow:  NewFollowRepository(db),
		Profile: NewProfileRepository(db),
	}
}
