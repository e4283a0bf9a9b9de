package test

import (
	"context"
	"io"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"insighthub/internal/models"
	"insighthub/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.CreateUserRequest) (*models.User, string, string, error) {
	args := m.Called(ctx, req)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, email, password)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	args := m.Called(ctx, refreshToken)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Logout(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	var token *jwt.Token
	if args.Get(0) != nil {
		token = args.Get(0).(*jwt.Token)
	}
	return token, args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, actor service.Actor, req service.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, actor, req)
	var post *models.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*models.Post)
	}
	return post, args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, actor service.Actor, req service.UpdatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, actor, req)
	var post *models.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*models.Post)
	}
	return post, args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, actor service.Actor, postID int64) error {
	args := m.Called(ctx, actor, postID)
	return args.Error(0)
}

func (m *MockPostService) GetPost(ctx context.Context, postID int64) (*service.PostWithComments, error) {
	args := m.Called(ctx, postID)
	var post *service.PostWithComments
	if args.Get(0) != nil {
		post = args.Get(0).(*service.PostWithComments)
	}
	return post, args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, error) {
	args := m.Called(ctx, limit, offset)
	var posts []models.Post
	if args.Get(0) != nil {
		posts = args.Get(0).([]models.Post)
	}
	return posts, args.Error(1)
}

func (m *MockPostService) AddComment(ctx context.Context, actor service.Actor, postID int64, text string) (*models.Comment, error) {
	args := m.Called(ctx, actor, postID, text)
	var comment *models.Comment
	if args.Get(0) != nil {
		comment = args.Get(0).(*models.Comment)
	}
	return comment, args.Error(1)
}

type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Follow(ctx context.Context, followerID, targetID int64) error {
	args := m.Called(ctx, followerID, targetID)
	return args.Error(0)
}

func (m *MockFollowService) Unfollow(ctx context.Context, followerID, targetID int64) error {
	args := m.Called(ctx, followerID, targetID)
	return args.Error(0)
}

func (m *MockFollowService) IsFollowing(ctx context.Context, followerID, targetID int64) (bool, error) {
	args := m.Called(ctx, followerID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowService) Counts(ctx context.Context, userID int64) (*service.FollowCounts, error) {
	args := m.Called(ctx, userID)
	var counts *service.FollowCounts
	if args.Get(0) != nil {
		counts = args.Get(0).(*service.FollowCounts)
	}
	return counts, args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID, viewerID int64) (*service.Profile, error) {
	args := m.Called(ctx, userID, viewerID)
	var profile *service.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*service.Profile)
	}
	return profile, args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID int64, req service.UpdateProfileRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

func (m *MockProfileService) UploadAvatar(ctx context.Context, userID int64, fileName string, file io.Reader) (string, error) {
	args := m.Called(ctx, userID, fileName, file)
	return args.String(0), args.Error(1)
}

func (m *MockProfileService) DeleteAccount(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendContact(name, email, message string) error {
	args := m.Called(name, email, message)
	return args.Error(0)
}
