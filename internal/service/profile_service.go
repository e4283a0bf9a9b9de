package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/xid"

	"insighthub/internal/apperror"
	"insighthub/internal/config"
	"insighthub/internal/models"
	"insighthub/internal/repository"
	"insighthub/internal/storage"
)

// allowedAvatarTypes maps the accepted file extensions to the MIME type
// the uploaded bytes must actually carry.
var allowedAvatarTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

type UpdateProfileRequest struct {
	FirstName         string
	LastName          string
	Username          string
	Email             string
	Skill             string
	Experience        string
	Education         string
	Occupation        string
	Location          string
	Profession        string
	Website           string
	LinkedIn          string
	GitHub            string
	Twitter           string
	Facebook          string
	Instagram         string
	Bio               string
	ProfileVisibility bool
}

// Profile is the full profile page payload: identity, extended info,
// the user's posts and the follow state relative to the viewer.
type Profile struct {
	User        *models.User        `json:"user"`
	Info        *models.ProfileInfo `json:"info"`
	Posts       []models.Post       `json:"posts"`
	Counts      FollowCounts        `json:"counts"`
	IsFollowing bool                `json:"isFollowing"`
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID, viewerID int64) (*Profile, error)
	UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) error
	// UploadAvatar validates, resizes and stores the image, then records
	// the generated filename. Returns the stored filename.
	UploadAvatar(ctx context.Context, userID int64, fileName string, file io.Reader) (string, error)
	DeleteAccount(ctx context.Context, userID int64) error
}

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	followRepo  repository.FollowRepository
	storage     storage.Storage
	cfg         *config.Config
}

func NewProfileService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
	store storage.Storage,
	cfg *config.Config,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
		followRepo:  followRepo,
		storage:     store,
		cfg:         cfg,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID, viewerID int64) (*Profile, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	info, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		// Profile info is created lazily; a missing row means defaults.
		if errors.Is(err, apperror.ErrNotFound) {
			info = models.DefaultProfileInfo(userID)
		} else {
			return nil, err
		}
	}

	posts, err := s.postRepo.GetByAuthorID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.FollowerCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	following, err := s.followRepo.FollowingCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if viewerID != 0 && viewerID != userID {
		isFollowing, err = s.followRepo.IsFollowing(ctx, viewerID, userID)
		if err != nil {
			return nil, err
		}
	}

	return &Profile{
		User:        user,
		Info:        info,
		Posts:       posts,
		Counts:      FollowCounts{Followers: followers, Following: following},
		IsFollowing: isFollowing,
	}, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Username = req.Username
	user.Email = req.Email

	info := &models.ProfileInfo{
		Skill:             req.Skill,
		Experience:        req.Experience,
		Education:         req.Education,
		Occupation:        req.Occupation,
		Location:          req.Location,
		Profession:        req.Profession,
		Website:           req.Website,
		LinkedIn:          req.LinkedIn,
		GitHub:            req.GitHub,
		Twitter:           req.Twitter,
		Facebook:          req.Facebook,
		Instagram:         req.Instagram,
		Bio:               req.Bio,
		ProfileVisibility: req.ProfileVisibility,
		UserID:            userID,
	}

	// Both rows change together or not at all; the repository runs the
	// identity update and the upsert in one transaction.
	return s.profileRepo.UpdateProfile(ctx, user, info)
}

func (s *profileService) UploadAvatar(ctx context.Context, userID int64, fileName string, file io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	wantMIME, ok := allowedAvatarTypes[ext]
	if !ok {
		return "", apperror.ValidationFailed("profilePic", "invalid file type, allowed: png, jpg, jpeg, gif")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	// The extension alone is not trusted; the bytes must actually be the
	// image format they claim to be.
	detected := mimetype.Detect(data)
	if !detected.Is(wantMIME) {
		return "", apperror.ValidationFailed("profilePic", "file content does not match its extension")
	}

	thumb, err := storage.Thumbnail(bytes.NewReader(data), ext, s.cfg.AvatarThumbSize)
	if err != nil {
		return "", apperror.ValidationFailed("profilePic", "uploaded file is not a valid image")
	}

	// Random, collision-resistant name; the client-supplied name is only
	// used for its extension.
	objectName := xid.New().String() + ext

	err = s.storage.SaveAvatar(ctx, objectName, bytes.NewReader(thumb), int64(len(thumb)), wantMIME)
	if err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	if err := s.profileRepo.UpdateAvatar(ctx, userID, objectName); err != nil {
		// Keep storage and database consistent when the row update fails.
		if delErr := s.storage.DeleteAvatar(ctx, objectName); delErr != nil {
			slog.Warn("failed to remove orphaned avatar",
				slog.String("object", objectName),
				slog.Any("error", delErr))
		}
		return "", err
	}

	return objectName, nil
}

func (s *profileService) DeleteAccount(ctx context.Context, userID int64) error {
	return s.userRepo.DeleteUser(ctx, userID)
}
