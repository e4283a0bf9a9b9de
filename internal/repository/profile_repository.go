package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"insighthub/internal/apperror"
	"insighthub/internal/models"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int64) (*models.ProfileInfo, error) {
	var info models.ProfileInfo

	query := `SELECT * FROM user_info WHERE user_id = $1`

	err := r.db.GetContext(ctx, &info, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("profile info", userID)
		}
		return nil, fmt.Errorf("failed to get profile info: %w", err)
	}

	return &info, nil
}

// UpdateProfile writes the identity columns on users and upserts the
// user_info row in one transaction, so a failed upsert never leaves a
// half-updated profile. The upsert inserts on first edit and updates in
// place afterwards, keyed by the unique user_id.
func (r *profileRepository) UpdateProfile(ctx context.Context, user *models.User, info *models.ProfileInfo) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	userQuery := `
		UPDATE users
		SET username = :username, first_name = :first_name, last_name = :last_name, email = :email
		WHERE id = :id
	`

	result, err := tx.NamedExecContext(ctx, userQuery, user)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict(fmt.Sprintf("user with email %s already exists", user.Email))
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.NotFound("user", user.ID)
	}

	infoQuery := `
		INSERT INTO user_info
			(user_id, skill, experience, education, occupation, location, profession,
			 website, linkedin, github, twitter, facebook, instagram, bio, profile_visibility)
		VALUES
			(:user_id, :skill, :experience, :education, :occupation, :location, :profession,
			 :website, :linkedin, :github, :twitter, :facebook, :instagram, :bio, :profile_visibility)
		ON CONFLICT (user_id) DO UPDATE SET
			skill = EXCLUDED.skill,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			occupation = EXCLUDED.occupation,
			location = EXCLUDED.location,
			profession = EXCLUDED.profession,
			website = EXCLUDED.website,
			linkedin = EXCLUDED.linkedin,
			github = EXCLUDED.github,
			twitter = EXCLUDED.twitter,
			facebook = EXCLUDED.facebook,
			instagram = EXCLUDED.instagram,
			bio = EXCLUDED.bio,
			profile_visibility = EXCLUDED.profile_visibility
	`

	if _, err := tx.NamedExecContext(ctx, infoQuery, info); err != nil {
		return fmt.Errorf("failed to upsert profile info: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit profile update: %w", err)
	}

	return nil
}

func (r *profileRepository) UpdateAvatar(ctx context.Context, userID int64, filename string) error {
	query := `UPDATE user_info SET profile_image = $1 WHERE user_id = $2`

	result, err := r.db.ExecContext(ctx, query, filename, userID)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.NotFound("profile info", userID)
	}

	return nil
}
