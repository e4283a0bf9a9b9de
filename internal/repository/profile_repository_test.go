package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insighthub/internal/apperror"
	"insighthub/internal/models"
)

func profileColumns() []string {
	return []string{
		"id", "skill", "experience", "education", "occupation", "location",
		"profession", "website", "linkedin", "github", "twitter", "facebook",
		"instagram", "bio", "profile_image", "profile_visibility", "user_id",
	}
}

func TestProfileRepository_GetByUserID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewProfileRepository(sqlxDB)
	ctx := context.Background()

	t.Run("returns profile info", func(t *testing.T) {
		mock.ExpectQuery("SELECT \\* FROM user_info WHERE user_id").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(profileColumns()).
				AddRow(int64(1), "Go", "5 years", "BSc", "Engineer", "Berlin",
					"Backend", "https://jdoe.dev", "", "jdoe", "", "", "",
					"Hello.", "abc123.png", true, int64(3)))

		info, err := repo.GetByUserID(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, "Berlin", info.Location)
		assert.Equal(t, "abc123.png", info.ProfileImage)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT \\* FROM user_info WHERE user_id").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(profileColumns()))

		_, err := repo.GetByUserID(ctx, 99)

		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})
}

func TestProfileRepository_UpdateProfile(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewProfileRepository(sqlxDB)
	ctx := context.Background()

	user := &models.User{
		ID:        3,
		Username:  "jdoe",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "jdoe@example.com",
	}
	info := &models.ProfileInfo{
		UserID:            3,
		Bio:               "Hello.",
		Location:          "Berlin",
		ProfileVisibility: true,
	}

	t.Run("updates user and profile info in one transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE users").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO user_info").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.UpdateProfile(ctx, user, info))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed upsert rolls back the user update", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE users").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO user_info").
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.UpdateProfile(ctx, user, info)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email is a conflict and rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE users").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})
		mock.ExpectRollback()

		err := repo.UpdateProfile(ctx, user, info)

		assert.True(t, errors.Is(err, apperror.ErrConflict))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user is not found and rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE users").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.UpdateProfile(ctx, user, info)

		assert.True(t, errors.Is(err, apperror.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProfileRepository_UpdateAvatar(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewProfileRepository(sqlxDB)
	ctx := context.Background()

	t.Run("updates the stored filename", func(t *testing.T) {
		mock.ExpectExec("UPDATE user_info SET profile_image").
			WithArgs("abc123.png", int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateAvatar(ctx, 3, "abc123.png"))
	})

	t.Run("missing row is not found", func(t *testing.T) {
		mock.ExpectExec("UPDATE user_info SET profile_image").
			WithArgs("abc123.png", int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateAvatar(ctx, 99, "abc123.png")

		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})
}
