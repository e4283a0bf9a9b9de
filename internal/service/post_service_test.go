package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"insighthub/internal/apperror"
	"insighthub/internal/models"
)

func newPostService(postRepo *MockPostRepository, userRepo *MockUserRepository) PostService {
	return NewPostService(postRepo, userRepo)
}

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()
	actor := Actor{ID: 7, Email: "jdoe@example.com"}

	t.Run("stamps the author display name and date", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		userRepo := new(MockUserRepository)

		userRepo.On("GetUserByID", ctx, int64(7)).
			Return(&models.User{ID: 7, FirstName: "John", LastName: "Doe"}, nil)
		postRepo.On("Create", ctx, mock.AnythingOfType("*models.Post")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Post).ID = 5
			}).
			Return(nil)

		svc := newPostService(postRepo, userRepo)

		post, err := svc.CreatePost(ctx, actor, CreatePostRequest{
			Title:    "Hello",
			Subtitle: "sub",
			Body:     "text",
			ImgURL:   "https://example.com/pic.jpg",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(5), post.ID)
		assert.Equal(t, "John Doe", post.Author)
		assert.Equal(t, int64(7), post.AuthorID)
		assert.Equal(t, time.Now().Format("January 2, 2006"), post.Date)
	})

	t.Run("author lookup failure aborts the create", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		userRepo := new(MockUserRepository)

		userRepo.On("GetUserByID", ctx, int64(7)).
			Return(nil, apperror.NotFound("user", 7))

		svc := newPostService(postRepo, userRepo)

		_, err := svc.CreatePost(ctx, actor, CreatePostRequest{Title: "Hello"})

		assert.True(t, errors.Is(err, apperror.ErrNotFound))
		postRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("non-admin cannot edit", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		svc := newPostService(postRepo, new(MockUserRepository))

		_, err := svc.UpdatePost(ctx, Actor{ID: 7, Admin: false}, UpdatePostRequest{PostID: 5})

		assert.True(t, errors.Is(err, apperror.ErrForbidden))
		postRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("admin edits any post regardless of author", func(t *testing.T) {
		postRepo := new(MockPostRepository)

		postRepo.On("GetByID", ctx, int64(5)).
			Return(&models.Post{ID: 5, Title: "Old", AuthorID: 42, Author: "Someone Else", Date: "May 1, 2026"}, nil)
		postRepo.On("Update", ctx, mock.AnythingOfType("*models.Post")).Return(nil)

		svc := newPostService(postRepo, new(MockUserRepository))

		post, err := svc.UpdatePost(ctx, Actor{ID: 1, Admin: true}, UpdatePostRequest{
			PostID:   5,
			Title:    "New title",
			Subtitle: "new sub",
			Body:     "new body",
			ImgURL:   "https://example.com/new.jpg",
		})

		require.NoError(t, err)
		assert.Equal(t, "New title", post.Title)
		// Authorship and publish date are immutable.
		assert.Equal(t, int64(42), post.AuthorID)
		assert.Equal(t, "Someone Else", post.Author)
		assert.Equal(t, "May 1, 2026", post.Date)
	})

	t.Run("editing a missing post", func(t *testing.T) {
		postRepo := new(MockPostRepository)

		postRepo.On("GetByID", ctx, int64(99)).
			Return(nil, apperror.NotFound("post", 99))

		svc := newPostService(postRepo, new(MockUserRepository))

		_, err := svc.UpdatePost(ctx, Actor{ID: 1, Admin: true}, UpdatePostRequest{PostID: 99})

		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})
}

func TestPostService_DeletePost(t *testing.T) {
	ctx := context.Background()

	t.Run("non-admin cannot delete", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		svc := newPostService(postRepo, new(MockUserRepository))

		err := svc.DeletePost(ctx, Actor{ID: 7, Admin: false}, 5)

		assert.True(t, errors.Is(err, apperror.ErrForbidden))
		postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("admin deletes", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("Delete", ctx, int64(5)).Return(nil)

		svc := newPostService(postRepo, new(MockUserRepository))

		assert.NoError(t, svc.DeletePost(ctx, Actor{ID: 1, Admin: true}, 5))
		postRepo.AssertExpectations(t)
	})
}

func TestPostService_GetPost(t *testing.T) {
	ctx := context.Background()

	t.Run("bundles the post with its comments", func(t *testing.T) {
		postRepo := new(MockPostRepository)

		postRepo.On("GetByID", ctx, int64(5)).
			Return(&models.Post{ID: 5, Title: "Hello"}, nil)
		postRepo.On("GetCommentsByPostID", ctx, int64(5)).
			Return([]models.Comment{
				{ID: 2, Text: "second", CommenterName: "Jane Roe"},
				{ID: 1, Text: "first", CommenterName: "John Doe"},
			}, nil)

		svc := newPostService(postRepo, new(MockUserRepository))

		got, err := svc.GetPost(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, "Hello", got.Post.Title)
		require.Len(t, got.Comments, 2)
		assert.Equal(t, int64(2), got.Comments[0].ID)
	})

	t.Run("missing post", func(t *testing.T) {
		postRepo := new(MockPostRepository)

		postRepo.On("GetByID", ctx, int64(99)).
			Return(nil, apperror.NotFound("post", 99))

		svc := newPostService(postRepo, new(MockUserRepository))

		_, err := svc.GetPost(ctx, 99)

		assert.True(t, errors.Is(err, apperror.ErrNotFound))
		postRepo.AssertNotCalled(t, "GetCommentsByPostID", mock.Anything, mock.Anything)
	})
}

func TestPostService_ListPosts(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"defaults applied", 0, 0, 20, 0},
		{"oversized limit clamped", 500, 0, 20, 0},
		{"negative offset reset", 10, -5, 10, 0},
		{"valid values pass through", 10, 30, 10, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(MockPostRepository)
			postRepo.On("List", ctx, tt.wantLimit, tt.wantOffset).
				Return([]models.Post{}, nil)

			svc := newPostService(postRepo, new(MockUserRepository))

			_, err := svc.ListPosts(ctx, tt.limit, tt.offset)

			assert.NoError(t, err)
			postRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_AddComment(t *testing.T) {
	ctx := context.Background()
	actor := Actor{ID: 7}

	t.Run("comment on a missing post is rejected", func(t *testing.T) {
		postRepo := new(MockPostRepository)

		postRepo.On("GetByID", ctx, int64(99)).
			Return(nil, apperror.NotFound("post", 99))

		svc := newPostService(postRepo, new(MockUserRepository))

		_, err := svc.AddComment(ctx, actor, 99, "hello")

		assert.True(t, errors.Is(err, apperror.ErrNotFound))
		postRepo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
	})

	t.Run("stores the comment against the post", func(t *testing.T) {
		postRepo := new(MockPostRepository)

		postRepo.On("GetByID", ctx, int64(5)).
			Return(&models.Post{ID: 5}, nil)
		postRepo.On("CreateComment", ctx, mock.AnythingOfType("*models.Comment")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Comment).ID = 3
			}).
			Return(nil)

		svc := newPostService(postRepo, new(MockUserRepository))

		comment, err := svc.AddComment(ctx, actor, 5, "great read")

		require.NoError(t, err)
		assert.Equal(t, int64(3), comment.ID)
		assert.Equal(t, int64(7), comment.AuthorID)
		assert.Equal(t, int64(5), comment.PostID)
	})
}
