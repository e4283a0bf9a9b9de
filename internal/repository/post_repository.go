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

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO blog_post (title, subtitle, date, body, author, img_url, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		post.Title,
		post.Subtitle,
		post.Date,
		post.Body,
		post.Author,
		post.ImgURL,
		post.AuthorID,
	).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM blog_post WHERE id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("post", postID)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) GetByAuthorID(ctx context.Context, authorID int64) ([]models.Post, error) {
	query := `SELECT * FROM blog_post WHERE author_id = $1 ORDER BY id DESC`

	// Initialized so an empty result serializes as [] rather than null.
	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts by author: %w", err)
	}

	return posts, nil
}

// List returns posts in reverse-chronological order (newest id first).
func (r *postRepository) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	query := `SELECT * FROM blog_post ORDER BY id DESC LIMIT $1 OFFSET $2`

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE blog_post SET
			title = :title,
			subtitle = :subtitle,
			body = :body,
			img_url = :img_url
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.NotFound("post", post.ID)
	}

	return nil
}

func (r *postRepository) Delete(ctx context.Context, postID int64) error {
	// Comments on the post are removed by ON DELETE CASCADE.
	query := `DELETE FROM blog_post WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.NotFound("post", postID)
	}

	return nil
}

func (r *postRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comment (text, author_id, post_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		comment.Text,
		comment.AuthorID,
		comment.PostID,
	).Scan(&comment.ID)
	if err != nil {
		// The post can be deleted between the existence check and the
		// insert; the FK violation is still a missing post.
		if isForeignKeyViolation(err) {
			return apperror.NotFound("post", comment.PostID)
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *postRepository) GetCommentsByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	query := `
		SELECT comment.id, comment.text, comment.author_id, comment.post_id,
		       users.first_name || ' ' || users.last_name AS commenter_name
		FROM comment
		JOIN users ON comment.author_id = users.id
		WHERE comment.post_id = $1
		ORDER BY comment.id DESC
	`

	comments := []models.Comment{}
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return comments, nil
}
