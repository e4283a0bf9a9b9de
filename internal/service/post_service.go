package service

import (
	"context"
	"time"

	"insighthub/internal/apperror"
	"insighthub/internal/models"
	"insighthub/internal/repository"
)

type CreatePostRequest struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

type UpdatePostRequest struct {
	PostID   int64
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

// PostWithComments is the detail view: the post plus its comments,
// newest first, each carrying the commenter's display name.
type PostWithComments struct {
	Post     *models.Post     `json:"post"`
	Comments []models.Comment `json:"comments"`
}

type PostService interface {
	CreatePost(ctx context.Context, actor Actor, req CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, actor Actor, req UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, actor Actor, postID int64) error
	GetPost(ctx context.Context, postID int64) (*PostWithComments, error)
	ListPosts(ctx context.Context, limit, offset int) ([]models.Post, error)
	AddComment(ctx context.Context, actor Actor, postID int64, text string) (*models.Comment, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (p *postService) CreatePost(ctx context.Context, actor Actor, req CreatePostRequest) (*models.Post, error) {
	author, err := p.userRepo.GetUserByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Date:     time.Now().Format("January 2, 2006"),
		Body:     req.Body,
		Author:   author.DisplayName(),
		ImgURL:   req.ImgURL,
		AuthorID: author.ID,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost is admin-only. The middleware already gates the route; the
// check here keeps the rule intact for any other caller.
func (p *postService) UpdatePost(ctx context.Context, actor Actor, req UpdatePostRequest) (*models.Post, error) {
	if !actor.Admin {
		return nil, apperror.Forbidden("only an admin can edit posts")
	}

	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Subtitle = req.Subtitle
	post.Body = req.Body
	post.ImgURL = req.ImgURL

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, actor Actor, postID int64) error {
	if !actor.Admin {
		return apperror.Forbidden("only an admin can delete posts")
	}

	return p.postRepo.Delete(ctx, postID)
}

func (p *postService) GetPost(ctx context.Context, postID int64) (*PostWithComments, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := p.postRepo.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &PostWithComments{
		Post:     post,
		Comments: comments,
	}, nil
}

func (p *postService) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	return p.postRepo.List(ctx, limit, offset)
}

func (p *postService) AddComment(ctx context.Context, actor Actor, postID int64, text string) (*models.Comment, error) {
	// The parent post must exist before the comment row is written.
	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:     text,
		AuthorID: actor.ID,
		PostID:   postID,
	}

	if err := p.postRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}
