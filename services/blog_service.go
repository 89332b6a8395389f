package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	msgBlogNotFound    = "Blog post not found."
	msgCommentNotFound = "Comment not found."

	popularBlogsLimit = 5
)

type BlogService interface {
	CreateBlog(ctx context.Context, req *models.CreateBlogRequest) (*models.Blog, *ServiceError)
	GetBlog(ctx context.Context, id string) (*models.Blog, *ServiceError)
	UpdateBlog(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.Blog, *ServiceError)
	DeleteBlog(ctx context.Context, id string) *ServiceError
	GetAllBlogs(ctx context.Context) ([]models.Blog, *ServiceError)
	GetPopularBlogs(ctx context.Context) ([]models.Blog, *ServiceError)
	AddComment(ctx context.Context, blogID string, req *models.CommentRequest) (*models.Blog, *ServiceError)
	EditComment(ctx context.Context, blogID, commentID, content string) (*models.Blog, *ServiceError)
	DeleteComment(ctx context.Context, blogID, commentID string) (*models.Blog, *ServiceError)
	GetCategories(ctx context.Context) ([]string, *ServiceError)
	LikeBlog(ctx context.Context, id string) (*models.Blog, *ServiceError)
	GetCommentCount(ctx context.Context, id string) (*models.CommentCount, *ServiceError)
}

type blogServiceImpl struct {
	blogs  repository.BlogRepository
	logger *zap.Logger
}

func NewBlogService(blogs repository.BlogRepository, logger *zap.Logger) BlogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &blogServiceImpl{blogs: blogs, logger: logger}
}

func (s *blogServiceImpl) CreateBlog(ctx context.Context, req *models.CreateBlogRequest) (*models.Blog, *ServiceError) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, Validation("Title and content are required.")
	}
	author, svcErr := parseID(req.Author, "author")
	if svcErr != nil {
		return nil, svcErr
	}

	blog := &models.Blog{
		Title:    req.Title,
		Content:  req.Content,
		Author:   author,
		Category: req.Category,
	}
	if err := s.blogs.Create(ctx, blog); err != nil {
		s.logger.Error("Failed to create blog post", zap.Error(err))
		return nil, Persistence("Failed to create blog post.", err)
	}
	return blog, nil
}

func (s *blogServiceImpl) GetBlog(ctx context.Context, id string) (*models.Blog, *ServiceError) {
	oid, svcErr := parseID(id, "blog")
	if svcErr != nil {
		return nil, svcErr
	}
	blog, err := s.blogs.FindByID(ctx, oid)
	return s.result(blog, err, "Failed to fetch blog post.", msgBlogNotFound)
}

func (s *blogServiceImpl) UpdateBlog(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.Blog, *ServiceError) {
	oid, svcErr := parseID(id, "blog")
	if svcErr != nil {
		return nil, svcErr
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, Validation("Title must not be empty.")
	}
	blog, err := s.blogs.Update(ctx, oid, req)
	return s.result(blog, err, "Failed to update blog post.", msgBlogNotFound)
}

func (s *blogServiceImpl) DeleteBlog(ctx context.Context, id string) *ServiceError {
	oid, svcErr := parseID(id, "blog")
	if svcErr != nil {
		return svcErr
	}
	err := s.blogs.Delete(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound(msgBlogNotFound)
	}
	if err != nil {
		s.logger.Error("Failed to delete blog post", zap.String("blog_id", id), zap.Error(err))
		return Persistence("Failed to delete blog post.", err)
	}
	return nil
}

func (s *blogServiceImpl) GetAllBlogs(ctx context.Context) ([]models.Blog, *ServiceError) {
	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch blog posts", zap.Error(err))
		return nil, Persistence("Failed to fetch blog posts.", err)
	}
	return blogs, nil
}

func (s *blogServiceImpl) GetPopularBlogs(ctx context.Context) ([]models.Blog, *ServiceError) {
	blogs, err := s.blogs.FindMostLiked(ctx, popularBlogsLimit)
	if err != nil {
		s.logger.Error("Failed to fetch popular blog posts", zap.Error(err))
		return nil, Persistence("Failed to fetch popular blog posts.", err)
	}
	return blogs, nil
}

func (s *blogServiceImpl) AddComment(ctx context.Context, blogID string, req *models.CommentRequest) (*models.Blog, *ServiceError) {
	oid, svcErr := parseID(blogID, "blog")
	if svcErr != nil {
		return nil, svcErr
	}
	user, svcErr := parseID(req.User, "user")
	if svcErr != nil {
		return nil, svcErr
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, Validation("Comment content is required.")
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		User:      user,
		Content:   req.Content,
		Timestamp: time.Now().UTC(),
	}
	blog, err := s.blogs.AddComment(ctx, oid, comment)
	return s.result(blog, err, "Failed to add comment.", msgBlogNotFound)
}

func (s *blogServiceImpl) EditComment(ctx context.Context, blogID, commentID, content string) (*models.Blog, *ServiceError) {
	oid, cid, svcErr := s.locateComment(ctx, blogID, commentID)
	if svcErr != nil {
		return nil, svcErr
	}
	if strings.TrimSpace(content) == "" {
		return nil, Validation("Comment content is required.")
	}
	blog, err := s.blogs.UpdateComment(ctx, oid, cid, content)
	return s.result(blog, err, "Failed to edit comment.", msgCommentNotFound)
}

func (s *blogServiceImpl) DeleteComment(ctx context.Context, blogID, commentID string) (*models.Blog, *ServiceError) {
	oid, cid, svcErr := s.locateComment(ctx, blogID, commentID)
	if svcErr != nil {
		return nil, svcErr
	}
	blog, err := s.blogs.RemoveComment(ctx, oid, cid)
	return s.result(blog, err, "Failed to delete comment.", msgCommentNotFound)
}

// GetCategories returns the distinct non-empty categories in sorted order.
func (s *blogServiceImpl) GetCategories(ctx context.Context) ([]string, *ServiceError) {
	values, err := s.blogs.DistinctCategories(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch blog categories", zap.Error(err))
		return nil, Persistence("Failed to fetch blog categories.", err)
	}
	categories := make([]string, 0, len(values))
	for _, c := range values {
		if strings.TrimSpace(c) != "" {
			categories = append(categories, c)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (s *blogServiceImpl) LikeBlog(ctx context.Context, id string) (*models.Blog, *ServiceError) {
	oid, svcErr := parseID(id, "blog")
	if svcErr != nil {
		return nil, svcErr
	}
	blog, err := s.blogs.IncrementLikes(ctx, oid)
	return s.result(blog, err, "Failed to like blog post.", msgBlogNotFound)
}

func (s *blogServiceImpl) GetCommentCount(ctx context.Context, id string) (*models.CommentCount, *ServiceError) {
	blog, svcErr := s.GetBlog(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	return &models.CommentCount{CommentCount: len(blog.Comments)}, nil
}

// locateComment checks that both the blog and the comment exist.
func (s *blogServiceImpl) locateComment(ctx context.Context, blogID, commentID string) (primitive.ObjectID, primitive.ObjectID, *ServiceError) {
	cid, svcErr := parseID(commentID, "comment")
	if svcErr != nil {
		return primitive.NilObjectID, primitive.NilObjectID, svcErr
	}
	blog, svcErr := s.GetBlog(ctx, blogID)
	if svcErr != nil {
		return primitive.NilObjectID, primitive.NilObjectID, svcErr
	}
	for _, c := range blog.Comments {
		if c.ID == cid {
			return blog.ID, cid, nil
		}
	}
	return primitive.NilObjectID, primitive.NilObjectID, NotFound(msgCommentNotFound)
}

func (s *blogServiceImpl) result(blog *models.Blog, err error, failure, notFound string) (*models.Blog, *ServiceError) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound(notFound)
	}
	if err != nil {
		s.logger.Error(failure, zap.Error(err))
		return nil, Persistence(failure, err)
	}
	return blog, nil
}
