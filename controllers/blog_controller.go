package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/services"
	"go.uber.org/zap"
)

type BlogController struct {
	service services.BlogService
	logger  *zap.Logger
}

func NewBlogController(service services.BlogService, logger *zap.Logger) *BlogController {
	mustRegisterValidators()
	return &BlogController{service: service, logger: logger}
}

func (bc *BlogController) CreateBlog(c *gin.Context) {
	var req models.CreateBlogRequest
	if !bindJSON(c, &req) {
		return
	}
	blog, svcErr := bc.service.CreateBlog(c.Request.Context(), &req)
	if svcErr != nil {
		handleServiceError(c, bc.logger, svcErr)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

func (bc *BlogController) GetBlog(c *gin.Context) {
	blog, svcErr := bc.service.GetBlog(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		handleServiceError(c, bc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (bc *BlogController) UpdateBlog(c *gin.Context) {
	var req models.UpdateBlogRequest
	if !bindJSON(c, &req) {
		return
	}
	blog, svcErr := bc.service.UpdateBlog(c.Request.Context(), c.Param("id"), &req)
	if svcErr != nil {
		handleServiceError(c, bc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (bc *BlogController) DeleteBlog(c *gin.Context) {
	if svcErr := bc.service.DeleteBlog(c.Request.Context(), c.Param("id")); svcErr != nil {
		handleServiceError(c, bc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Blog post deleted successfully."})
}

func (bc *BlogController) GetAllBlogs(c *gin.Context) {
	blogs, svcErr := bc.service.GetAllBlogs(c.Request.Context())
	if svcErr != nil {
		handleServiceError(c, bc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (bc *BlogController) GetPopularBlogs(c *gin.Context) {
	blogs, svcErr := bc.service.GetPopularBlogs(c.Request.Context())
	if svcErr != nil {
		handleServiceError(c, bc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (bc *BlogController) AddComment(c *gin.Context) {
	var req models.CommentRequest
	if !bindJSON(c, &req) {
		return
	}
	blog, svcErr := bc.service.AddComment(c.Request.Context(), c.Param("id"), &req)
	if svcErr != nil {
		handleServiceError(c, bc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (bc *BlogController) EditComment(c *gin.Context) {
	var req models.EditCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	blog, svcErr := bc.service.EditComment(c.Request.Context(), c.Param("id"), c.Param("commentId"), req.Content)
	if svcErr != nil {
		handleServiceError(c, bc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (bc *BlogController) DeleteComment(c *gin.Context) {
	blog, svcErr := bc.service.DeleteComment(c.Request.Context(), c.Param("id"), c.Param("commentId"))
	if svcErr != nil {
		handleServiceError(c, bc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (bc *BlogController) GetCategories(c *gin.Context) {
	categories, svcErr := bc.service.GetCategories(c.Request.Context())
	if svcErr != nil {
		handleServiceError(c, bc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (bc *BlogController) LikeBlog(c *gin.Context) {
	blog, svcErr := bc.service.LikeBlog(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		handleServiceError(c, bc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (bc *BlogController) GetCommentCount(c *gin.Context) {
	count, svcErr := bc.service.GetCommentCount(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		handleServiceError(c, bc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, count)
}
