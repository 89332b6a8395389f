package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/repository/repotest"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newBlogService(seed ...models.Blog) (services.BlogService, *repotest.BlogRepository) {
	repo := repotest.NewBlogRepository(seed...)
	return services.NewBlogService(repo, zap.NewNop()), repo
}

func createBlog(t *testing.T, svc services.BlogService) *models.Blog {
	t.Helper()
	blog, svcErr := svc.CreateBlog(context.Background(), &models.CreateBlogRequest{
		Title:    "Spring sale",
		Content:  "Everything must go",
		Author:   primitive.NewObjectID().Hex(),
		Category: "news",
	})
	require.Nil(t, svcErr)
	return blog
}

func TestBlogService_CreateAndGet(t *testing.T) {
	svc, _ := newBlogService()
	blog := createBlog(t, svc)

	got, svcErr := svc.GetBlog(context.Background(), blog.ID.Hex())
	require.Nil(t, svcErr)
	assert.Equal(t, "Spring sale", got.Title)
	assert.Zero(t, got.Likes)
	assert.Empty(t, got.Comments)

	_, svcErr = svc.GetBlog(context.Background(), primitive.NewObjectID().Hex())
	require.NotNil(t, svcErr)
	assert.Equal(t, "Blog post not found.", svcErr.Message)
}

func TestBlogService_CreateBlog_InvalidAuthor(t *testing.T) {
	svc, _ := newBlogService()

	_, svcErr := svc.CreateBlog(context.Background(), &models.CreateBlogRequest{Title: "t", Content: "c", Author: "x"})
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
}

func TestBlogService_UpdateAndDelete(t *testing.T) {
	svc, _ := newBlogService()
	blog := createBlog(t, svc)

	updated, svcErr := svc.UpdateBlog(context.Background(), blog.ID.Hex(), &models.UpdateBlogRequest{Title: ptr("Summer sale")})
	require.Nil(t, svcErr)
	assert.Equal(t, "Summer sale", updated.Title)
	assert.Equal(t, "Everything must go", updated.Content)

	require.Nil(t, svc.DeleteBlog(context.Background(), blog.ID.Hex()))
	svcErr = svc.DeleteBlog(context.Background(), blog.ID.Hex())
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestBlogService_Comments(t *testing.T) {
	svc, _ := newBlogService()
	blog := createBlog(t, svc)
	ctx := context.Background()

	withComment, svcErr := svc.AddComment(ctx, blog.ID.Hex(), &models.CommentRequest{
		User:    primitive.NewObjectID().Hex(),
		Content: "Great deals",
	})
	require.Nil(t, svcErr)
	require.Len(t, withComment.Comments, 1)
	commentID := withComment.Comments[0].ID.Hex()

	edited, svcErr := svc.EditComment(ctx, blog.ID.Hex(), commentID, "Great deals!")
	require.Nil(t, svcErr)
	assert.Equal(t, "Great deals!", edited.Comments[0].Content)

	_, svcErr = svc.EditComment(ctx, blog.ID.Hex(), primitive.NewObjectID().Hex(), "x")
	require.NotNil(t, svcErr)
	assert.Equal(t, "Comment not found.", svcErr.Message)

	count, svcErr := svc.GetCommentCount(ctx, blog.ID.Hex())
	require.Nil(t, svcErr)
	assert.Equal(t, 1, count.CommentCount)

	afterDelete, svcErr := svc.DeleteComment(ctx, blog.ID.Hex(), commentID)
	require.Nil(t, svcErr)
	assert.Empty(t, afterDelete.Comments)

	_, svcErr = svc.DeleteComment(ctx, blog.ID.Hex(), commentID)
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestBlogService_LikeAndPopular(t *testing.T) {
	svc, _ := newBlogService(
		models.Blog{Title: "a", Likes: 1},
		models.Blog{Title: "b", Likes: 7},
		models.Blog{Title: "c", Likes: 3},
	)
	all, svcErr := svc.GetAllBlogs(context.Background())
	require.Nil(t, svcErr)
	require.Len(t, all, 3)

	liked, svcErr := svc.LikeBlog(context.Background(), all[0].ID.Hex())
	require.Nil(t, svcErr)
	assert.Equal(t, int64(2), liked.Likes)

	popular, svcErr := svc.GetPopularBlogs(context.Background())
	require.Nil(t, svcErr)
	require.Len(t, popular, 3)
	assert.Equal(t, "b", popular[0].Title)
	assert.Equal(t, "c", popular[1].Title)
}

func TestBlogService_GetCategories(t *testing.T) {
	svc, _ := newBlogService(
		models.Blog{Title: "a", Category: "tech"},
		models.Blog{Title: "b", Category: ""},
		models.Blog{Title: "c", Category: "deals"},
		models.Blog{Title: "d", Category: "tech"},
	)

	categories, svcErr := svc.GetCategories(context.Background())
	require.Nil(t, svcErr)
	assert.Equal(t, []string{"deals", "tech"}, categories)
}
