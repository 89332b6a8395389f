package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/repository/repotest"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newAdminService(users *MockUserRepository) services.AdminService {
	products := repotest.NewProductRepository(
		models.Product{Name: "Widget", Quantity: 4},
		models.Product{Name: "Gadget", Quantity: 0},
	)
	orders := repotest.NewOrderRepository(
		models.Order{UserID: primitive.NewObjectID(), TotalAmount: 100},
		models.Order{UserID: primitive.NewObjectID(), TotalAmount: 50.5},
	)
	blogs := repotest.NewBlogRepository(models.Blog{Title: "Hello"})
	return services.NewAdminService(users, products, orders, blogs, zap.NewNop())
}

func TestAdminService_GetDashboard(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Count", mock.Anything).Return(int64(7), nil)
	svc := newAdminService(users)

	dashboard, svcErr := svc.GetDashboard(context.Background())
	require.Nil(t, svcErr)
	assert.Equal(t, models.Dashboard{UsersCount: 7, ProductsCount: 2, OrdersCount: 2, BlogsCount: 1}, *dashboard)
}

func TestAdminService_GetDashboard_Failure(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Count", mock.Anything).Return(int64(0), errors.New("connection reset"))
	svc := newAdminService(users)

	_, svcErr := svc.GetDashboard(context.Background())
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
	assert.Equal(t, "Failed to load dashboard.", svcErr.Message)
}

func TestAdminService_GetReports(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Count", mock.Anything).Return(int64(3), nil)
	svc := newAdminService(users)

	reports, svcErr := svc.GetReports(context.Background())
	require.Nil(t, svcErr)
	assert.Equal(t, int64(3), reports.UserAnalytics.TotalUsers)
	assert.Equal(t, []string{"Widget", "Gadget"}, reports.ProductInventory)
	assert.Equal(t, int64(2), reports.OrderAnalytics.TotalOrders)
}

func TestAdminService_SalesAndInventory(t *testing.T) {
	svc := newAdminService(new(MockUserRepository))
	ctx := context.Background()

	sales, svcErr := svc.GetSalesReport(ctx)
	require.Nil(t, svcErr)
	assert.Equal(t, int64(2), sales.TotalOrders)
	assert.Equal(t, 150.5, sales.TotalRevenue)

	inventory, svcErr := svc.GetProductInventory(ctx)
	require.Nil(t, svcErr)
	require.Len(t, inventory, 2)
	assert.Equal(t, 4, inventory[0].Quantity)

	analytics, svcErr := svc.GetOrderAnalytics(ctx)
	require.Nil(t, svcErr)
	assert.Equal(t, int64(2), analytics.TotalOrders)
}

func TestAdminService_Listings(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindAll", mock.Anything).Return([]models.User{{Username: "a"}, {Username: "b"}}, nil)
	svc := newAdminService(users)
	ctx := context.Background()

	all, svcErr := svc.GetAllUsers(ctx)
	require.Nil(t, svcErr)
	assert.Len(t, all, 2)

	products, svcErr := svc.GetAllProducts(ctx)
	require.Nil(t, svcErr)
	assert.Len(t, products, 2)

	orders, svcErr := svc.GetAllOrders(ctx)
	require.Nil(t, svcErr)
	assert.Len(t, orders, 2)

	blogs, svcErr := svc.GetAllBlogs(ctx)
	require.Nil(t, svcErr)
	assert.Len(t, blogs, 1)
}
