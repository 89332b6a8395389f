package controllers_test

import (
	"context"

	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/services"
)

var errNotImplemented = &services.ServiceError{StatusCode: 501, Message: "not implemented"}

// --- Mock ProductService ---

type mockProductService struct {
	createFn     func(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *services.ServiceError)
	getFn        func(ctx context.Context, id string) (*models.Product, *services.ServiceError)
	updateFn     func(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, *services.ServiceError)
	deleteFn     func(ctx context.Context, id string) *services.ServiceError
	searchFn     func(ctx context.Context, name, description string) ([]models.Product, *services.ServiceError)
	topRatedFn   func(ctx context.Context, limit int) ([]models.Product, *services.ServiceError)
	uploadFn     func(ctx context.Context, id string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, *services.ServiceError)
	addToCartFn  func(ctx context.Context, userID, productID string, quantity int) (*models.CartView, *services.ServiceError)
	viewCartFn   func(ctx context.Context, userID string) (*models.CartView, *services.ServiceError)
	discountFn   func(ctx context.Context, userID string, percentage float64) (*models.DiscountResponse, *services.ServiceError)
	checkoutFn   func(ctx context.Context, userID string) (*models.CheckoutResponse, *services.ServiceError)
	updateItemFn func(ctx context.Context, userID, itemID string, quantity int) (*models.CartView, *services.ServiceError)
	removeItemFn func(ctx context.Context, userID, itemID string) (*models.CartView, *services.ServiceError)
	getAllFn     func(ctx context.Context) ([]models.Product, *services.ServiceError)
}

func (m *mockProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *services.ServiceError) {
	return m.createFn(ctx, req)
}
func (m *mockProductService) GetProduct(ctx context.Context, id string) (*models.Product, *services.ServiceError) {
	return m.getFn(ctx, id)
}
func (m *mockProductService) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, *services.ServiceError) {
	return m.updateFn(ctx, id, req)
}
func (m *mockProductService) DeleteProduct(ctx context.Context, id string) *services.ServiceError {
	return m.deleteFn(ctx, id)
}
func (m *mockProductService) GetAllProducts(ctx context.Context) ([]models.Product, *services.ServiceError) {
	if m.getAllFn == nil {
		return nil, errNotImplemented
	}
	return m.getAllFn(ctx)
}
func (m *mockProductService) SearchProducts(ctx context.Context, name, description string) ([]models.Product, *services.ServiceError) {
	return m.searchFn(ctx, name, description)
}
func (m *mockProductService) GetTopRatedProducts(ctx context.Context, limit int) ([]models.Product, *services.ServiceError) {
	return m.topRatedFn(ctx, limit)
}
func (m *mockProductService) CreateImageUploadURL(ctx context.Context, id string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, *services.ServiceError) {
	return m.uploadFn(ctx, id, req)
}
func (m *mockProductService) AddToCart(ctx context.Context, userID, productID string, quantity int) (*models.CartView, *services.ServiceError) {
	return m.addToCartFn(ctx, userID, productID, quantity)
}
func (m *mockProductService) ViewCart(ctx context.Context, userID string) (*models.CartView, *services.ServiceError) {
	return m.viewCartFn(ctx, userID)
}
func (m *mockProductService) UpdateCartItem(ctx context.Context, userID, itemID string, quantity int) (*models.CartView, *services.ServiceError) {
	return m.updateItemFn(ctx, userID, itemID, quantity)
}
func (m *mockProductService) RemoveCartItem(ctx context.Context, userID, itemID string) (*models.CartView, *services.ServiceError) {
	return m.removeItemFn(ctx, userID, itemID)
}
func (m *mockProductService) ApplyDiscount(ctx context.Context, userID string, percentage float64) (*models.DiscountResponse, *services.ServiceError) {
	return m.discountFn(ctx, userID, percentage)
}
func (m *mockProductService) CheckoutCart(ctx context.Context, userID string) (*models.CheckoutResponse, *services.ServiceError) {
	return m.checkoutFn(ctx, userID)
}

// --- Mock OrderService ---

type mockOrderService struct {
	createFn    func(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *services.ServiceError)
	getFn       func(ctx context.Context, id string) (*models.Order, *services.ServiceError)
	cancelFn    func(ctx context.Context, id string) (*models.Order, *services.ServiceError)
	payFn       func(ctx context.Context, id string) (*models.PaymentResponse, *services.ServiceError)
	analyticsFn func(ctx context.Context) (*models.OrderAnalytics, *services.ServiceError)
	revenueFn   func(ctx context.Context) (*models.RevenueAnalytics, *services.ServiceError)
}

func (m *mockOrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *services.ServiceError) {
	return m.createFn(ctx, req)
}
func (m *mockOrderService) GetOrder(ctx context.Context, id string) (*models.Order, *services.ServiceError) {
	return m.getFn(ctx, id)
}
func (m *mockOrderService) UpdateOrder(context.Context, string, *models.UpdateOrderRequest) (*models.Order, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockOrderService) DeleteOrder(context.Context, string) *services.ServiceError {
	return errNotImplemented
}
func (m *mockOrderService) GetUserOrders(context.Context, string) ([]models.Order, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockOrderService) CancelOrder(ctx context.Context, id string) (*models.Order, *services.ServiceError) {
	return m.cancelFn(ctx, id)
}
func (m *mockOrderService) RetrievePaymentDetails(context.Context, string) (*models.Payment, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockOrderService) ProcessPayment(ctx context.Context, id string) (*models.PaymentResponse, *services.ServiceError) {
	return m.payFn(ctx, id)
}
func (m *mockOrderService) GetOrderAnalytics(ctx context.Context) (*models.OrderAnalytics, *services.ServiceError) {
	return m.analyticsFn(ctx)
}
func (m *mockOrderService) GenerateInvoice(context.Context, string) (*models.Invoice, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockOrderService) TrackShipment(context.Context, string) (*models.Shipment, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockOrderService) GetRevenueAnalytics(ctx context.Context) (*models.RevenueAnalytics, *services.ServiceError) {
	return m.revenueFn(ctx)
}

// --- Mock BlogService ---

type mockBlogService struct {
	createFn     func(ctx context.Context, req *models.CreateBlogRequest) (*models.Blog, *services.ServiceError)
	addCommentFn func(ctx context.Context, blogID string, req *models.CommentRequest) (*models.Blog, *services.ServiceError)
	countFn      func(ctx context.Context, id string) (*models.CommentCount, *services.ServiceError)
	categoriesFn func(ctx context.Context) ([]string, *services.ServiceError)
}

func (m *mockBlogService) CreateBlog(ctx context.Context, req *models.CreateBlogRequest) (*models.Blog, *services.ServiceError) {
	return m.createFn(ctx, req)
}
func (m *mockBlogService) GetBlog(context.Context, string) (*models.Blog, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockBlogService) UpdateBlog(context.Context, string, *models.UpdateBlogRequest) (*models.Blog, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockBlogService) DeleteBlog(context.Context, string) *services.ServiceError {
	return errNotImplemented
}
func (m *mockBlogService) GetAllBlogs(context.Context) ([]models.Blog, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockBlogService) GetPopularBlogs(context.Context) ([]models.Blog, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockBlogService) AddComment(ctx context.Context, blogID string, req *models.CommentRequest) (*models.Blog, *services.ServiceError) {
	return m.addCommentFn(ctx, blogID, req)
}
func (m *mockBlogService) EditComment(context.Context, string, string, string) (*models.Blog, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockBlogService) DeleteComment(context.Context, string, string) (*models.Blog, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockBlogService) GetCategories(ctx context.Context) ([]string, *services.ServiceError) {
	return m.categoriesFn(ctx)
}
func (m *mockBlogService) LikeBlog(context.Context, string) (*models.Blog, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockBlogService) GetCommentCount(ctx context.Context, id string) (*models.CommentCount, *services.ServiceError) {
	return m.countFn(ctx, id)
}

// --- Mock UserService ---

type mockUserService struct {
	createFn         func(ctx context.Context, req *models.CreateUserRequest) (*models.User, *services.ServiceError)
	getFn            func(ctx context.Context, id string) (*models.User, *services.ServiceError)
	changePasswordFn func(ctx context.Context, id, newPassword string) *services.ServiceError
}

func (m *mockUserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, *services.ServiceError) {
	return m.createFn(ctx, req)
}
func (m *mockUserService) GetUserProfile(ctx context.Context, id string) (*models.User, *services.ServiceError) {
	return m.getFn(ctx, id)
}
func (m *mockUserService) UpdateUserProfile(context.Context, string, *models.UpdateUserRequest) (*models.User, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockUserService) DeleteUser(context.Context, string) *services.ServiceError {
	return errNotImplemented
}
func (m *mockUserService) GetUserByEmail(context.Context, string) (*models.User, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockUserService) GetUserActivity(context.Context, string) ([]models.Activity, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockUserService) GetUserFavorites(context.Context, string) ([]models.Product, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockUserService) AddFavorite(context.Context, string, string) ([]models.Product, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockUserService) RemoveFavorite(context.Context, string, string) ([]models.Product, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockUserService) ChangeUserPassword(ctx context.Context, id, newPassword string) *services.ServiceError {
	return m.changePasswordFn(ctx, id, newPassword)
}

// --- Mock AdminService ---

type mockAdminService struct {
	dashboardFn func(ctx context.Context) (*models.Dashboard, *services.ServiceError)
	salesFn     func(ctx context.Context) (*models.SalesReport, *services.ServiceError)
}

func (m *mockAdminService) GetAllUsers(context.Context) ([]models.User, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockAdminService) GetAllProducts(context.Context) ([]models.Product, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockAdminService) GetAllOrders(context.Context) ([]models.Order, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockAdminService) GetAllBlogs(context.Context) ([]models.Blog, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockAdminService) GetDashboard(ctx context.Context) (*models.Dashboard, *services.ServiceError) {
	return m.dashboardFn(ctx)
}
func (m *mockAdminService) GetReports(context.Context) (*models.Reports, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockAdminService) GetSalesReport(ctx context.Context) (*models.SalesReport, *services.ServiceError) {
	return m.salesFn(ctx)
}
func (m *mockAdminService) GetProductInventory(context.Context) ([]models.ProductInventory, *services.ServiceError) {
	return nil, errNotImplemented
}
func (m *mockAdminService) GetOrderAnalytics(context.Context) (*models.OrderCount, *services.ServiceError) {
	return nil, errNotImplemented
}
