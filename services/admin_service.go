package services

import (
	"context"

	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AdminService is read-only reporting over every collection.
type AdminService interface {
	GetAllUsers(ctx context.Context) ([]models.User, *ServiceError)
	GetAllProducts(ctx context.Context) ([]models.Product, *ServiceError)
	GetAllOrders(ctx context.Context) ([]models.Order, *ServiceError)
	GetAllBlogs(ctx context.Context) ([]models.Blog, *ServiceError)
	GetDashboard(ctx context.Context) (*models.Dashboard, *ServiceError)
	GetReports(ctx context.Context) (*models.Reports, *ServiceError)
	GetSalesReport(ctx context.Context) (*models.SalesReport, *ServiceError)
	GetProductInventory(ctx context.Context) ([]models.ProductInventory, *ServiceError)
	GetOrderAnalytics(ctx context.Context) (*models.OrderCount, *ServiceError)
}

type adminServiceImpl struct {
	users    repository.UserRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
	blogs    repository.BlogRepository
	logger   *zap.Logger
}

func NewAdminService(
	users repository.UserRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	blogs repository.BlogRepository,
	logger *zap.Logger,
) AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &adminServiceImpl{users: users, products: products, orders: orders, blogs: blogs, logger: logger}
}

func (s *adminServiceImpl) fail(message string, err error) *ServiceError {
	s.logger.Error(message, zap.Error(err))
	return Persistence(message, err)
}

func (s *adminServiceImpl) GetAllUsers(ctx context.Context) ([]models.User, *ServiceError) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, s.fail("Failed to fetch users.", err)
	}
	return users, nil
}

func (s *adminServiceImpl) GetAllProducts(ctx context.Context) ([]models.Product, *ServiceError) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, s.fail("Failed to fetch products.", err)
	}
	return products, nil
}

func (s *adminServiceImpl) GetAllOrders(ctx context.Context) ([]models.Order, *ServiceError) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, s.fail("Failed to fetch orders.", err)
	}
	return orders, nil
}

func (s *adminServiceImpl) GetAllBlogs(ctx context.Context) ([]models.Blog, *ServiceError) {
	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		return nil, s.fail("Failed to fetch blogs.", err)
	}
	return blogs, nil
}

// GetDashboard counts the four collections concurrently.
func (s *adminServiceImpl) GetDashboard(ctx context.Context) (*models.Dashboard, *ServiceError) {
	var dashboard models.Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		dashboard.UsersCount, err = s.users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		dashboard.ProductsCount, err = s.products.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		dashboard.OrdersCount, err = s.orders.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		dashboard.BlogsCount, err = s.blogs.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.fail("Failed to load dashboard.", err)
	}
	return &dashboard, nil
}

func (s *adminServiceImpl) GetReports(ctx context.Context) (*models.Reports, *ServiceError) {
	var (
		reports   models.Reports
		inventory []models.ProductInventory
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		reports.UserAnalytics.TotalUsers, err = s.users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		inventory, err = s.products.ListInventory(gctx)
		return err
	})
	g.Go(func() (err error) {
		reports.OrderAnalytics.TotalOrders, err = s.orders.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.fail("Failed to generate reports.", err)
	}

	reports.ProductInventory = make([]string, 0, len(inventory))
	for _, p := range inventory {
		reports.ProductInventory = append(reports.ProductInventory, p.Name)
	}
	return &reports, nil
}

func (s *adminServiceImpl) GetSalesReport(ctx context.Context) (*models.SalesReport, *ServiceError) {
	total, err := s.orders.Count(ctx)
	if err != nil {
		return nil, s.fail("Failed to generate sales report.", err)
	}
	revenue, err := s.orders.TotalRevenue(ctx)
	if err != nil {
		return nil, s.fail("Failed to generate sales report.", err)
	}
	return &models.SalesReport{TotalOrders: total, TotalRevenue: revenue}, nil
}

func (s *adminServiceImpl) GetProductInventory(ctx context.Context) ([]models.ProductInventory, *ServiceError) {
	inventory, err := s.products.ListInventory(ctx)
	if err != nil {
		return nil, s.fail("Failed to fetch product inventory.", err)
	}
	return inventory, nil
}

func (s *adminServiceImpl) GetOrderAnalytics(ctx context.Context) (*models.OrderCount, *ServiceError) {
	total, err := s.orders.Count(ctx)
	if err != nil {
		return nil, s.fail("Failed to fetch order analytics.", err)
	}
	return &models.OrderCount{TotalOrders: total}, nil
}
