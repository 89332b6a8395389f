package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/events"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	awspkg "github.com/yaksha-ameet-khemani/e-mall-pro-connect/pkg/aws"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/repository"
	"go.uber.org/zap"
)

const (
	msgOrderNotFound = "Order not found."

	simulatedShipmentStatus = "Shipped"
	simulatedTrackingNumber = "1234567890"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError)
	GetOrder(ctx context.Context, id string) (*models.Order, *ServiceError)
	UpdateOrder(ctx context.Context, id string, req *models.UpdateOrderRequest) (*models.Order, *ServiceError)
	DeleteOrder(ctx context.Context, id string) *ServiceError
	GetUserOrders(ctx context.Context, userID string) ([]models.Order, *ServiceError)
	CancelOrder(ctx context.Context, id string) (*models.Order, *ServiceError)
	RetrievePaymentDetails(ctx context.Context, id string) (*models.Payment, *ServiceError)
	ProcessPayment(ctx context.Context, id string) (*models.PaymentResponse, *ServiceError)
	GetOrderAnalytics(ctx context.Context) (*models.OrderAnalytics, *ServiceError)
	GenerateInvoice(ctx context.Context, id string) (*models.Invoice, *ServiceError)
	TrackShipment(ctx context.Context, id string) (*models.Shipment, *ServiceError)
	GetRevenueAnalytics(ctx context.Context) (*models.RevenueAnalytics, *ServiceError)
}

type orderServiceImpl struct {
	orders repository.OrderRepository
	infra
}

func NewOrderService(orders repository.OrderRepository, logger *zap.Logger, opts ...Option) OrderService {
	return &orderServiceImpl{orders: orders, infra: newInfra(logger, opts)}
}

func toOrderItems(reqs []models.OrderItemRequest) ([]models.OrderItem, *ServiceError) {
	items := make([]models.OrderItem, 0, len(reqs))
	for _, r := range reqs {
		pid, svcErr := parseID(r.ProductID, "product")
		if svcErr != nil {
			return nil, svcErr
		}
		if r.Quantity < 1 {
			return nil, Validation("Item quantity must be at least 1.")
		}
		if r.Price < 0 {
			return nil, Validation("Item price must not be negative.")
		}
		items = append(items, models.OrderItem{ProductID: pid, Quantity: r.Quantity, Price: r.Price})
	}
	return items, nil
}

func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError) {
	uid, svcErr := parseID(req.UserID, "user")
	if svcErr != nil {
		return nil, svcErr
	}
	if req.TotalAmount < 0 {
		return nil, Validation("Total amount must not be negative.")
	}
	items, svcErr := toOrderItems(req.Items)
	if svcErr != nil {
		return nil, svcErr
	}

	order := &models.Order{
		UserID:      uid,
		Items:       items,
		TotalAmount: req.TotalAmount,
		Status:      models.OrderStatusPending,
		Payment:     models.Payment{Status: models.PaymentStatusPending},
	}
	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, Persistence("Failed to create order.", err)
	}

	s.publish(ctx, events.NewOrderEvent(events.OrderCreated, order.ID, uid, order.TotalAmount, string(order.Status)))
	s.count(awspkg.MetricOrdersCreated)
	return order, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, id string) (*models.Order, *ServiceError) {
	oid, svcErr := parseID(id, "order")
	if svcErr != nil {
		return nil, svcErr
	}
	order, err := s.orders.FindByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound(msgOrderNotFound)
	}
	if err != nil {
		s.logger.Error("Failed to fetch order", zap.String("order_id", id), zap.Error(err))
		return nil, Persistence("Failed to fetch order.", err)
	}
	return order, nil
}

func validStatus(status models.OrderStatus) bool {
	switch status {
	case models.OrderStatusPending, models.OrderStatusPaid, models.OrderStatusShipped, models.OrderStatusCancelled:
		return true
	}
	return false
}

func (s *orderServiceImpl) UpdateOrder(ctx context.Context, id string, req *models.UpdateOrderRequest) (*models.Order, *ServiceError) {
	order, svcErr := s.GetOrder(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}

	if req.Status != nil {
		if !validStatus(*req.Status) {
			return nil, Validation("Invalid order status.")
		}
		order.Status = *req.Status
	}
	if req.Items != nil {
		items, svcErr := toOrderItems(req.Items)
		if svcErr != nil {
			return nil, svcErr
		}
		order.Items = items
	}
	if req.TotalAmount != nil {
		if *req.TotalAmount < 0 {
			return nil, Validation("Total amount must not be negative.")
		}
		order.TotalAmount = *req.TotalAmount
	}
	if req.Completed != nil {
		order.Completed = *req.Completed
	}

	if svcErr := s.save(ctx, order, "Failed to update order."); svcErr != nil {
		return nil, svcErr
	}
	return order, nil
}

func (s *orderServiceImpl) DeleteOrder(ctx context.Context, id string) *ServiceError {
	oid, svcErr := parseID(id, "order")
	if svcErr != nil {
		return svcErr
	}
	err := s.orders.Delete(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound(msgOrderNotFound)
	}
	if err != nil {
		s.logger.Error("Failed to delete order", zap.String("order_id", id), zap.Error(err))
		return Persistence("Failed to delete order.", err)
	}
	return nil
}

func (s *orderServiceImpl) GetUserOrders(ctx context.Context, userID string) ([]models.Order, *ServiceError) {
	uid, svcErr := parseID(userID, "user")
	if svcErr != nil {
		return nil, svcErr
	}
	orders, err := s.orders.FindByUser(ctx, uid)
	if err != nil {
		s.logger.Error("Failed to fetch user orders", zap.String("user_id", userID), zap.Error(err))
		return nil, Persistence("Failed to fetch user orders.", err)
	}
	return orders, nil
}

// CancelOrder moves the order to Cancelled and keeps the record.
func (s *orderServiceImpl) CancelOrder(ctx context.Context, id string) (*models.Order, *ServiceError) {
	order, svcErr := s.GetOrder(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	if order.Status == models.OrderStatusCancelled {
		return nil, Validation("Order is already cancelled.")
	}

	now := time.Now().UTC()
	order.Status = models.OrderStatusCancelled
	order.CancelledAt = &now
	if svcErr := s.save(ctx, order, "Failed to cancel order."); svcErr != nil {
		return nil, svcErr
	}

	s.publish(ctx, events.NewOrderEvent(events.OrderCancelled, order.ID, order.UserID, order.TotalAmount, string(order.Status)))
	s.count(awspkg.MetricOrdersCancelled)
	return order, nil
}

func (s *orderServiceImpl) RetrievePaymentDetails(ctx context.Context, id string) (*models.Payment, *ServiceError) {
	order, svcErr := s.GetOrder(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	return &order.Payment, nil
}

// ProcessPayment simulates a successful charge and records a generated transaction id.
func (s *orderServiceImpl) ProcessPayment(ctx context.Context, id string) (*models.PaymentResponse, *ServiceError) {
	order, svcErr := s.GetOrder(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	if order.Status == models.OrderStatusCancelled {
		return nil, Validation("Cannot pay for a cancelled order.")
	}

	now := time.Now().UTC()
	order.Payment = models.Payment{
		Status:        models.PaymentStatusPaid,
		TransactionID: "txn_" + uuid.NewString(),
		PaidAt:        &now,
	}
	order.Status = models.OrderStatusPaid
	if svcErr := s.save(ctx, order, "Failed to process payment."); svcErr != nil {
		return nil, svcErr
	}

	s.publish(ctx, events.NewOrderEvent(events.OrderPaid, order.ID, order.UserID, order.TotalAmount, string(order.Status)))
	s.count(awspkg.MetricPaymentSucceeded)
	return &models.PaymentResponse{
		Message:       "Payment processed successfully.",
		TransactionID: order.Payment.TransactionID,
	}, nil
}

// GetOrderAnalytics reports zeros when there are no orders.
func (s *orderServiceImpl) GetOrderAnalytics(ctx context.Context) (*models.OrderAnalytics, *ServiceError) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch orders for analytics", zap.Error(err))
		return nil, Persistence("Failed to fetch order analytics.", err)
	}

	stats := summarize(orders)
	result := &models.OrderAnalytics{
		TotalOrders:        int64(len(orders)),
		HighestOrderAmount: stats.highest,
		LowestOrderAmount:  stats.lowest,
	}
	if len(orders) > 0 {
		result.AverageOrderAmount = toAmount(stats.total.Div(decimal.NewFromInt(int64(len(orders)))))
	}
	return result, nil
}

func (s *orderServiceImpl) GenerateInvoice(ctx context.Context, id string) (*models.Invoice, *ServiceError) {
	order, svcErr := s.GetOrder(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	return &models.Invoice{
		OrderID:     order.ID,
		OrderDate:   order.CreatedAt,
		TotalAmount: order.TotalAmount,
		Items:       order.Items,
		Status:      order.Status,
	}, nil
}

// TrackShipment answers with a fixed simulated tracking record for an existing order.
func (s *orderServiceImpl) TrackShipment(ctx context.Context, id string) (*models.Shipment, *ServiceError) {
	order, svcErr := s.GetOrder(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	return &models.Shipment{
		OrderID:        order.ID,
		Status:         simulatedShipmentStatus,
		TrackingNumber: simulatedTrackingNumber,
	}, nil
}

// GetRevenueAnalytics reports zeros when there are no orders.
func (s *orderServiceImpl) GetRevenueAnalytics(ctx context.Context) (*models.RevenueAnalytics, *ServiceError) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch orders for revenue analytics", zap.Error(err))
		return nil, Persistence("Failed to fetch revenue analytics.", err)
	}

	stats := summarize(orders)
	return &models.RevenueAnalytics{
		TotalRevenue:   toAmount(stats.total),
		HighestRevenue: stats.highest,
		LowestRevenue:  stats.lowest,
	}, nil
}

type orderStats struct {
	total   decimal.Decimal
	highest float64
	lowest  float64
}

// summarize totals the order amounts; highest and lowest stay 0 for no orders.
func summarize(orders []models.Order) orderStats {
	stats := orderStats{total: decimal.Zero}
	for i, o := range orders {
		stats.total = stats.total.Add(decimal.NewFromFloat(o.TotalAmount))
		if i == 0 || o.TotalAmount > stats.highest {
			stats.highest = o.TotalAmount
		}
		if i == 0 || o.TotalAmount < stats.lowest {
			stats.lowest = o.TotalAmount
		}
	}
	return stats
}

func (s *orderServiceImpl) save(ctx context.Context, order *models.Order, failure string) *ServiceError {
	err := s.orders.Replace(ctx, order)
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound(msgOrderNotFound)
	}
	if err != nil {
		s.logger.Error(failure, zap.String("order_id", order.ID.Hex()), zap.Error(err))
		return Persistence(failure, err)
	}
	return nil
}
