package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/events"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	awspkg "github.com/yaksha-ameet-khemani/e-mall-pro-connect/pkg/aws"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	msgCartNotFound     = "Cart not found."
	msgCartItemNotFound = "Cart item not found."
	msgCheckoutFailed   = "Failed to checkout cart."
)

func (s *productServiceImpl) AddToCart(ctx context.Context, userID, productID string, quantity int) (*models.CartView, *ServiceError) {
	uid, svcErr := parseID(userID, "user")
	if svcErr != nil {
		return nil, svcErr
	}
	pid, svcErr := parseID(productID, "product")
	if svcErr != nil {
		return nil, svcErr
	}
	if quantity < 1 {
		return nil, Validation("Quantity must be at least 1.")
	}

	if _, err := s.products.FindByID(ctx, pid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound(msgProductNotFound)
		}
		s.logger.Error("Failed to load product for cart", zap.String("product_id", productID), zap.Error(err))
		return nil, Persistence("Failed to add item to cart.", err)
	}

	cart, err := s.carts.AddItem(ctx, uid, pid, quantity)
	if err != nil {
		s.logger.Error("Failed to add item to cart", zap.String("user_id", userID), zap.Error(err))
		return nil, Persistence("Failed to add item to cart.", err)
	}
	return s.resolveCart(ctx, cart)
}

// ViewCart returns an empty cart for a user who has never added anything.
func (s *productServiceImpl) ViewCart(ctx context.Context, userID string) (*models.CartView, *ServiceError) {
	uid, svcErr := parseID(userID, "user")
	if svcErr != nil {
		return nil, svcErr
	}

	cart, err := s.carts.FindByUser(ctx, uid)
	if errors.Is(err, repository.ErrNotFound) {
		return &models.CartView{UserID: uid, Items: []models.ResolvedCartItem{}}, nil
	}
	if err != nil {
		s.logger.Error("Failed to fetch cart", zap.String("user_id", userID), zap.Error(err))
		return nil, Persistence("Failed to fetch cart.", err)
	}
	return s.resolveCart(ctx, cart)
}

func (s *productServiceImpl) UpdateCartItem(ctx context.Context, userID, itemID string, quantity int) (*models.CartView, *ServiceError) {
	uid, svcErr := parseID(userID, "user")
	if svcErr != nil {
		return nil, svcErr
	}
	iid, svcErr := parseID(itemID, "cart item")
	if svcErr != nil {
		return nil, svcErr
	}
	if quantity < 1 {
		return nil, Validation("Quantity must be at least 1.")
	}

	cart, err := s.carts.SetItemQuantity(ctx, uid, iid, quantity)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound(msgCartItemNotFound)
	}
	if err != nil {
		s.logger.Error("Failed to update cart item", zap.String("user_id", userID), zap.String("item_id", itemID), zap.Error(err))
		return nil, Persistence("Failed to update cart item.", err)
	}
	return s.resolveCart(ctx, cart)
}

func (s *productServiceImpl) RemoveCartItem(ctx context.Context, userID, itemID string) (*models.CartView, *ServiceError) {
	uid, svcErr := parseID(userID, "user")
	if svcErr != nil {
		return nil, svcErr
	}
	iid, svcErr := parseID(itemID, "cart item")
	if svcErr != nil {
		return nil, svcErr
	}

	cart, err := s.carts.RemoveItem(ctx, uid, iid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound(msgCartNotFound)
	}
	if err != nil {
		s.logger.Error("Failed to remove cart item", zap.String("user_id", userID), zap.String("item_id", itemID), zap.Error(err))
		return nil, Persistence("Failed to remove cart item.", err)
	}
	return s.resolveCart(ctx, cart)
}

// ApplyDiscount stores the percentage on the cart. Product prices are untouched;
// resolved cart views and checkout apply it.
func (s *productServiceImpl) ApplyDiscount(ctx context.Context, userID string, percentage float64) (*models.DiscountResponse, *ServiceError) {
	if percentage < 0 || percentage > 100 {
		return nil, Validation("Discount percentage must be between 0 and 100.")
	}
	uid, svcErr := parseID(userID, "user")
	if svcErr != nil {
		return nil, svcErr
	}

	cart, err := s.carts.SetDiscount(ctx, uid, percentage)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound(msgCartNotFound)
	}
	if err != nil {
		s.logger.Error("Failed to apply discount", zap.String("user_id", userID), zap.Error(err))
		return nil, Persistence("Failed to apply discount.", err)
	}

	view, svcErr := s.resolveCart(ctx, cart)
	if svcErr != nil {
		return nil, svcErr
	}
	return &models.DiscountResponse{Message: "Discount applied successfully.", Cart: view}, nil
}

// CheckoutCart turns the cart into a pending order, takes the stock and empties
// the cart. If a stock decrement or the cart clear fails, applied decrements are
// restored and the order is removed.
func (s *productServiceImpl) CheckoutCart(ctx context.Context, userID string) (*models.CheckoutResponse, *ServiceError) {
	uid, svcErr := parseID(userID, "user")
	if svcErr != nil {
		return nil, svcErr
	}

	cart, err := s.carts.FindByUser(ctx, uid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound(msgCartNotFound)
	}
	if err != nil {
		s.logger.Error("Failed to fetch cart for checkout", zap.String("user_id", userID), zap.Error(err))
		return nil, Persistence(msgCheckoutFailed, err)
	}
	if len(cart.Items) == 0 {
		return nil, Validation("Cart is empty.")
	}

	view, svcErr := s.resolveCart(ctx, cart)
	if svcErr != nil {
		return nil, svcErr
	}

	items := make([]models.OrderItem, 0, len(view.Items))
	for _, item := range view.Items {
		if item.Product == nil {
			return nil, NotFound(msgProductNotFound)
		}
		if item.Product.Quantity < item.Quantity {
			return nil, Validation(fmt.Sprintf("Insufficient stock for %s.", item.Product.Name))
		}
		items = append(items, models.OrderItem{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}

	order := &models.Order{
		UserID:      uid,
		Items:       items,
		TotalAmount: view.Total,
		Status:      models.OrderStatusPending,
		Completed:   false,
		Payment:     models.Payment{Status: models.PaymentStatusPending},
	}
	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order at checkout", zap.String("user_id", userID), zap.Error(err))
		s.count(awspkg.MetricCheckoutFailed)
		return nil, Persistence(msgCheckoutFailed, err)
	}

	applied := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if err := s.products.AdjustQuantity(ctx, item.ProductID, -item.Quantity); err != nil {
			s.rollbackCheckout(ctx, order.ID, applied)
			s.count(awspkg.MetricCheckoutFailed)
			if errors.Is(err, repository.ErrInsufficientStock) {
				return nil, Validation("Insufficient stock to complete checkout.")
			}
			s.logger.Error("Failed to decrement stock", zap.String("product_id", item.ProductID.Hex()), zap.Error(err))
			return nil, Persistence(msgCheckoutFailed, err)
		}
		applied = append(applied, item)
	}

	if err := s.carts.Clear(ctx, uid); err != nil {
		s.rollbackCheckout(ctx, order.ID, applied)
		s.count(awspkg.MetricCheckoutFailed)
		s.logger.Error("Failed to clear cart", zap.String("user_id", userID), zap.Error(err))
		return nil, Persistence(msgCheckoutFailed, err)
	}

	if s.cache != nil {
		for _, item := range items {
			s.cache.InvalidateProduct(ctx, item.ProductID.Hex())
		}
	}
	s.publish(ctx, events.NewOrderEvent(events.OrderCreated, order.ID, uid, order.TotalAmount, string(order.Status)))
	s.count(awspkg.MetricCartCheckouts)
	s.count(awspkg.MetricOrdersCreated)
	s.logger.Info("Checkout completed",
		zap.String("user_id", userID),
		zap.String("order_id", order.ID.Hex()),
		zap.Float64("total_amount", order.TotalAmount),
	)

	return &models.CheckoutResponse{Message: "Checkout completed successfully.", OrderID: order.ID}, nil
}

// rollbackCheckout restores stock and drops the order. It runs detached from the
// request context so a cancelled request still compensates.
func (s *productServiceImpl) rollbackCheckout(ctx context.Context, orderID primitive.ObjectID, applied []models.OrderItem) {
	ctx = context.WithoutCancel(ctx)
	for _, item := range applied {
		if err := s.products.AdjustQuantity(ctx, item.ProductID, item.Quantity); err != nil {
			s.logger.Error("Failed to restore stock during checkout rollback",
				zap.String("order_id", orderID.Hex()),
				zap.String("product_id", item.ProductID.Hex()),
				zap.Int("quantity", item.Quantity),
				zap.Error(err),
			)
		}
	}
	if err := s.orders.Delete(ctx, orderID); err != nil {
		s.logger.Error("Failed to delete order during checkout rollback", zap.String("order_id", orderID.Hex()), zap.Error(err))
	}
}

// resolveCart loads the products referenced by the cart and prices every line
// with the cart's discount applied.
func (s *productServiceImpl) resolveCart(ctx context.Context, cart *models.Cart) (*models.CartView, *ServiceError) {
	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to resolve cart products", zap.String("cart_id", cart.ID.Hex()), zap.Error(err))
		return nil, Persistence("Failed to fetch cart.", err)
	}
	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	subtotal := decimal.Zero
	total := decimal.Zero
	items := make([]models.ResolvedCartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		resolved := models.ResolvedCartItem{ID: item.ID, Quantity: item.Quantity}
		if p, ok := byID[item.ProductID]; ok {
			subtotal = subtotal.Add(lineTotal(p.Price, item.Quantity))
			p.Price = discountedPrice(p.Price, cart.DiscountPercentage)
			total = total.Add(lineTotal(p.Price, item.Quantity))
			resolved.Product = &p
		}
		items = append(items, resolved)
	}

	return &models.CartView{
		ID:                 cart.ID,
		UserID:             cart.UserID,
		Items:              items,
		DiscountPercentage: cart.DiscountPercentage,
		Subtotal:           toAmount(subtotal),
		Total:              toAmount(total),
		Completed:          cart.Completed,
		CreatedAt:          cart.CreatedAt,
	}, nil
}
