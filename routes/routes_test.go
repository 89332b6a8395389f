package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/controllers"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/repository/repotest"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/routes"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type shop struct {
	router   *gin.Engine
	products *repotest.ProductRepository
	orders   *repotest.OrderRepository
}

func newShop(seed ...models.Product) *shop {
	log := zap.NewNop()
	products := repotest.NewProductRepository(seed...)
	carts := repotest.NewCartRepository()
	orders := repotest.NewOrderRepository()

	r := gin.New()
	routes.RegisterRoutes(r, routes.Controllers{
		Products: controllers.NewProductController(services.NewProductService(products, carts, orders, log), log),
		Orders:   controllers.NewOrderController(services.NewOrderService(orders, log), log),
	})
	return &shop{router: r, products: products, orders: orders}
}

func (s *shop) do(t *testing.T, method, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	if out != nil && w.Code < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w.Code
}

func TestCartFlow_AddViewCheckout(t *testing.T) {
	s := newShop()
	ctx := context.Background()
	pen := &models.Product{Name: "Pen", Price: 10, Quantity: 5}
	pad := &models.Product{Name: "Notepad", Price: 5, Quantity: 2}
	require.NoError(t, s.products.Create(ctx, pen))
	require.NoError(t, s.products.Create(ctx, pad))
	user := primitive.NewObjectID().Hex()

	var cart models.CartView
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/products/cart/add/"+user,
		models.AddToCartRequest{ProductID: pen.ID.Hex(), Quantity: 2}, &cart))
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/products/cart/add/"+user,
		models.AddToCartRequest{ProductID: pad.ID.Hex(), Quantity: 1}, &cart))

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/products/cart/"+user, nil, &cart))
	require.Len(t, cart.Items, 2)
	require.NotNil(t, cart.Items[0].Product)
	assert.Equal(t, "Pen", cart.Items[0].Product.Name)
	assert.Equal(t, 25.0, cart.Total)

	var checkout models.CheckoutResponse
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/products/cart/checkout/"+user, nil, &checkout))

	var order models.Order
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/orders/"+checkout.OrderID.Hex(), nil, &order))
	assert.Equal(t, 25.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	var product models.Product
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/products/"+pen.ID.Hex(), nil, &product))
	assert.Equal(t, 3, product.Quantity)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/products/cart/"+user, nil, &cart))
	assert.Empty(t, cart.Items)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/products/cart/checkout/"+user, nil, nil))
}

func TestCartFlow_InvalidIDs(t *testing.T) {
	s := newShop()

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/products/cart/not-an-id", nil, nil))
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/orders/not-an-id", nil, nil))
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/orders/"+primitive.NewObjectID().Hex(), nil, nil))
}

func TestHealthRoute(t *testing.T) {
	healthy := gin.New()
	routes.RegisterHealthRoute(healthy, func(context.Context) error { return nil })
	w := httptest.NewRecorder()
	healthy.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())

	down := gin.New()
	routes.RegisterHealthRoute(down, func(context.Context) error { return errors.New("no primary") })
	w = httptest.NewRecorder()
	down.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
