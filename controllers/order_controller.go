package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/services"
	"go.uber.org/zap"
)

type OrderController struct {
	service services.OrderService
	logger  *zap.Logger
}

func NewOrderController(service services.OrderService, logger *zap.Logger) *OrderController {
	mustRegisterValidators()
	return &OrderController{service: service, logger: logger}
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, svcErr := oc.service.CreateOrder(c.Request.Context(), &req)
	if svcErr != nil {
		handleServiceError(c, oc.logger, svcErr)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (oc *OrderController) GetOrder(c *gin.Context) {
	order, svcErr := oc.service.GetOrder(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		handleServiceError(c, oc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var req models.UpdateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, svcErr := oc.service.UpdateOrder(c.Request.Context(), c.Param("id"), &req)
	if svcErr != nil {
		handleServiceError(c, oc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	if svcErr := oc.service.DeleteOrder(c.Request.Context(), c.Param("id")); svcErr != nil {
		handleServiceError(c, oc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Order deleted successfully."})
}

func (oc *OrderController) GetUserOrders(c *gin.Context) {
	orders, svcErr := oc.service.GetUserOrders(c.Request.Context(), c.Param("userId"))
	if svcErr != nil {
		handleServiceError(c, oc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (oc *OrderController) CancelOrder(c *gin.Context) {
	order, svcErr := oc.service.CancelOrder(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		handleServiceError(c, oc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) RetrievePaymentDetails(c *gin.Context) {
	payment, svcErr := oc.service.RetrievePaymentDetails(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		handleServiceError(c, oc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (oc *OrderController) ProcessPayment(c *gin.Context) {
	resp, svcErr := oc.service.ProcessPayment(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		handleServiceError(c, oc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (oc *OrderController) GetOrderAnalytics(c *gin.Context) {
	analytics, svcErr := oc.service.GetOrderAnalytics(c.Request.Context())
	if svcErr != nil {
		handleServiceError(c, oc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (oc *OrderController) GenerateInvoice(c *gin.Context) {
	invoice, svcErr := oc.service.GenerateInvoice(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		handleServiceError(c, oc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (oc *OrderController) TrackShipment(c *gin.Context) {
	shipment, svcErr := oc.service.TrackShipment(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		handleServiceError(c, oc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, shipment)
}

func (oc *OrderController) GetRevenueAnalytics(c *gin.Context) {
	revenue, svcErr := oc.service.GetRevenueAnalytics(c.Request.Context())
	if svcErr != nil {
		handleServiceError(c, oc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, revenue)
}
