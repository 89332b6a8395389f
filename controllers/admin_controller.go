package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/services"
	"go.uber.org/zap"
)

type AdminController struct {
	service services.AdminService
	logger  *zap.Logger
}

func NewAdminController(service services.AdminService, logger *zap.Logger) *AdminController {
	return &AdminController{service: service, logger: logger}
}

// respond writes the payload or the service failure.
func (ac *AdminController) respond(c *gin.Context, payload any, svcErr *services.ServiceError) {
	if svcErr != nil {
		handleServiceError(c, ac.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (ac *AdminController) GetAllUsers(c *gin.Context) {
	users, svcErr := ac.service.GetAllUsers(c.Request.Context())
	ac.respond(c, users, svcErr)
}

func (ac *AdminController) GetAllProducts(c *gin.Context) {
	products, svcErr := ac.service.GetAllProducts(c.Request.Context())
	ac.respond(c, products, svcErr)
}

func (ac *AdminController) GetAllOrders(c *gin.Context) {
	orders, svcErr := ac.service.GetAllOrders(c.Request.Context())
	ac.respond(c, orders, svcErr)
}

func (ac *AdminController) GetAllBlogs(c *gin.Context) {
	blogs, svcErr := ac.service.GetAllBlogs(c.Request.Context())
	ac.respond(c, blogs, svcErr)
}

func (ac *AdminController) GetDashboard(c *gin.Context) {
	dashboard, svcErr := ac.service.GetDashboard(c.Request.Context())
	ac.respond(c, dashboard, svcErr)
}

func (ac *AdminController) GetReports(c *gin.Context) {
	reports, svcErr := ac.service.GetReports(c.Request.Context())
	ac.respond(c, reports, svcErr)
}

func (ac *AdminController) GetSalesReport(c *gin.Context) {
	report, svcErr := ac.service.GetSalesReport(c.Request.Context())
	ac.respond(c, report, svcErr)
}

func (ac *AdminController) GetProductInventory(c *gin.Context) {
	inventory, svcErr := ac.service.GetProductInventory(c.Request.Context())
	ac.respond(c, inventory, svcErr)
}

func (ac *AdminController) GetOrderAnalytics(c *gin.Context) {
	analytics, svcErr := ac.service.GetOrderAnalytics(c.Request.Context())
	ac.respond(c, analytics, svcErr)
}
