package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
)

// Cart handlers live on ProductController; the cart belongs to the product service.

func (pc *ProductController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if !bindJSON(c, &req) {
		return
	}
	cart, svcErr := pc.service.AddToCart(c.Request.Context(), c.Param("userId"), req.ProductID, req.Quantity)
	if svcErr != nil {
		handleServiceError(c, pc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (pc *ProductController) ViewCart(c *gin.Context) {
	cart, svcErr := pc.service.ViewCart(c.Request.Context(), c.Param("userId"))
	if svcErr != nil {
		handleServiceError(c, pc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (pc *ProductController) UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if !bindJSON(c, &req) {
		return
	}
	cart, svcErr := pc.service.UpdateCartItem(c.Request.Context(), c.Param("userId"), c.Param("itemId"), req.Quantity)
	if svcErr != nil {
		handleServiceError(c, pc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (pc *ProductController) RemoveCartItem(c *gin.Context) {
	cart, svcErr := pc.service.RemoveCartItem(c.Request.Context(), c.Param("userId"), c.Param("itemId"))
	if svcErr != nil {
		handleServiceError(c, pc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (pc *ProductController) ApplyDiscount(c *gin.Context) {
	var req models.ApplyDiscountRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, svcErr := pc.service.ApplyDiscount(c.Request.Context(), c.Param("userId"), *req.DiscountPercentage)
	if svcErr != nil {
		handleServiceError(c, pc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (pc *ProductController) CheckoutCart(c *gin.Context) {
	resp, svcErr := pc.service.CheckoutCart(c.Request.Context(), c.Param("userId"))
	if svcErr != nil {
		handleServiceError(c, pc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
