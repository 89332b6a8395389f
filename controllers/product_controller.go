package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/services"
	"go.uber.org/zap"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type ProductController struct {
	service services.ProductService
	logger  *zap.Logger
}

func NewProductController(service services.ProductService, logger *zap.Logger) *ProductController {
	mustRegisterValidators()
	return &ProductController{service: service, logger: logger}
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, svcErr := pc.service.CreateProduct(c.Request.Context(), &req)
	if svcErr != nil {
		handleServiceError(c, pc.logger, svcErr)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	product, svcErr := pc.service.GetProduct(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		handleServiceError(c, pc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, svcErr := pc.service.UpdateProduct(c.Request.Context(), c.Param("id"), &req)
	if svcErr != nil {
		handleServiceError(c, pc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if svcErr := pc.service.DeleteProduct(c.Request.Context(), c.Param("id")); svcErr != nil {
		handleServiceError(c, pc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Product deleted successfully."})
}

func (pc *ProductController) GetAllProducts(c *gin.Context) {
	products, svcErr := pc.service.GetAllProducts(c.Request.Context())
	if svcErr != nil {
		handleServiceError(c, pc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) SearchProducts(c *gin.Context) {
	products, svcErr := pc.service.SearchProducts(c.Request.Context(), c.Query("name"), c.Query("description"))
	if svcErr != nil {
		handleServiceError(c, pc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) GetTopRatedProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.Param("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Limit must be a positive integer."})
		return
	}
	products, svcErr := pc.service.GetTopRatedProducts(c.Request.Context(), limit)
	if svcErr != nil {
		handleServiceError(c, pc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) CreateImageUploadURL(c *gin.Context) {
	var req models.ImageUploadRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.ContentType != "" && !allowedImageTypes[strings.ToLower(req.ContentType)] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image content type."})
		return
	}
	resp, svcErr := pc.service.CreateImageUploadURL(c.Request.Context(), c.Param("id"), &req)
	if svcErr != nil {
		handleServiceError(c, pc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
