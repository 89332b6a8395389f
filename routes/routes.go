package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apperrors "github.com/yaksha-ameet-khemani/e-mall-pro-connect/common/errors"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/controllers"
)

// Controllers groups the handlers mounted under /api.
type Controllers struct {
	Users    *controllers.UserController
	Products *controllers.ProductController
	Orders   *controllers.OrderController
	Blogs    *controllers.BlogController
	Admin    *controllers.AdminController
}

// RegisterRoutes sets up every /api route. Static segments sit next to /:id;
// gin resolves the static match first.
func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	r.NoRoute(func(c *gin.Context) {
		c.JSON(apperrors.ErrNotFound.Code, gin.H{"error": apperrors.ErrNotFound.Message})
	})

	api := r.Group("/api")

	if uc := ctrl.Users; uc != nil {
		users := api.Group("/users")
		users.POST("/create", uc.CreateUser)
		users.GET("/email/:email", uc.GetUserByEmail)
		users.PUT("/change-password/:id", uc.ChangeUserPassword)
		users.GET("/:id", uc.GetUserProfile)
		users.PUT("/:id", uc.UpdateUserProfile)
		users.DELETE("/:id", uc.DeleteUser)
		users.GET("/:id/activity", uc.GetUserActivity)
		users.GET("/:id/favorites", uc.GetUserFavorites)
		users.POST("/:id/favorites/:productId", uc.AddFavorite)
		users.DELETE("/:id/favorites/:productId", uc.RemoveFavorite)
	}

	if pc := ctrl.Products; pc != nil {
		products := api.Group("/products")
		products.GET("/all", pc.GetAllProducts)
		products.POST("/create", pc.CreateProduct)
		products.GET("/search", pc.SearchProducts)
		products.GET("/top-rated/:limit", pc.GetTopRatedProducts)
		products.POST("/discount/:userId", pc.ApplyDiscount)

		cart := products.Group("/cart")
		cart.GET("/:userId", pc.ViewCart)
		cart.POST("/add/:userId", pc.AddToCart)
		cart.POST("/checkout/:userId", pc.CheckoutCart)
		cart.PUT("/update/:userId/:itemId", pc.UpdateCartItem)
		cart.DELETE("/remove/:userId/:itemId", pc.RemoveCartItem)

		products.GET("/:id", pc.GetProduct)
		products.PUT("/:id", pc.UpdateProduct)
		products.DELETE("/:id", pc.DeleteProduct)
		products.POST("/:id/image-upload-url", pc.CreateImageUploadURL)
	}

	if oc := ctrl.Orders; oc != nil {
		orders := api.Group("/orders")
		orders.POST("/create", oc.CreateOrder)
		orders.GET("/analytics", oc.GetOrderAnalytics)
		orders.GET("/revenue", oc.GetRevenueAnalytics)
		orders.GET("/user/:userId", oc.GetUserOrders)
		orders.DELETE("/cancel/:id", oc.CancelOrder)
		orders.GET("/:id", oc.GetOrder)
		orders.PUT("/:id", oc.UpdateOrder)
		orders.DELETE("/:id", oc.DeleteOrder)
		orders.GET("/:id/payment", oc.RetrievePaymentDetails)
		orders.POST("/:id/pay", oc.ProcessPayment)
		orders.GET("/:id/invoice", oc.GenerateInvoice)
		orders.GET("/:id/shipment", oc.TrackShipment)
	}

	if bc := ctrl.Blogs; bc != nil {
		blogs := api.Group("/blogs")
		blogs.POST("/create", bc.CreateBlog)
		blogs.GET("/all", bc.GetAllBlogs)
		blogs.GET("/popular", bc.GetPopularBlogs)
		blogs.GET("/categories", bc.GetCategories)
		blogs.GET("/:id", bc.GetBlog)
		blogs.PUT("/:id", bc.UpdateBlog)
		blogs.DELETE("/:id", bc.DeleteBlog)
		blogs.POST("/:id/comments", bc.AddComment)
		blogs.PUT("/:id/comments/:commentId", bc.EditComment)
		blogs.DELETE("/:id/comments/:commentId", bc.DeleteComment)
		blogs.GET("/:id/comments/count", bc.GetCommentCount)
		blogs.PUT("/:id/like", bc.LikeBlog)
	}

	if ac := ctrl.Admin; ac != nil {
		admin := api.Group("/admin")
		admin.GET("/users", ac.GetAllUsers)
		admin.GET("/products", ac.GetAllProducts)
		admin.GET("/products/inventory", ac.GetProductInventory)
		admin.GET("/orders", ac.GetAllOrders)
		admin.GET("/orders/analytics", ac.GetOrderAnalytics)
		admin.GET("/blogs", ac.GetAllBlogs)
		admin.GET("/dashboard", ac.GetDashboard)
		admin.GET("/reports", ac.GetReports)
		admin.GET("/reports/sales", ac.GetSalesReport)
	}
}

// RegisterHealthRoute answers 200 while ping succeeds and 503 otherwise.
func RegisterHealthRoute(r *gin.Engine, ping func(ctx context.Context) error) {
	r.GET("/health", func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				c.JSON(apperrors.ErrServiceUnavailable.Code, gin.H{"status": "UNAVAILABLE", "error": apperrors.ErrServiceUnavailable.Message})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
}
