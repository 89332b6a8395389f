package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/services"
	"go.uber.org/zap"
)

type UserController struct {
	service services.UserService
	logger  *zap.Logger
}

func NewUserController(service services.UserService, logger *zap.Logger) *UserController {
	mustRegisterValidators()
	return &UserController{service: service, logger: logger}
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, svcErr := uc.service.CreateUser(c.Request.Context(), &req)
	if svcErr != nil {
		handleServiceError(c, uc.logger, svcErr)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (uc *UserController) GetUserProfile(c *gin.Context) {
	user, svcErr := uc.service.GetUserProfile(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		handleServiceError(c, uc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateUserProfile(c *gin.Context) {
	var req models.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, svcErr := uc.service.UpdateUserProfile(c.Request.Context(), c.Param("id"), &req)
	if svcErr != nil {
		handleServiceError(c, uc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	if svcErr := uc.service.DeleteUser(c.Request.Context(), c.Param("id")); svcErr != nil {
		handleServiceError(c, uc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "User deleted successfully."})
}

func (uc *UserController) GetUserByEmail(c *gin.Context) {
	user, svcErr := uc.service.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if svcErr != nil {
		handleServiceError(c, uc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) GetUserActivity(c *gin.Context) {
	activity, svcErr := uc.service.GetUserActivity(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		handleServiceError(c, uc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (uc *UserController) GetUserFavorites(c *gin.Context) {
	favorites, svcErr := uc.service.GetUserFavorites(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		handleServiceError(c, uc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (uc *UserController) AddFavorite(c *gin.Context) {
	favorites, svcErr := uc.service.AddFavorite(c.Request.Context(), c.Param("id"), c.Param("productId"))
	if svcErr != nil {
		handleServiceError(c, uc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (uc *UserController) RemoveFavorite(c *gin.Context) {
	favorites, svcErr := uc.service.RemoveFavorite(c.Request.Context(), c.Param("id"), c.Param("productId"))
	if svcErr != nil {
		handleServiceError(c, uc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (uc *UserController) ChangeUserPassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if svcErr := uc.service.ChangeUserPassword(c.Request.Context(), c.Param("id"), req.NewPassword); svcErr != nil {
		handleServiceError(c, uc.logger, svcErr)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Password changed successfully."})
}
