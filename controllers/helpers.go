package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/yaksha-ameet-khemani/e-mall-pro-connect/common/errors"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/common/logger"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/services"
	"go.uber.org/zap"
)

const genericErrorMessage = "Internal server error"

// handleServiceError renders a service failure as {"error": message}. Server
// side failures are logged with their cause; the cause never reaches the client.
func handleServiceError(c *gin.Context, log *zap.Logger, svcErr *services.ServiceError) {
	status := svcErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}
	message := svcErr.Message
	if message == "" {
		message = genericErrorMessage
	}
	if status >= http.StatusInternalServerError {
		logger.Error(c, log, "Request failed", svcErr.Err,
			zap.String("path", c.FullPath()),
			zap.String("message", message),
		)
	}
	c.JSON(status, gin.H{"error": message})
}

// bindJSON decodes the request body, answering 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(apperrors.Wrap(apperrors.ErrBadRequest, err))
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrBadRequest.Message})
		return false
	}
	return true
}
