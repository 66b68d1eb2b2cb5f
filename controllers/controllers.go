package controllers

import (
	"deskfit/config"
	"deskfit/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// Init hands the package the process logger. Called once from main.
func Init(l *zap.Logger) { logger = l }

// currentUser loads the user the auth middleware resolved for this request.
func currentUser(c *gin.Context) (*models.User, bool) {
	userID := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, false
	}
	return &user, true
}
