package controllers

import (
	"errors"
	"net/http"
	"net/url"

	"deskfit/config"
	"deskfit/services"

	"github.com/gin-gonic/gin"
)

type LogActivityInput struct {
	DurationMinutes float64 `form:"duration_minutes" binding:"required,gt=0"`
}

type LogWaterInput struct {
	AmountML float64 `form:"amount_ml" binding:"required,gt=0"`
}

func LogActivity(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var input LogActivityInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activitySvc := services.NewActivityService(config.DB)
	if _, err := activitySvc.LogWalk(user, input.DurationMinutes); err != nil {
		if errors.Is(err, services.ErrProfileIncomplete) {
			c.Redirect(http.StatusFound, "/dashboard?error="+url.QueryEscape(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func LogWater(c *gin.Context) {
	userID := c.GetUint("userID")

	var input LogWaterInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	waterSvc := services.NewWaterService(config.DB)
	if _, err := waterSvc.LogWater(userID, input.AmountML); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}
