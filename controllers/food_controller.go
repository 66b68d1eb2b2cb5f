package controllers

import (
	"net/http"

	"deskfit/config"
	"deskfit/services"

	"github.com/gin-gonic/gin"
)

// GET /food_suggestions?query=app
func FoodSuggestions(c *gin.Context) {
	foodSvc := services.NewFoodService(config.DB)

	out, err := foodSvc.Suggest(c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
