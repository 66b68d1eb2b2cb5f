package controllers

import (
	"errors"
	"net/http"
	"net/url"

	"deskfit/config"
	"deskfit/services"

	"github.com/gin-gonic/gin"
)

type LogMealInput struct {
	FoodName        string  `form:"food_name" binding:"required"`
	Grams           float64 `form:"grams" binding:"required,gt=0"`
	CaloriesPerGram float64 `form:"calories_per_gram"` // only needed for foods not in the catalog
}

func LogMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	var input LogMealInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mealSvc := services.NewMealService(config.DB)
	_, err := mealSvc.LogMeal(userID, input.FoodName, input.Grams, input.CaloriesPerGram)
	if err != nil {
		if errors.Is(err, services.ErrUnknownFoodRate) {
			// Nothing was recorded; tell the user why instead of
			// silently bouncing back.
			c.Redirect(http.StatusFound, "/dashboard?error="+url.QueryEscape(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}
