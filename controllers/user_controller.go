package controllers

import (
	"net/http"

	"deskfit/config"
	"deskfit/utils"

	"github.com/gin-gonic/gin"
)

type OnboardingInput struct {
	Sex    string  `form:"sex" binding:"required"`
	Weight float64 `form:"weight" binding:"required,gt=0"` // kg
	Height float64 `form:"height" binding:"required,gt=0"` // cm as typed
	Age    int     `form:"age" binding:"required,gt=0"`
	Goal   string  `form:"goal" binding:"required"`
}

func OnboardingPage(c *gin.Context) {
	c.HTML(http.StatusOK, "onboarding.html", gin.H{})
}

func SaveOnboarding(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var input OnboardingInput
	if err := c.ShouldBind(&input); err != nil {
		c.HTML(http.StatusBadRequest, "onboarding.html", gin.H{"Error": err.Error()})
		return
	}

	user.Sex = input.Sex
	user.Weight = input.Weight
	user.Height = input.Height / 100 // form takes cm, profile stores meters
	user.Age = input.Age
	user.Goal = input.Goal

	if err := config.DB.Save(user).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "onboarding.html", gin.H{"Error": "Could not save your profile."})
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func Dashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	data := gin.H{
		"User":  user,
		"Error": c.Query("error"),
	}
	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		data["BMI"] = bmi
		data["BMICategory"] = utils.BMICategory(bmi)
	}
	c.HTML(http.StatusOK, "dashboard.html", data)
}

func SettingsPage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "settings.html", gin.H{"User": user})
}

// UpdatePreferences overwrites the display preferences, falling back to
// the stock values for anything the form left out.
func UpdatePreferences(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	user.Theme = c.DefaultPostForm("theme", "light")
	user.FontSize = c.DefaultPostForm("font_size", "medium")
	user.AccentColor = c.DefaultPostForm("accent_color", "#007bff")

	if err := config.DB.Save(user).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "settings.html", gin.H{"User": user, "Error": "Could not save preferences."})
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}
