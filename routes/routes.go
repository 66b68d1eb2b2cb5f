package routes

import (
	"deskfit/controllers"
	"deskfit/middlewares"

	"github.com/gin-gonic/gin"
)

// TemplatesDir is relative to the process working directory.
var TemplatesDir = "templates"

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(TemplatesDir + "/*.html")

	// Public routes
	r.GET("/", controllers.LoginPage)
	r.POST("/login", controllers.Login)
	r.POST("/signup", controllers.Signup)
	r.GET("/food_suggestions", controllers.FoodSuggestions)

	// Everything else needs a session
	app := r.Group("/")
	app.Use(middlewares.AuthMiddleware())
	{
		app.GET("/onboarding", controllers.OnboardingPage)
		app.POST("/save_onboarding", controllers.SaveOnboarding)
		app.GET("/dashboard", controllers.Dashboard)
		app.GET("/settings", controllers.SettingsPage)
		app.POST("/update_preferences", controllers.UpdatePreferences)

		app.POST("/log_meal", controllers.LogMeal)
		app.POST("/log_water", controllers.LogWater)
		app.POST("/log_activity", controllers.LogActivity)

		app.GET("/get_summary_data", controllers.GetSummaryData)
		app.GET("/get_health_status", controllers.GetHealthStatus)

		app.POST("/logout", controllers.Logout)
	}

	return r
}
