package controllers

import (
	"net/http"

	"deskfit/config"
	"deskfit/services"

	"github.com/gin-gonic/gin"
)

// GET /get_summary_data
func GetSummaryData(c *gin.Context) {
	userID := c.GetUint("userID")

	summarySvc := services.NewSummaryService(config.DB)
	summary, err := summarySvc.Daily(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /get_health_status
func GetHealthStatus(c *gin.Context) {
	userID := c.GetUint("userID")

	summarySvc := services.NewSummaryService(config.DB)
	totals, err := summarySvc.Totals(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	advisor := services.NewAdvisorService(logger)
	c.JSON(http.StatusOK, gin.H{"status": advisor.StatusMessage(c.Request.Context(), totals)})
}
