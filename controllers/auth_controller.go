package controllers

import (
	"errors"
	"net/http"

	"deskfit/middlewares"
	"deskfit/services"
	"deskfit/utils"

	"github.com/gin-gonic/gin"
)

type CredentialsInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func Login(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBind(&input); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"Error": "Username and password are required."})
		return
	}

	user, err := services.AuthenticateUser(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "Incorrect username or password."})
			return
		}
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Something went wrong. Please try again."})
		return
	}

	if !setSession(c, user.ID) {
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func Signup(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBind(&input); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"Error": "Username and password are required."})
		return
	}

	user, err := services.RegisterUser(input.Username, input.Password)
	if err != nil {
		// Store-level unique index on username lands here too.
		c.HTML(http.StatusConflict, "login.html", gin.H{"Error": "Could not create account. The username may be taken."})
		return
	}

	if !setSession(c, user.ID) {
		return
	}
	c.Redirect(http.StatusFound, "/onboarding")
}

func Logout(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func setSession(c *gin.Context, userID uint) bool {
	token, err := utils.GenerateSessionToken(userID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Could not start a session."})
		return false
	}
	c.SetCookie(middlewares.SessionCookie, token, 72*3600, "/", "", false, true)
	return true
}
