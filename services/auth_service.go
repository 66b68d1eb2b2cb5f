package services

import (
	"errors"

	"deskfit/config"
	"deskfit/models"
	"deskfit/utils"
)

var ErrInvalidCredentials = errors.New("incorrect username or password")

// RegisterUser creates the account and returns it. Username uniqueness
// is enforced by the store; a duplicate surfaces as the insert error.
func RegisterUser(username, password string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:    username,
		Password:    hashedPassword,
		Theme:       "light",
		FontSize:    "medium",
		AccentColor: "#007bff",
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser verifies the credential pair and returns the user.
func AuthenticateUser(username, password string) (*models.User, error) {
	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
