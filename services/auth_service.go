package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelbooking/config"
	"hotelbooking/constants"
	apperrors "hotelbooking/errors"
	"hotelbooking/models"
	"hotelbooking/validator"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, apperrors.ErrUserNotFound
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CreateUser tạo tài khoản email/password mới
func CreateUser(input models.User) (models.User, error) {
	if err := validator.ValidateRegister(input.Email, input.Password); err != nil {
		return models.User{}, err
	}

	input.Email = strings.ToLower(input.Email)

	if _, err := GetUserByEmail(input.Email); err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", input.Email)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  hashedPassword,
		Provider:  constants.ProviderLocal,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// CreateGoogleUser tạo tài khoản từ thông tin Google, không có password
func CreateGoogleUser(name, email, picture string) (models.User, error) {
	user := models.User{
		Name:      name,
		Email:     strings.ToLower(email),
		Avatar:    picture,
		Provider:  constants.ProviderGoogle,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}
