package controllers

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"hotelbooking/config"
	"hotelbooking/dto"
	"hotelbooking/models"
	"hotelbooking/response"
	"hotelbooking/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func convertToUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		Provider:  user.Provider,
		CreatedAt: user.CreatedAt,
	}
}

// RegisterUser godoc
// @Summary Đăng ký tài khoản email/password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterInput true "Thông tin đăng ký"
// @Success 200 {object} dto.UserResponse
// @Router /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	user, err := services.CreateUser(models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.OK(c, convertToUserResponse(user))
}

// Login godoc
// @Summary Đăng nhập, trả về access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginInput true "Thông tin đăng nhập"
// @Success 200 {object} dto.LoginResponse
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	user, err := services.GetUserByEmail(strings.ToLower(input.Email))
	if err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{UserId: user.ID}, 60*24*3)
	if err != nil {
		log.Printf("Lỗi khi tạo access token: %v", err)
		response.ServerError(c, "Failed to sign in")
		return
	}

	response.OK(c, dto.LoginResponse{
		User:        convertToUserResponse(user),
		AccessToken: accessToken,
	})
}

// Logout godoc
// @Summary Đăng xuất, xóa cookie phía client
// @Tags auth
// @Success 200 {object} dto.DeleteBookingResponse
// @Router /auth/logout [delete]
func Logout(c *gin.Context) {
	// Quên luôn bộ lọc tìm kiếm đã lưu của session này
	if sessionId := c.GetString("sessionId"); sessionId != "" && config.RedisClient != nil {
		if err := services.ClearLastFilters(config.Ctx, config.RedisClient, sessionId); err != nil {
			log.Printf("Lỗi khi xóa bộ lọc tìm kiếm của session %s: %v", sessionId, err)
		}
	}

	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.OK(c, gin.H{"success": true})
}

// AuthGoogle godoc
// @Summary Đăng nhập bằng Google ID token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.GoogleAuthInput true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Router /auth/google [post]
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	payload, err := verifyGoogleIDToken(input.TokenID)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	googleUser := dto.GoogleUser{
		Name:          claimString(payload, "name"),
		Email:         claimString(payload, "email"),
		VerifiedEmail: claimBool(payload, "email_verified"),
		Picture:       claimString(payload, "picture"),
	}

	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email has not been verified")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", strings.ToLower(googleUser.Email)).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		user, err = services.CreateGoogleUser(googleUser.Name, googleUser.Email, googleUser.Picture)
		if err != nil {
			log.Printf("Lỗi khi tạo tài khoản Google: %v", err)
			response.ServerError(c, "Failed to sign in")
			return
		}
	} else if result.Error != nil {
		log.Printf("Lỗi khi tìm tài khoản: %v", result.Error)
		response.ServerError(c, "Failed to sign in")
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{UserId: user.ID}, 60*24*3)
	if err != nil {
		log.Printf("Lỗi khi tạo access token: %v", err)
		response.ServerError(c, "Failed to sign in")
		return
	}

	response.OK(c, dto.LoginResponse{
		User:        convertToUserResponse(user),
		AccessToken: accessToken,
	})
}

// verifyGoogleIDToken xác thực ID token với Google
func verifyGoogleIDToken(tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return idtoken.Validate(context.Background(), tokenID, clientID)
}

func claimString(payload *idtoken.Payload, key string) string {
	if v, ok := payload.Claims[key].(string); ok {
		return v
	}
	return ""
}

func claimBool(payload *idtoken.Payload, key string) bool {
	if v, ok := payload.Claims[key].(bool); ok {
		return v
	}
	return false
}
