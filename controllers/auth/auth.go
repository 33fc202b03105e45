package authController

import (
	"log"
	"regexp"
	"time"
	"unicode"

	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
var phonePattern = regexp.MustCompile(`^\d+$`)

// OTP expiration time
const otpExpiry = 30 * time.Minute

// validPassword checks the password policy: 8-12 chars with at least one
// lowercase, one uppercase, one digit and one symbol.
func validPassword(password string) bool {
	if len(password) < 8 || len(password) > 12 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

func Register(c *fiber.Ctx) error {
	reqData := new(struct {
		FullName    string `json:"fullName"`
		Email       string `json:"email"`
		PhoneNumber string `json:"phoneNumber"`
		Password    string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.FullName == "" || reqData.Email == "" || reqData.PhoneNumber == "" || reqData.Password == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "All fields are required.", nil)
	}
	if len(reqData.FullName) > 50 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid full name length. It must be at most 50 characters.", nil)
	}
	if !emailPattern.MatchString(reqData.Email) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid email format.", nil)
	}
	if !phonePattern.MatchString(reqData.PhoneNumber) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid phone number format. It must contain only numeric characters.", nil)
	}
	if len(reqData.PhoneNumber) < 10 || len(reqData.PhoneNumber) > 12 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid phone number length. It must be between 10 and 12 characters.", nil)
	}
	if !validPassword(reqData.Password) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid password format. It must contain at least 1 lowercase, 1 uppercase, 1 digit number, 1 symbol, and be between 8 and 12 characters long.", nil)
	}

	db := database.Database.Db

	// Check for an existing account with the same email
	var existingUser models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&existingUser).Error; err == nil {
		if existingUser.GoogleID != "" {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already registered using Google OAuth. Please use Google OAuth to log in.", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email or phone number already exists", nil)
	}

	// Phone numbers live on the profile
	var existingProfile models.UserProfile
	if err := db.Where("phone_number = ? AND is_deleted = false", reqData.PhoneNumber).First(&existingProfile).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email or phone number already exists", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	otp := utils.GenerateOTP()
	now := time.Now()

	newUser := models.User{
		Email:        reqData.Email,
		Password:     string(hashedPassword),
		OTP:          otp,
		OTPCreatedAt: &now,
	}
	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	newProfile := models.UserProfile{
		UserID:      newUser.ID,
		FullName:    reqData.FullName,
		PhoneNumber: reqData.PhoneNumber,
	}
	if err := db.Create(&newProfile).Error; err != nil {
		log.Printf("Error saving user profile to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	utils.SendOTPEmail(newUser.Email, otp)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration successful", fiber.Map{
		"user":    newUser,
		"profile": newProfile,
	})
}

func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		EmailOrPhoneNumber string `json:"emailOrPhoneNumber"`
		Password           string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Look up by email first, then by profile phone number
	var user models.User
	err := db.Where("email = ? AND is_deleted = false", reqData.EmailOrPhoneNumber).First(&user).Error
	if err != nil {
		var profile models.UserProfile
		if err := db.Where("phone_number = ? AND is_deleted = false", reqData.EmailOrPhoneNumber).First(&profile).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Email or Password!", nil)
		}
		if err := db.Where("id = ? AND is_deleted = false", profile.UserID).First(&user).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Email or Password!", nil)
		}
	}

	if user.Password == "" && user.GoogleID != "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication failed. Please use Google OAuth to log in.", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Email or Password!", nil)
	}

	if !user.IsVerified {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account not verified. Please check your email!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func VerifyOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	if user.OTP != reqData.OTP {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid OTP", nil)
	}

	if user.OTPCreatedAt == nil || time.Since(*user.OTPCreatedAt) > otpExpiry {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "OTP has expired. Please request a new one.", nil)
	}

	if err := db.Model(&user).Update("is_verified", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account verified successfully", nil)
}

func ResendOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	otp := utils.GenerateOTP()
	now := time.Now()
	if err := db.Model(&user).Updates(map[string]interface{}{"otp": otp, "otp_created_at": now}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resend OTP!", nil)
	}

	utils.SendOTPEmail(user.Email, otp)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP resent. Please check your email.", nil)
}

func ForgotPassword(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	// Short-lived reset token, emailed to the user
	claims := jwt.MapClaims{
		"userId":  user.ID,
		"purpose": "password-reset",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	resetToken, err := token.SignedString([]byte(config.AppConfig.JWTKey))
	if err != nil {
		log.Printf("Error generating reset token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	utils.SendPasswordResetEmail(user.Email, resetToken)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset instructions sent. Please check your email.", nil)
}

func ResetPassword(c *fiber.Ctx) error {
	reqData := new(struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if !validPassword(reqData.NewPassword) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid password format. It must contain at least 1 lowercase, 1 uppercase, 1 digit number, 1 symbol, and be between 8 and 12 characters long.", nil)
	}

	token, err := jwt.Parse(reqData.Token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired reset token", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["purpose"] != "password-reset" || claims["userId"] == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired reset token", nil)
	}
	userID := uint(claims["userId"].(float64))

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successful", nil)
}

func ChangePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if !validPassword(reqData.NewPassword) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid password format. It must contain at least 1 lowercase, 1 uppercase, 1 digit number, 1 symbol, and be between 8 and 12 characters long.", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.CurrentPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Current password is incorrect!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to change password!", nil)
	}

	// Confirmation lands in the user's notification feed
	notification := models.Notification{
		UserID:  user.ID,
		Title:   "Password Changed",
		Message: "Your password was changed successfully. If this wasn't you, contact support immediately.",
	}
	db.Create(&notification)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password changed successfully", nil)
}

// Me returns the authenticated user with their profile
func Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var profile models.UserProfile
	db.Where("user_id = ? AND is_deleted = false", userID).First(&profile)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Authenticated user fetched successfully!", fiber.Map{
		"user":    user,
		"profile": profile,
	})
}
