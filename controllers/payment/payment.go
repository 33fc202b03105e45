package paymentController

import (
	"time"

	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
)

// PPN is the tax rate applied on top of the course price
const PPN = 11.0 / 100.0

// paymentAmount computes the charge for a course: price plus tax, with the
// course's promotion applied multiplicatively while its window is open.
func paymentAmount(course *models.Course) int {
	amount := float64(course.Price) + float64(course.Price)*PPN

	if course.PromotionID != nil {
		var promotion models.Promotion
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *course.PromotionID, false).First(&promotion).Error; err == nil {
			if promotion.IsActive(time.Now()) {
				amount = amount - (amount*float64(promotion.DiscountPercent))/100
			}
		}
	}

	return int(amount)
}

// GetPaymentQuote returns the amount a user would pay for a course
func GetPaymentQuote(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment detail fetched successfully!", fiber.Map{
		"course": course,
		"ppn":    int(float64(course.Price) * PPN),
		"amount": paymentAmount(&course),
	})
}

// CreatePayment records a confirmed payment for a premium course and enrolls
// the buyer: same tracking fan-out and reminder arming as free enrollment,
// with the premium gate inverted.
func CreatePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData := new(struct {
		MethodPayment string `json:"method_payment"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.MethodPayment == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Method payment is required!", nil)
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !course.IsPremium {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Free course is not able to be bought!", nil)
	}

	var existingEnrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	var category models.Category
	db.Where("id = ?", course.CategoryID).First(&category)

	payment := models.Payment{
		UserID:        userID,
		CourseID:      uint(courseID),
		Amount:        paymentAmount(&course),
		MethodPayment: reqData.MethodPayment,
		Status:        "Paid",
		PaymentCode:   utils.GeneratePaymentCode(category.CategoryName),
	}
	if err := db.Create(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment!", nil)
	}

	utils.SendTransactionEmail(user.Email, course.CourseName, payment.PaymentCode)

	if _, err := utils.CreateEnrollmentWithTracking(db, userID, uint(courseID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment created successfully!", payment)
}

// CreatePaymentGateway charges a card through the payment gateway before
// recording the payment and enrolling the buyer.
func CreatePaymentGateway(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData := new(struct {
		MethodPayment string `json:"method_payment"`
		CardNumber    string `json:"card_number"`
		CVV           string `json:"cvv"`
		ExpiryDate    string `json:"expiry_date"` // MM/YY
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.CardNumber == "" || reqData.CVV == "" || len(reqData.ExpiryDate) != 5 || reqData.ExpiryDate[2] != '/' {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide card_number, cvv and expiry_date (MM/YY)!", nil)
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !course.IsPremium {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Free course is not able to be bought!", nil)
	}

	var existingEnrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	month := reqData.ExpiryDate[:2]
	year := "20" + reqData.ExpiryDate[3:]

	tokenID, err := utils.GetCardToken(reqData.CardNumber, reqData.CVV, month, year)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to tokenize card with payment gateway!", nil)
	}

	var category models.Category
	db.Where("id = ?", course.CategoryID).First(&category)

	amount := paymentAmount(&course)
	paymentCode := utils.GeneratePaymentCode(category.CategoryName)

	if _, err := utils.ChargeCard(tokenID, amount, paymentCode); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Payment was declined by the gateway!", nil)
	}

	payment := models.Payment{
		UserID:        userID,
		CourseID:      uint(courseID),
		Amount:        amount,
		MethodPayment: reqData.MethodPayment,
		Status:        "Paid",
		PaymentCode:   paymentCode,
	}
	if err := db.Create(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment!", nil)
	}

	utils.SendTransactionEmail(user.Email, course.CourseName, payment.PaymentCode)

	if _, err := utils.CreateEnrollmentWithTracking(db, userID, uint(courseID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment created successfully!", payment)
}

// GetPaymentHistory lists the authenticated user's payments with course info
func GetPaymentHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var payments []models.Payment
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	type PaymentWithCourse struct {
		models.Payment
		Course models.Course `json:"course"`
	}

	result := make([]PaymentWithCourse, 0, len(payments))
	for _, payment := range payments {
		row := PaymentWithCourse{Payment: payment}
		db.Where("id = ?", payment.CourseID).First(&row.Course)
		result = append(result, row)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment history fetched successfully!", result)
}

// GetAllPayments lists every payment for admins, with optional status search
func GetAllPayments(c *fiber.Ctx) error {
	search := c.Query("search")

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Payment{}).Where("is_deleted = ?", false)
	if search != "" {
		db = db.Where("status ILIKE ? OR payment_code ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	db.Count(&total)

	var payments []models.Payment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	response := map[string]interface{}{
		"payments": payments,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", response)
}
