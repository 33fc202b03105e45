package utils

import (
	"elearn/config"
	"fmt"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Bingwa Academy <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by every outbound mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1D2939; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1D2939; line-height: 1.6; }
			.content h2 { color: #1D2939; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.otp-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #6941C6; margin: 20px 0; font-size: 22px; letter-spacing: 4px; text-align: center; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>BINGWA ACADEMY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Bingwa Academy. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Email verification OTP at registration (and resend)
func SendOTPEmail(email, otp string) {
	subject := "Email Activation"
	body := fmt.Sprintf(`
		<p>Hello,</p>
		<p>Use the code below to verify your email address. It expires in 30 minutes.</p>
		<div class="otp-box">%s</div>
		<p>If you did not create an account, you can safely ignore this email.</p>
	`, otp)

	go SendEmail([]string{email}, subject, getEmailTemplate("Verify Your Email", body))
}

// 2. Successful course purchase
func SendTransactionEmail(email, courseName, paymentCode string) {
	subject := "Email Transaction"
	body := fmt.Sprintf(`
		<p>Hello,</p>
		<p>Your payment for <strong>%s</strong> was successful.</p>
		<p>Payment code: <strong>%s</strong></p>
		<p>The course is now available in your enrollments. Happy learning!</p>
	`, courseName, paymentCode)

	go SendEmail([]string{email}, subject, getEmailTemplate("Transaction Successful", body))
}

// 3. Password reset link
func SendPasswordResetEmail(email, resetToken string) {
	subject := "Reset Your Password"
	body := fmt.Sprintf(`
		<p>Hello,</p>
		<p>We received a request to reset your password. Use the token below to set a new one.</p>
		<div class="otp-box">%s</div>
		<p>If you did not request a reset, you can safely ignore this email.</p>
	`, resetToken)

	go SendEmail([]string{email}, subject, getEmailTemplate("Password Reset", body))
}
