package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"studynotion/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Generic Send Email. Uses SendGrid when an API key is configured and falls
// back to plain SMTP otherwise. Returns nil without sending when no sender
// identity is configured at all.
func SendEmail(to []string, subject string, htmlBody string) error {
	from := config.AppConfig.EmailSender
	if from == "" {
		fmt.Printf("--- Email skipped (no sender configured) ---\nTo: %v\nSubject: %s\n", to, subject)
		return nil
	}

	if config.AppConfig.SendGridKey != "" {
		return sendViaSendGrid(from, to, subject, htmlBody)
	}

	return sendViaSMTP(from, to, subject, htmlBody)
}

func sendViaSendGrid(from string, to []string, subject, htmlBody string) error {
	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	sender := sgmail.NewEmail(config.AppConfig.AppName, from)

	for _, addr := range to {
		message := sgmail.NewSingleEmail(sender, subject, sgmail.NewEmail("", addr), "", htmlBody)
		resp, err := client.Send(message)
		if err != nil {
			fmt.Println("Error sending email via SendGrid:", err)
			return err
		}
		if resp.StatusCode >= 400 {
			fmt.Printf("SendGrid rejected email: %d %s\n", resp.StatusCode, resp.Body)
			return fmt.Errorf("sendgrid rejected email with status %d", resp.StatusCode)
		}
	}

	return nil
}

func sendViaSMTP(from string, to []string, subject, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s <%s>\r\n", config.AppConfig.AppName, from)
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

// HTML wrapper shared by all transactional emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #000814; padding: 30px; text-align: center; }
			.header h1 { color: #FFD60A; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #000814; line-height: 1.6; }
			.content h2 { color: #000814; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #FFD60A; color: #000814; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #FFD60A; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>STUDYNOTION</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 StudyNotion. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Course Enrollment Confirmation
func SendCourseEnrollmentEmail(email, name, courseName string) {
	subject := "Course Enrollment Confirmation"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully enrolled in <strong>%s</strong>.</p>
		<p>Head over to your dashboard to start learning right away.</p>
		<a href="#" class="btn">Go to Dashboard</a>
	`, name, courseName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Successful", body))
}

// 2. Payment Receipt
func SendPaymentSuccessEmail(email, name, courseName string, amount uint, transactionID, paymentMethod string) {
	subject := "Payment Success"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your payment of <strong>&#8377;%d</strong> for <strong>%s</strong>.</p>
		<div class="info-box">
			<ul style="list-style: none; padding: 0; margin: 0;">
				<li style="margin-bottom: 8px;"><strong>Transaction ID:</strong> %s</li>
				<li><strong>Payment Method:</strong> %s</li>
			</ul>
		</div>
		<p>Keep this email as your receipt.</p>
	`, name, amount, courseName, transactionID, paymentMethod)

	go SendEmail([]string{email}, subject, getEmailTemplate("Payment Received", body))
}
