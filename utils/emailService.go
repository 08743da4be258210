package utils

import (
	"fmt"
	"lms/config"
	"net/smtp"
	"strings"
	"time"
)

// SendEmail sends an HTML email through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Learning Portal <%s>\r\n", from)
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

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B3A5C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B3A5C; line-height: 1.6; }
			.content h2 { color: #1B3A5C; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4C9A71; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNING PORTAL</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Learning Portal. All rights reserved.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendCourseAssignedEmail notifies a learner that a course was assigned
func SendCourseAssignedEmail(email, name, courseTitle string, dueAt *time.Time) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You have been assigned the course <strong>%s</strong>.</p>`, name, courseTitle)
	if dueAt != nil {
		body += fmt.Sprintf(`
		<div class="info-box">Please complete it by <strong>%s</strong>.</div>`, dueAt.Format("02 Jan 2006"))
	}
	body += `<p>Log in to the learning portal to get started.</p>`

	if err := SendEmail([]string{email}, "New Course Assigned: "+courseTitle, getEmailTemplate("Course Assigned", body)); err != nil {
		fmt.Printf("Failed to send assignment email to %s: %v\n", email, err)
	}
}

// SendCourseCompletionEmail congratulates a learner on finishing a course
func SendCourseCompletionEmail(email, name, courseTitle string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations! You have completed <strong>%s</strong>.</p>
		<p>Your progress has been recorded. Keep up the momentum and explore your next course.</p>`, name, courseTitle)

	if err := SendEmail([]string{email}, "Course Completed: "+courseTitle, getEmailTemplate("Course Completed", body)); err != nil {
		fmt.Printf("Failed to send completion email to %s: %v\n", email, err)
	}
}
