package email

import "fmt"

func VerificationEmail(frontendURL, token string) (subject, body string) {
	link := fmt.Sprintf("%s/verify-email?token=%s", frontendURL, token)
	subject = "Verify your email address"
	body = fmt.Sprintf(`
		<h2>Welcome to Wantly!</h2>
		<p>Please confirm your email address by clicking the link below:</p>
		<p><a href="%s">Verify email</a></p>
		<p>If you did not create an account, you can ignore this message.</p>`, link)
	return subject, body
}

func PasswordResetEmail(frontendURL, token string) (subject, body string) {
	link := fmt.Sprintf("%s/reset-password?token=%s", frontendURL, token)
	subject = "Reset your password"
	body = fmt.Sprintf(`
		<h2>Password reset</h2>
		<p>We received a request to reset your password. Click the link below to choose a new one:</p>
		<p><a href="%s">Reset password</a></p>
		<p>If you did not request a reset, you can ignore this message.</p>`, link)
	return subject, body
}

func AccountDeletionEmail(frontendURL, token string) (subject, body string) {
	link := fmt.Sprintf("%s/confirm-deletion?token=%s", frontendURL, token)
	subject = "Confirm account deletion"
	body = fmt.Sprintf(`
		<h2>Account deletion requested</h2>
		<p>Click the link below to permanently delete your account. The link expires in 24 hours.</p>
		<p><a href="%s">Delete my account</a></p>
		<p>If you did not request this, change your password immediately.</p>`, link)
	return subject, body
}
