package constvars

const (
	EmailOtpSubject           = "Your verification code"
	EmailResetPasswordSubject = "Password Reset"

	// RFC 822 style headers followed by an HTML body.
	EmailHTMLMessageFormat = "To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s"

	EmailOtpHTMLBodyFormat = "<p>Your one-time verification code is <b>%s</b>. It expires in %d minutes.</p>"

	EmailResetPasswordHTMLBodyFormat = "<p>Your password reset link: <a href=\"%s\">%s</a>. This link will expire in 1 hour.</p>"
)
