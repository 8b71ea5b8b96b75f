package mail

import "fmt"

// Validity wording: verification links claim 24 hours, reset links 1 hour.
// Only the reset expiry is enforced server-side (reference behavior).

func verificationBody(name, link string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#f5f5f5;">
  <table width="100%%" style="max-width:600px;margin:0 auto;background-color:#ffffff;border-radius:8px;">
    <tr><td style="padding:40px 30px;">
      <h2 style="color:#1a237e;">Welcome to InterviewMate!</h2>
      <p style="color:#666666;font-size:16px;">Hello %s,</p>
      <p style="color:#666666;font-size:16px;">Thank you for registering with InterviewMate.
      To start your interview preparation journey, please verify your email address:</p>
      <div style="text-align:center;margin:30px 0;">
        <a href="%s" style="background:#1a237e;color:white;padding:15px 30px;text-decoration:none;border-radius:50px;font-weight:bold;">Verify Email Address</a>
      </div>
      <p style="color:#666666;font-size:14px;">If the button doesn't work, copy and paste this link into your browser:</p>
      <p style="background-color:#f5f5f5;padding:15px;word-break:break-all;"><a href="%s">%s</a></p>
      <p style="color:#666666;font-size:14px;">This link will expire in 24 hours for security reasons.</p>
      <p style="color:#999999;font-size:12px;">If you didn't create an account with InterviewMate, please ignore this email.</p>
    </td></tr>
  </table>
</body>
</html>`, name, link, link, link)
}

func resetBody(link string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#f5f5f5;">
  <table width="100%%" style="max-width:600px;margin:0 auto;background-color:#ffffff;border-radius:8px;">
    <tr><td style="padding:40px 30px;">
      <h2 style="color:#1a237e;">Password Reset Request</h2>
      <p style="color:#666666;font-size:16px;">We received a request to reset your InterviewMate
      account password. Click the button below to create a new password:</p>
      <div style="text-align:center;margin:30px 0;">
        <a href="%s" style="background:#1a237e;color:white;padding:15px 30px;text-decoration:none;border-radius:50px;font-weight:bold;">Reset Password</a>
      </div>
      <p style="color:#666666;font-size:14px;">If the button doesn't work, copy and paste this link into your browser:</p>
      <p style="background-color:#f5f5f5;padding:15px;word-break:break-all;"><a href="%s">%s</a></p>
      <p style="color:#666666;font-size:14px;">This link will expire in 1 hour for security reasons.</p>
      <p style="color:#999999;font-size:12px;">If you didn't request a password reset, please ignore this email.</p>
    </td></tr>
  </table>
</body>
</html>`, link, link, link)
}
