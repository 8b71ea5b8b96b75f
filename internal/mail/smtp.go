package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/interviewmate/backend/internal/log"
	"github.com/interviewmate/backend/internal/metrics"
)

type SMTPSender struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPSender(host, port, user, pass, from string) *SMTPSender {
	return &SMTPSender{host: host, port: port, user: user, pass: pass, from: from}
}

func (s *SMTPSender) send(to, subject, html string) error {
	msg := []byte("From: InterviewMate <" + s.from + ">\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" + html)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (s *SMTPSender) SendVerification(ctx context.Context, to, name, link string) error {
	if err := s.send(to, "Verify Your Email - InterviewMate", verificationBody(name, link)); err != nil {
		metrics.EmailsSent.WithLabelValues("verification", "error").Inc()
		log.L().Error("mail: verification failed", zap.String("to", to), zap.Error(err))
		return err
	}
	metrics.EmailsSent.WithLabelValues("verification", "ok").Inc()
	log.L().Info("mail: verification sent", zap.String("to", to))
	return nil
}

func (s *SMTPSender) SendPasswordReset(ctx context.Context, to, link string) error {
	if err := s.send(to, "Password Reset Request - InterviewMate", resetBody(link)); err != nil {
		metrics.EmailsSent.WithLabelValues("reset", "error").Inc()
		log.L().Error("mail: password reset failed", zap.String("to", to), zap.Error(err))
		return err
	}
	metrics.EmailsSent.WithLabelValues("reset", "ok").Inc()
	log.L().Info("mail: password reset sent", zap.String("to", to))
	return nil
}
