package mail

import (
	"context"

	"go.uber.org/zap"

	"github.com/interviewmate/backend/internal/log"
)

// Sender dispatches the two transactional emails the service produces.
type Sender interface {
	SendVerification(ctx context.Context, to, name, link string) error
	SendPasswordReset(ctx context.Context, to, link string) error
}

// LogSender logs instead of sending. Used in development when SMTP is not
// configured, and as the seam tests hook into.
type LogSender struct{}

func (LogSender) SendVerification(ctx context.Context, to, name, link string) error {
	log.L().Info("mail: verification",
		zap.String("to", to), zap.String("name", name), zap.String("link", link))
	return nil
}

func (LogSender) SendPasswordReset(ctx context.Context, to, link string) error {
	log.L().Info("mail: password reset",
		zap.String("to", to), zap.String("link", link))
	return nil
}
