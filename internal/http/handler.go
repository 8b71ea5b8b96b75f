package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/interviewmate/backend/internal/domain"
	"github.com/interviewmate/backend/internal/mail"
	"github.com/interviewmate/backend/internal/queue"
	"github.com/interviewmate/backend/internal/repo"
)

// UserStore is the slice of the Mongo store the auth handlers need.
type UserStore interface {
	CreateUser(ctx context.Context, u *domain.User) error
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ConsumeVerificationToken(ctx context.Context, token string) (*domain.User, error)
	SetResetToken(ctx context.Context, email, token string, expiry time.Time) error
	ConsumeResetToken(ctx context.Context, token, newHash string) (*domain.User, error)
	Ping(ctx context.Context) error
}

type EvaluationStore interface {
	AddEvaluation(ctx context.Context, ev *domain.Evaluation) error
	ListEvaluationsByEmail(ctx context.Context, email string) ([]domain.Evaluation, error)
}

type Handler struct {
	Users           UserStore
	Evals           EvaluationStore
	Mailer          mail.Sender
	Events          queue.Publisher
	Redis           *repo.Redis
	RateLimitPerMin int
	FrontendURL     string
}

func NewHandler(users UserStore, evals EvaluationStore, mailer mail.Sender, pub queue.Publisher, rds *repo.Redis, rlPerMin int, frontendURL string) *Handler {
	return &Handler{
		Users:           users,
		Evals:           evals,
		Mailer:          mailer,
		Events:          pub,
		Redis:           rds,
		RateLimitPerMin: rlPerMin,
		FrontendURL:     frontendURL,
	}
}

func (h *Handler) Healthz(c *gin.Context) {
	if err := h.Users.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
