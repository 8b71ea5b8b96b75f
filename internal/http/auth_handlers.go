package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/interviewmate/backend/internal/domain"
	"github.com/interviewmate/backend/internal/log"
	"github.com/interviewmate/backend/internal/queue"
	"github.com/interviewmate/backend/internal/repo"
	"github.com/interviewmate/backend/internal/security"
)

const minPasswordLen = 6

const authEventsExchange = "interviewmate.events"

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new account and send a verification email
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerReq true "register"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var in registerReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}
	if len(in.Password) < minPasswordLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long"})
		return
	}

	ctx := c.Request.Context()
	if u, err := h.Users.FindUserByEmail(ctx, email); err != nil {
		h.registerFailed(c, err)
		return
	} else if u != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		h.registerFailed(c, err)
		return
	}
	token, err := security.NewToken()
	if err != nil {
		h.registerFailed(c, err)
		return
	}

	u := &domain.User{
		Name:              name,
		Email:             email,
		PasswordHash:      hash,
		VerificationToken: token,
	}
	if err := h.Users.CreateUser(ctx, u); err != nil {
		// the pre-check can lose a race; the unique index settles it
		if repo.IsDup(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		h.registerFailed(c, err)
		return
	}

	link := h.FrontendURL + "/verify-email/" + token
	if err := h.Mailer.SendVerification(ctx, email, name, link); err != nil {
		h.registerFailed(c, err)
		return
	}

	go h.publish("user.registered", queue.UserRegistered{UserID: u.ID, Email: u.Email, Name: u.Name}, c.GetString(requestIDKey))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful. Please check your email to verify your account.",
	})
}

func (h *Handler) registerFailed(c *gin.Context, err error) {
	log.L().Error("register", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during registration. Please try again."})
}

// VerifyEmail godoc
// @Summary Confirm an email address with a verification token
// @Tags auth
// @Produce json
// @Param token path string true "verification token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /auth/verify-email/{token} [get]
func (h *Handler) VerifyEmail(c *gin.Context) {
	u, err := h.Users.ConsumeVerificationToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		log.L().Error("verify email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during verification. Please try again."})
		return
	}
	// a consumed token matches nothing on the second call, same as an
	// unknown one: the client sees "invalid", not "already verified"
	if u == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired verification token"})
		return
	}

	go h.publish("user.verified", queue.UserVerified{UserID: u.ID, Email: u.Email}, c.GetString(requestIDKey))

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginReq true "login"
// @Success 200 {object} map[string]domain.PublicUser
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	u, err := h.Users.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		log.L().Error("login", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during login. Please try again."})
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if !u.Verified {
		c.JSON(http.StatusForbidden, gin.H{
			"error":             "Please verify your email before logging in",
			"needsVerification": true,
		})
		return
	}
	if !security.CheckPassword(u.PasswordHash, in.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u.Public()})
}

type forgotPasswordReq struct {
	Email string `json:"email"`
}

// ForgotPassword godoc
// @Summary Issue a password-reset token and email the reset link
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body forgotPasswordReq true "email"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/forgot-password [post]
func (h *Handler) ForgotPassword(c *gin.Context) {
	var in forgotPasswordReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	ctx := c.Request.Context()
	u, err := h.Users.FindUserByEmail(ctx, email)
	if err != nil {
		h.forgotFailed(c, err)
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	token, err := security.NewToken()
	if err != nil {
		h.forgotFailed(c, err)
		return
	}
	if err := h.Users.SetResetToken(ctx, email, token, time.Now().Add(time.Hour)); err != nil {
		h.forgotFailed(c, err)
		return
	}

	link := h.FrontendURL + "/reset-password/" + token
	if err := h.Mailer.SendPasswordReset(ctx, email, link); err != nil {
		h.forgotFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset link has been sent to your email"})
}

func (h *Handler) forgotFailed(c *gin.Context, err error) {
	log.L().Error("forgot password", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred. Please try again."})
}

type resetPasswordReq struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword godoc
// @Summary Set a new password using a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body resetPasswordReq true "token and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /auth/reset-password [post]
func (h *Handler) ResetPassword(c *gin.Context) {
	var in resetPasswordReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if in.Token == "" || in.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token and new password are required"})
		return
	}
	if len(in.NewPassword) < minPasswordLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long"})
		return
	}

	hash, err := security.HashPassword(in.NewPassword)
	if err != nil {
		log.L().Error("reset password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while resetting password. Please try again."})
		return
	}

	u, err := h.Users.ConsumeResetToken(c.Request.Context(), in.Token, hash)
	if err != nil {
		log.L().Error("reset password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while resetting password. Please try again."})
		return
	}
	if u == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully"})
}

// publish runs on its own goroutine; reqID is bound at the call site because
// the gin context must not be touched after the handler returns.
func (h *Handler) publish(key string, event any, reqID string) {
	if h.Events == nil {
		return
	}
	if err := h.Events.Publish(context.Background(), authEventsExchange, key, event, reqID); err != nil {
		log.L().Warn("event publish", zap.String("key", key), zap.Error(err))
	}
}
