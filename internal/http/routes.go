package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/interviewmate/backend/docs"
)

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(CORS())
	r.Use(MaxBody(10 << 20)) // same 10mb cap the frontend was built against
	r.Use(Metrics())

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.RateLimit(), h.Register)
		auth.GET("/verify-email/:token", h.VerifyEmail)
		auth.POST("/login", h.RateLimit(), h.Login)
		auth.POST("/forgot-password", h.RateLimit(), h.ForgotPassword)
		auth.POST("/reset-password", h.ResetPassword)
	}

	hist := r.Group("/evaluationhistory")
	{
		hist.POST("/save-evaluation", h.SaveEvaluation)
		hist.GET("/user-evaluations/:email", h.UserEvaluations)
	}

	return r
}
