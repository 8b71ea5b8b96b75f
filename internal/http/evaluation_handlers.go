package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/interviewmate/backend/internal/domain"
	"github.com/interviewmate/backend/internal/log"
	"github.com/interviewmate/backend/internal/queue"
	"github.com/interviewmate/backend/internal/repo"
)

// Pointer fields so an absent number is distinguishable from a zero score;
// required-ness mirrors the storage schema. The optional client-side
// `metrics` blob is accepted and not persisted.
type saveEvaluationReq struct {
	UserEmail  string `json:"userEmail"`
	Evaluation struct {
		AverageScore       *float64        `json:"average_score"`
		InterviewDuration  *float64        `json:"interview_duration"`
		TotalQuestions     *int            `json:"total_questions"`
		QAPairs            []domain.QAPair `json:"qa_pairs"`
		DetailedEvaluation string          `json:"detailed_evaluation"`
		Metrics            map[string]any  `json:"metrics"`
	} `json:"evaluation"`
}

// SaveEvaluation godoc
// @Summary Persist a completed interview evaluation
// @Tags evaluationhistory
// @Accept json
// @Produce json
// @Param payload body saveEvaluationReq true "userEmail and evaluation"
// @Success 201 {object} map[string]any
// @Failure 500 {object} map[string]string
// @Router /evaluationhistory/save-evaluation [post]
func (h *Handler) SaveEvaluation(c *gin.Context) {
	var in saveEvaluationReq
	if err := c.ShouldBindJSON(&in); err != nil {
		h.saveEvaluationFailed(c, err)
		return
	}
	// absent numbers fail the same way absent schema fields did upstream:
	// a validation error surfaced as 500, not a 400
	switch {
	case in.Evaluation.AverageScore == nil:
		h.saveEvaluationFailed(c, repo.ErrInvalidEvaluation{Field: "average_score"})
		return
	case in.Evaluation.InterviewDuration == nil:
		h.saveEvaluationFailed(c, repo.ErrInvalidEvaluation{Field: "interview_duration"})
		return
	case in.Evaluation.TotalQuestions == nil:
		h.saveEvaluationFailed(c, repo.ErrInvalidEvaluation{Field: "total_questions"})
		return
	}

	ev := &domain.Evaluation{
		UserEmail:          in.UserEmail,
		AverageScore:       *in.Evaluation.AverageScore,
		InterviewDuration:  *in.Evaluation.InterviewDuration,
		TotalQuestions:     *in.Evaluation.TotalQuestions,
		QAPairs:            in.Evaluation.QAPairs,
		DetailedEvaluation: in.Evaluation.DetailedEvaluation,
	}
	if err := h.Evals.AddEvaluation(c.Request.Context(), ev); err != nil {
		h.saveEvaluationFailed(c, err)
		return
	}

	go h.publish("evaluation.saved", queue.EvaluationSaved{
		EvaluationID: ev.ID,
		UserEmail:    ev.UserEmail,
		AverageScore: ev.AverageScore,
	}, c.GetString(requestIDKey))

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Evaluation saved successfully",
		"evaluation": ev,
	})
}

func (h *Handler) saveEvaluationFailed(c *gin.Context, err error) {
	log.L().Error("save evaluation", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "Error saving evaluation",
		"error":   err.Error(),
	})
}

// UserEvaluations godoc
// @Summary List a user's saved evaluations, newest first
// @Tags evaluationhistory
// @Produce json
// @Param email path string true "user email"
// @Success 200 {array} domain.Evaluation
// @Failure 500 {object} map[string]string
// @Router /evaluationhistory/user-evaluations/{email} [get]
func (h *Handler) UserEvaluations(c *gin.Context) {
	items, err := h.Evals.ListEvaluationsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		log.L().Error("list evaluations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error fetching evaluations",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, items)
}
