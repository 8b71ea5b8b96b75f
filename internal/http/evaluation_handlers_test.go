package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interviewmate/backend/internal/domain"
)

const evalPayload = `{
	"userEmail": %q,
	"evaluation": {
		"average_score": %g,
		"interview_duration": 12.5,
		"total_questions": 3,
		"qa_pairs": [
			{"question": "What is a goroutine?", "answer": "A lightweight thread."},
			{"question": "What is a channel?", "answer": "A typed conduit."}
		],
		"detailed_evaluation": "Solid fundamentals, needs depth on scheduling."
	}
}`

func TestSaveEvaluation_ThenList(t *testing.T) {
	env := newTestEnv(t)

	w := env.do("POST", "/evaluationhistory/save-evaluation",
		fmt.Sprintf(evalPayload, "ann@x.com", 7.5))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Message    string            `json:"message"`
		Evaluation domain.Evaluation `json:"evaluation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Evaluation saved successfully", created.Message)
	assert.False(t, created.Evaluation.ID.IsZero())
	assert.False(t, created.Evaluation.CreatedAt.IsZero())
	assert.Equal(t, 7.5, created.Evaluation.AverageScore)
	assert.Len(t, created.Evaluation.QAPairs, 2)

	w = env.do("GET", "/evaluationhistory/user-evaluations/ann@x.com", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []domain.Evaluation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.Evaluation.ID, listed[0].ID)

	// another user's history stays empty, and empty is a 200 with []
	w = env.do("GET", "/evaluationhistory/user-evaluations/bob@x.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestUserEvaluations_NewestFirst(t *testing.T) {
	env := newTestEnv(t)

	for _, score := range []float64{5, 6, 7} {
		w := env.do("POST", "/evaluationhistory/save-evaluation",
			fmt.Sprintf(evalPayload, "ann@x.com", score))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.do("GET", "/evaluationhistory/user-evaluations/ann@x.com", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []domain.Evaluation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 3)
	assert.Equal(t, []float64{7, 6, 5},
		[]float64{listed[0].AverageScore, listed[1].AverageScore, listed[2].AverageScore})
}

func TestSaveEvaluation_MissingFieldIs500(t *testing.T) {
	env := newTestEnv(t)

	// average_score absent entirely, not zero
	w := env.do("POST", "/evaluationhistory/save-evaluation", `{
		"userEmail": "ann@x.com",
		"evaluation": {
			"interview_duration": 10,
			"total_questions": 2,
			"qa_pairs": [],
			"detailed_evaluation": "n/a"
		}
	}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Error saving evaluation", resp["message"])
	assert.Contains(t, resp["error"], "average_score")
}

func TestSaveEvaluation_NoReferentialCheck(t *testing.T) {
	env := newTestEnv(t)

	// userEmail need not belong to a registered user
	w := env.do("POST", "/evaluationhistory/save-evaluation",
		fmt.Sprintf(evalPayload, "ghost@nowhere.test", 4.0))
	assert.Equal(t, http.StatusCreated, w.Code)
}
