package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/interviewmate/backend/internal/domain"
)

// ErrInvalidEvaluation marks schema-level validation failures. Handlers
// surface these as 500 with the message, matching the reference behavior.
type ErrInvalidEvaluation struct{ Field string }

func (e ErrInvalidEvaluation) Error() string {
	return fmt.Sprintf("evaluation validation failed: %s is required", e.Field)
}

func validateEvaluation(ev *domain.Evaluation) error {
	if strings.TrimSpace(ev.UserEmail) == "" {
		return ErrInvalidEvaluation{Field: "userEmail"}
	}
	if ev.DetailedEvaluation == "" {
		return ErrInvalidEvaluation{Field: "detailed_evaluation"}
	}
	for _, qa := range ev.QAPairs {
		if qa.Question == "" {
			return ErrInvalidEvaluation{Field: "qa_pairs.question"}
		}
		if qa.Answer == "" {
			return ErrInvalidEvaluation{Field: "qa_pairs.answer"}
		}
	}
	return nil
}

func (s *Store) AddEvaluation(ctx context.Context, ev *domain.Evaluation) error {
	if err := validateEvaluation(ev); err != nil {
		return err
	}
	ev.UserEmail = strings.TrimSpace(ev.UserEmail)
	ev.CreatedAt = time.Now().UTC()
	res, err := s.colEvaluations.InsertOne(ctx, ev)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		ev.ID = oid
	}
	return nil
}

// ListEvaluationsByEmail returns every evaluation saved under the email,
// newest first. No pagination; an unknown email yields an empty slice.
func (s *Store) ListEvaluationsByEmail(ctx context.Context, email string) ([]domain.Evaluation, error) {
	cur, err := s.colEvaluations.Find(ctx,
		bson.M{"userEmail": email},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.Evaluation{}
	for cur.Next(ctx) {
		var ev domain.Evaluation
		if err := cur.Decode(&ev); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, cur.Err()
}
