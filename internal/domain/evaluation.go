package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QAPair struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer"   json:"answer"`
}

// Evaluation is one completed mock-interview session. Records are written
// once and never updated; qa_pairs keeps interview order, duplicates and all.
type Evaluation struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"       json:"_id"`
	UserEmail          string             `bson:"userEmail"           json:"userEmail"`
	AverageScore       float64            `bson:"average_score"       json:"average_score"`
	InterviewDuration  float64            `bson:"interview_duration"  json:"interview_duration"`
	TotalQuestions     int                `bson:"total_questions"     json:"total_questions"`
	QAPairs            []QAPair           `bson:"qa_pairs"            json:"qa_pairs"`
	DetailedEvaluation string             `bson:"detailed_evaluation" json:"detailed_evaluation"`
	CreatedAt          time.Time          `bson:"createdAt"           json:"createdAt"`
}
