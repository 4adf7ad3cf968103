package dto

import (
	"github.com/vichu/gaming-addiction-api/internal/models"
	"github.com/vichu/gaming-addiction-api/internal/services"
)

// SubmitRequest is one survey submission.
type SubmitRequest struct {
	Responses []services.SurveyResponse `json:"responses"`
}

// ChatRequest is one assistant chat turn.
type ChatRequest struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// AnswerDTO represents a candidate answer in API responses
type AnswerDTO struct {
	ID    uint64 `json:"id"`
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// QuestionDTO represents a question with its answers in API responses
type QuestionDTO struct {
	ID       uint64      `json:"id"`
	Question string      `json:"question"`
	Answers  []AnswerDTO `json:"answers"`
}

// ToQuestionDTO converts a question row to its API shape
func ToQuestionDTO(q models.Question) QuestionDTO {
	answers := make([]AnswerDTO, len(q.Answers))
	for i, a := range q.Answers {
		answers[i] = AnswerDTO{
			ID:    a.ID,
			Text:  a.Text,
			Score: a.Score,
		}
	}

	return QuestionDTO{
		ID:       q.ID,
		Question: q.Text,
		Answers:  answers,
	}
}

// ToQuestionDTOs converts a list of question rows
func ToQuestionDTOs(questions []models.Question) []QuestionDTO {
	dtos := make([]QuestionDTO, len(questions))
	for i, q := range questions {
		dtos[i] = ToQuestionDTO(q)
	}
	return dtos
}
