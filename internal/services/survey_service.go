package services

import (
	"errors"
	"fmt"

	"github.com/vichu/gaming-addiction-api/internal/models"
	"github.com/vichu/gaming-addiction-api/internal/repository"
)

var (
	ErrNoResponses = errors.New("no responses provided")
	ErrNoQuestions = errors.New("no questions found for this age group")
)

// AddictionLevel is the qualitative band a survey total maps to.
type AddictionLevel string

const (
	LevelLow      AddictionLevel = "Low Addiction"
	LevelModerate AddictionLevel = "Moderate Addiction"
	LevelHigh     AddictionLevel = "High Addiction"
	LevelSevere   AddictionLevel = "Severe Addiction"
)

// scoreBands maps inclusive upper bounds to levels, checked in ascending
// order. Totals above the last bound are severe; there is no lower bound,
// negative totals stay in the low band.
var scoreBands = []struct {
	Max   int
	Level AddictionLevel
}{
	{15, LevelLow},
	{30, LevelModerate},
	{45, LevelHigh},
}

// SurveyResponse is one answered question. Only the score participates in
// scoring; the question reference is kept for the request trace.
type SurveyResponse struct {
	QuestionID string `json:"question_id"`
	Score      int    `json:"score"`
}

// ScoreResult is the outcome of scoring one submission.
type ScoreResult struct {
	TotalScore int            `json:"total_score"`
	Level      AddictionLevel `json:"level"`
}

// SurveyService handles question lookup and survey scoring.
type SurveyService struct {
	questionRepo repository.QuestionRepository
}

// NewSurveyService creates a new SurveyService.
func NewSurveyService(questionRepo repository.QuestionRepository) *SurveyService {
	return &SurveyService{
		questionRepo: questionRepo,
	}
}

// QuestionsForAgeGroup returns the questions tagged with the age group.
// An age group with zero questions is a not-found condition, not an empty list.
func (s *SurveyService) QuestionsForAgeGroup(ageGroup string) ([]models.Question, error) {
	questions, err := s.questionRepo.FindByAgeGroup(ageGroup)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}

// Score sums the response scores and classifies the total into a band.
// Scores are summed as-is; negative values are included, nothing is clamped.
func (s *SurveyService) Score(responses []SurveyResponse) (*ScoreResult, error) {
	if len(responses) == 0 {
		return nil, ErrNoResponses
	}

	total := 0
	for _, r := range responses {
		total += r.Score
	}

	return &ScoreResult{
		TotalScore: total,
		Level:      classify(total),
	}, nil
}

func classify(total int) AddictionLevel {
	for _, band := range scoreBands {
		if total <= band.Max {
			return band.Level
		}
	}
	return LevelSevere
}
