package repository

import (
	"github.com/vichu/gaming-addiction-api/internal/models"
	"gorm.io/gorm"
)

// GormQuestionRepository is a GORM implementation of QuestionRepository
type GormQuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &GormQuestionRepository{db: db}
}

// FindByAgeGroup lists questions for an age group with their answers preloaded
func (r *GormQuestionRepository) FindByAgeGroup(ageGroup string) ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.Preload("Answers").Where("age_group = ?", ageGroup).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
