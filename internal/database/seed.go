package database

import (
	"fmt"
	"log"
	"sort"

	"github.com/vichu/gaming-addiction-api/internal/models"
	"gorm.io/gorm"
)

// likert is the shared answer scale for seeded questions.
var likert = []struct {
	Text  string
	Score int
}{
	{"Never", 0},
	{"Rarely", 1},
	{"Sometimes", 3},
	{"Often", 4},
	{"Always", 5},
}

var seedQuestions = map[string][]string{
	"15-20": {
		"How often do you play games instead of doing homework or studying?",
		"Do you stay up past midnight playing games on school nights?",
		"Have you skipped meals to keep playing a game?",
		"Do you feel restless or irritable when you cannot play?",
		"Do you hide how much time you spend gaming from your family?",
	},
	"21-30": {
		"How often does gaming cut into your work or studies?",
		"Do you cancel plans with friends to play games?",
		"Do you spend money on in-game purchases you later regret?",
		"Do you play longer than you intended to?",
		"Do you think about gaming while doing other activities?",
	},
	"31-50": {
		"How often does gaming interfere with family responsibilities?",
		"Do you lose sleep because of late-night gaming sessions?",
		"Do you use gaming to escape from daily stress?",
		"Have others complained about the time you spend gaming?",
		"Do you feel guilty after long gaming sessions?",
	},
}

// SeedQuestions inserts a development question bank for each age group.
// Production content is managed out of band; this only runs when the
// questions table is empty.
func SeedQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Question{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}
	if count > 0 {
		log.Println("Questions already present, skipping seed")
		return nil
	}

	// Insert in age-group order so seeded IDs are stable across runs.
	ageGroups := make([]string, 0, len(seedQuestions))
	for ageGroup := range seedQuestions {
		ageGroups = append(ageGroups, ageGroup)
	}
	sort.Strings(ageGroups)

	for _, ageGroup := range ageGroups {
		for _, text := range seedQuestions[ageGroup] {
			question := models.Question{
				AgeGroup: ageGroup,
				Text:     text,
			}
			for _, a := range likert {
				question.Answers = append(question.Answers, models.Answer{
					Text:  a.Text,
					Score: a.Score,
				})
			}
			if err := db.Create(&question).Error; err != nil {
				return fmt.Errorf("failed to seed question %q: %w", text, err)
			}
		}
	}

	log.Println("Seeded development question bank")
	return nil
}
