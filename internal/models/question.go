package models

// Question is a survey question tagged with an age group.
// Question and answer rows are read-only content, populated out of band.
type Question struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	AgeGroup string `gorm:"type:varchar(50);index;not null" json:"age_group"`
	Text     string `gorm:"type:text;not null" json:"question"`

	// Relations
	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

type Answer struct {
	ID         uint64 `gorm:"primarykey" json:"id"`
	QuestionID uint64 `gorm:"not null;index" json:"question_id"`
	Text       string `gorm:"type:varchar(255);not null" json:"text"`
	Score      int    `gorm:"not null" json:"score"`
}
