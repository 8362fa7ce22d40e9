package model

import "time"

type Question struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Question   string    `gorm:"column:question;type:text;not null" json:"question"`
	Answer     string    `gorm:"column:answer;type:text;not null" json:"answer"`
	Category   int       `gorm:"column:category;index" json:"category"` // Category.ID, not enforced
	Difficulty int       `gorm:"column:difficulty" json:"difficulty"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
