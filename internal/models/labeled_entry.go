package models

import (
	"gorm.io/gorm"
)

// The five classification categories. Labels outside this set are rejected.
const (
	CategoryNormal        = "normal"
	CategoryHateSpeech    = "hate_speech"
	CategoryOffensive     = "offensive"
	CategoryReligiousHate = "religious_hate"
	CategoryPoliticalHate = "political_hate"
)

// Categories lists all valid label categories in display order.
var Categories = []string{
	CategoryNormal,
	CategoryHateSpeech,
	CategoryOffensive,
	CategoryReligiousHate,
	CategoryPoliticalHate,
}

// IsValidCategory reports whether label is one of the five categories.
func IsValidCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}

// LabeledEntry is one (text, label) pair of training data. Append-only;
// removed only via the bulk clear or an explicit per-row delete.
type LabeledEntry struct {
	gorm.Model
	Text  string `json:"text" gorm:"type:text;not null"`
	Label string `json:"label" gorm:"size:100;not null;index"`
}

// TableName returns the table name for the LabeledEntry model
func (LabeledEntry) TableName() string {
	return "training_data"
}
