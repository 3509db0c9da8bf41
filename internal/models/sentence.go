package models

import (
	"gorm.io/gorm"
)

// Sentence is a labelable fragment derived from exactly one Paragraph.
// Position preserves the left-to-right order within the source paragraph.
// IsUsed flips to true once the sentence has been labeled or skipped;
// fetching a sentence does not set it (see pipeline.Service).
type Sentence struct {
	gorm.Model
	ParagraphID uint   `json:"paragraph_id" gorm:"not null;index"`
	Content     string `json:"content" gorm:"type:text;not null"`
	Position    int    `json:"position" gorm:"not null"`
	IsUsed      bool   `json:"is_used" gorm:"default:false;index"`
}

// TableName returns the table name for the Sentence model
func (Sentence) TableName() string {
	return "sentences"
}
