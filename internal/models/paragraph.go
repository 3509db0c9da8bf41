package models

import (
	"gorm.io/gorm"
)

// Paragraph is the unit of ingestion: one raw block of submitted text.
// In the relational backend a paragraph is immutable once inserted; its
// sentences are tracked individually.
type Paragraph struct {
	gorm.Model
	Content   string     `json:"content" gorm:"type:text;not null"`
	Sentences []Sentence `json:"sentences,omitempty" gorm:"foreignKey:ParagraphID"`
}

// TableName returns the table name for the Paragraph model
func (Paragraph) TableName() string {
	return "paragraphs"
}
