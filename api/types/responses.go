package types

import "time"

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// IngestResponse reports what a paragraph submission created
type IngestResponse struct {
	ParagraphID   uint `json:"paragraph_id"`
	SentenceCount int  `json:"sentence_count"`
	WordCount     int  `json:"word_count"`
	CharCount     int  `json:"char_count"`
}

// NextSentenceResponse carries the next sentence to label, or
// available=false when the pipeline is empty (a legitimate state, not an
// error).
type NextSentenceResponse struct {
	Available      bool   `json:"available"`
	Sentence       string `json:"sentence,omitempty"`
	SentenceID     uint   `json:"sentence_id,omitempty"`
	RemainingCount int64  `json:"remaining_count"`
}

// SuccessResponse for simple acknowledgements
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LabelResponse acknowledges a stored label
type LabelResponse struct {
	Success   bool      `json:"success"`
	Text      string    `json:"text"`
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
}

// LoginResponse carries an issued admin token
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}
