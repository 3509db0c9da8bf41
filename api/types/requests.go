package types

// ParagraphRequest is the body of a paragraph submission
type ParagraphRequest struct {
	Text string `json:"text"`
}

// LabelRequest is the body of a label submission. SentenceID, when
// present, additionally marks that sentence consumed.
type LabelRequest struct {
	Text       string `json:"text"`
	Label      string `json:"label"`
	SentenceID *uint  `json:"sentence_id,omitempty"`
}

// PredictRequest is the body of a prediction request
type PredictRequest struct {
	Text string `json:"text"`
}

// LoginRequest is the body of an admin login
type LoginRequest struct {
	Code     string `json:"code"`
	Password string `json:"password"`
}
