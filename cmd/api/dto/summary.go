package dto

// SummarizeRequestDTO asks for an AI summary of one paper's abstract.
// Keyed by DOI so repeated requests for the same paper are deduplicated.
type SummarizeRequestDTO struct {
	DOI      string `json:"doi" binding:"required"`
	Abstract string `json:"abstract" binding:"required"`
}

// SummaryDTO is the transient summary state for one DOI.
type SummaryDTO struct {
	DOI     string   `json:"doi"`
	Status  string   `json:"status"` // not_requested | loading | ready | failed
	Bullets []string `json:"bullets,omitempty"`
	Text    string   `json:"text,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// JargonRequestDTO asks for plain-language explanations of the most complex
// terms in a piece of text.
type JargonRequestDTO struct {
	Text string `json:"text" binding:"required"`
}

type JargonDTO struct {
	Explanation string `json:"explanation"`
}
