package dto

// GeminiAPIRequest is the request body for the Gemini generateContent API.
type GeminiAPIRequest struct {
	Contents []Content `json:"contents"`
}

// Content holds the parts of a Gemini prompt or response candidate.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is a single text fragment of a Gemini content block.
type Part struct {
	Text string `json:"text"`
}

// GeminiAPIResponse is the response body from the Gemini generateContent API.
type GeminiAPIResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is a single generation candidate returned by Gemini.
type Candidate struct {
	Content Content `json:"content"`
}
