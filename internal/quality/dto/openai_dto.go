package dto

// OpenAPIReq is the request body for the OpenAI chat completions API.
type OpenAPIReq struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

// Message is a single chat message in an OpenAI request or response.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAPIRes is the response body from the OpenAI chat completions API.
type OpenAPIRes struct {
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice is a single completion choice returned by OpenAI.
type Choice struct {
	Message Message `json:"message"`
}

// Usage reports token consumption for an OpenAI request.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
