package generate

// GenerateInput is the request body for a generation call. TemplateID is
// optional; null and unknown ids both mean "no template".
type GenerateInput struct {
	UserInput  string  `json:"userInput"`
	TemplateID *string `json:"templateId"`
}

// ErrorResponse is the wire shape for generation failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Result  string `json:"result,omitempty"`
}
