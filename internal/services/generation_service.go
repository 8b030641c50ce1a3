package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"promptcraft-backend/internal/llm"
	"promptcraft-backend/internal/templates"
)

// ErrMissingInput is returned when the required user description is absent.
var ErrMissingInput = errors.New("missing required field: userInput")

// UnparseableResponseError reports completion content that failed to parse
// as JSON. The raw text is preserved for diagnosis.
type UnparseableResponseError struct {
	Raw string
	Err error
}

func (e *UnparseableResponseError) Error() string {
	return fmt.Sprintf("invalid response from completion api: %v", e.Err)
}

func (e *UnparseableResponseError) Unwrap() error { return e.Err }

// TemplateRef identifies the template applied at generation time.
type TemplateRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GenerationMeta records call metrics for the generation that produced a
// prompt.
type GenerationMeta struct {
	Model            string `json:"model"`
	LatencyMs        int    `json:"latency_ms"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
}

// GeneratedPrompt is the parsed result of one generation request.
type GeneratedPrompt struct {
	Title        string       `json:"title"`
	Role         string       `json:"role"`
	Goal         string       `json:"goal"`
	Format       string       `json:"format"`
	Context      string       `json:"context"`
	Constraints  string       `json:"constraints"`
	Style        string       `json:"style"`
	FullPrompt   string       `json:"full_prompt"`
	TemplateUsed *TemplateRef `json:"template_used,omitempty"`

	Meta GenerationMeta `json:"-"`
}

const systemPrompt = `You are an elite prompt engineer who specializes in creating perfectly structured prompts for AI systems.
Take the user's input and transform it into a peak-level structured prompt with the following components:

ROLE: Who the AI should act as - be specific about expertise level and domain specialization (e.g., "experienced web developer and educational content strategist" rather than just "web designer")

GOAL: What specific task needs to be accomplished - use precise action verbs and clear objectives that define exactly what output is expected

FORMAT: How the output should be structured - specify organization using phrases like "organized into sections such as X, Y, Z" rather than limiting with "including X, Y, Z" to encourage intelligent expansion

CONTEXT: Relevant background information - include detailed audience description (age ranges, skill levels), specific purpose, and any situational details that would help tailor the response

CONSTRAINTS: Rules, limitations, or filters to apply - be explicit about what to avoid (technical details, coding languages) and what to emphasize

STYLE: Tone, style, or perspective to use - provide clarity on communication approach AND specific formatting instructions (e.g., "Use bullet points or subheadings for clarity")

Return the response in JSON format with fields for each component, a title that summarizes the purpose of the prompt,
and a full_prompt field that combines all components into one complete prompt following this format:

You are acting as a [ROLE].
Your task is to [GOAL].
Your response must be formatted as [FORMAT].
Here is the context you need to consider: [CONTEXT].
Follow these specific rules or constraints: [CONSTRAINTS].
Answer in [STYLE].

Apply these optimization principles:
1. Use precise, specialized terminology for roles (e.g., "educational content strategist" not just "educator")
2. Structure formats to suggest ideal organization without limiting creativity (use "such as" instead of "including")
3. Include explicit formatting instructions in the style section (bullet points, numbered lists, subheadings)
4. Specify diverse audience characteristics when relevant (e.g., "students ranging from elementary to college levels")
5. Present constraints as a bulleted or numbered list to improve clarity
6. Ensure every component invites the AI to expand intelligently while remaining focused

Your goal is to create prompts that are role-specific, task-explicit, properly structured, appropriately constrained, and formatted for maximum readability and usefulness.`

// GenerationService turns an informal description into a structured prompt
// through one completion call. It performs no persistence.
type GenerationService struct {
	Client llm.ChatClient
}

func NewGenerationService(client llm.ChatClient) *GenerationService {
	return &GenerationService{Client: client}
}

// Generate issues exactly one completion request. An unknown templateID is
// treated as no template at all. Failures are terminal for the request; no
// retries are attempted.
func (s *GenerationService) Generate(ctx context.Context, userInput, templateID string) (*GeneratedPrompt, error) {
	if strings.TrimSpace(userInput) == "" {
		return nil, ErrMissingInput
	}

	var selected *templates.IndustryTemplate
	if templateID != "" {
		if t, ok := templates.ByID(templateID); ok {
			selected = &t
		}
	}

	messages := []llm.Message{
		{Role: "system", Content: buildSystemMessage(selected)},
		{Role: "user", Content: userInput},
	}

	result, err := s.Client.Chat(ctx, messages)
	if err != nil {
		return nil, err
	}

	var prompt GeneratedPrompt
	if err := json.Unmarshal([]byte(result.Content), &prompt); err != nil {
		return nil, &UnparseableResponseError{Raw: result.Content, Err: err}
	}

	if selected != nil {
		prompt.TemplateUsed = &TemplateRef{ID: selected.ID, Name: selected.Name}
	}

	prompt.Meta = GenerationMeta{
		Model:            result.Model,
		LatencyMs:        int(result.Latency.Milliseconds()),
		PromptTokens:     result.PromptTokens,
		CompletionTokens: result.CompletionTokens,
	}

	return &prompt, nil
}

func buildSystemMessage(selected *templates.IndustryTemplate) string {
	if selected == nil {
		return systemPrompt
	}

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nIMPORTANT: Use the following industry-specific template as a starting point, but adapt it based on the user's specific input:\n\n")
	fmt.Fprintf(&b, "INDUSTRY: %s\n", selected.Name)
	fmt.Fprintf(&b, "ROLE_TEMPLATE: %s\n", selected.Role)
	fmt.Fprintf(&b, "GOAL_TEMPLATE: %s\n", selected.Goal)
	fmt.Fprintf(&b, "FORMAT_TEMPLATE: %s\n", selected.Format)
	fmt.Fprintf(&b, "CONTEXT_TEMPLATE: %s\n", selected.Context)
	fmt.Fprintf(&b, "CONSTRAINTS_TEMPLATE: %s\n", selected.Constraints)
	fmt.Fprintf(&b, "STYLE_TEMPLATE: %s\n", selected.Style)
	fmt.Fprintf(&b, "\nThe user's input is related to %s, so use these templates as a starting point but modify them to specifically address what the user is asking for. Fill in any placeholder values like [type] or [specific area] with appropriate values based on the user's input.", strings.ToLower(selected.Name))
	return b.String()
}
