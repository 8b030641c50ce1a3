// Package llm is a minimal client for OpenAI-compatible chat completion
// endpoints. One request per call, no retries; the HTTP client applies the
// only timeout since the completion call is the one long-running operation
// in the system.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"promptcraft-backend/config"
	"promptcraft-backend/internal/utils"
)

const requestTimeout = 60 * time.Second

// ChatClient is implemented by anything that can answer a chat request.
// The generation service depends on this rather than the concrete client.
type ChatClient interface {
	Chat(ctx context.Context, messages []Message) (*ChatResult, error)
}

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.OpenAIBaseURL, "/"),
		apiKey:     cfg.OpenAIAPIKey,
		model:      cfg.OpenAIModel,
		httpClient: utils.NewHTTPClient(requestTimeout),
	}
}

// Chat sends a chat completion request asking for a JSON object response.
func (c *Client) Chat(ctx context.Context, messages []Message) (*ChatResult, error) {
	reqBody := chatCompletionRequest{
		Model:          c.model,
		Messages:       messages,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("failed to decode chat response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if completion.Error != nil {
			return nil, fmt.Errorf("completion api error (%d): %s", resp.StatusCode, completion.Error.Message)
		}
		return nil, fmt.Errorf("completion api returned status %d", resp.StatusCode)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("completion response contained no choices")
	}

	model := completion.Model
	if model == "" {
		model = c.model
	}

	return &ChatResult{
		Content:          completion.Choices[0].Message.Content,
		Model:            model,
		PromptTokens:     completion.Usage.PromptTokens,
		CompletionTokens: completion.Usage.CompletionTokens,
		Latency:          time.Since(start),
	}, nil
}
