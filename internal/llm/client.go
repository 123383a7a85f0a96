package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-2.0-flash"

	// Upper bound on a single generation call. No retries: a failed or
	// slow call surfaces directly to the caller.
	requestTimeout = 30 * time.Second
)

// Client wraps the Gemini SDK for the two generation calls the resume
// service makes.
type Client struct {
	gc    *genai.Client
	model string
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{gc: gc, model: defaultModel}, nil
}

// GenerateContent sends prompt to the model and returns the raw response
// text. Callers parse it with ParseQA or ReconcileAnswers.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.gc.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("invalid response from Gemini API")
	}
	return resp.Text(), nil
}
