package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"portfolio/backend/internal/remote"
)

const chatCompletionsURL = "https://router.huggingface.co/v1/chat/completions"

var ErrEmptyResponse = errors.New("huggingface returned no choices")

// Client answers chat prompts with one HuggingFace-hosted model via the
// OpenAI-compatible chat completions endpoint. The provider chain holds one
// Client per model variant.
type Client struct {
	token   string
	model   string
	client  *http.Client
	baseURL string
}

func NewClient(token, model string) *Client {
	return &Client{
		token:  token,
		model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

func (c *Client) Name() string { return c.model }

func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	url := chatCompletionsURL
	if c.baseURL != "" {
		url = c.baseURL
	}

	reqBody := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"max_tokens":  500,
		"temperature": 0.5,
	}

	jsonBody, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", &remote.APIError{Service: "huggingface", StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return result.Choices[0].Message.Content, nil
}
