package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio/backend/internal/remote"
	"portfolio/backend/internal/roster"
)

const graphqlAPI = "https://api.github.com/graphql"

// Profile is the portfolio owner's GitHub user record.
type Profile struct {
	Name  string `json:"name"`
	Login string `json:"login"`
	Bio   string `json:"bio"`
}

// Repo is one fetched repository, keyed in Result.Repos by the roster
// position that requested it.
type Repo struct {
	Name        string
	Description string
	URL         string
	Readme      string
}

type Result struct {
	Profile Profile
	Repos   map[string]Repo
}

type Client struct {
	token   string
	client  *http.Client
	baseURL string
}

func NewClient(token string) *Client {
	return &Client{
		token:  token,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// BuildQuery assembles the single batched GraphQL document: one user lookup
// plus one aliased repository lookup per roster entry. The alias is the
// entry's position since GraphQL requires unique names for repeated fields.
func BuildQuery(username string, entries []roster.Entry) string {
	var sb strings.Builder

	sb.WriteString("query {\n")
	fmt.Fprintf(&sb, "  user(login: %q) { bio name login }\n", username)

	for _, e := range entries {
		fmt.Fprintf(&sb, "  %s: repository(owner: %q, name: %q) {\n", e.Position, username, e.RepoName)
		sb.WriteString("    name\n    description\n    url\n")
		sb.WriteString("    object(expression: \"main:README.md\") { ... on Blob { text } }\n")
		sb.WriteString("  }\n")
	}

	sb.WriteString("}")
	return sb.String()
}

// FetchPortfolio issues the batched query and decodes the result. A roster
// entry whose repository lookup came back null is skipped rather than
// aborting the whole fetch.
func (c *Client) FetchPortfolio(ctx context.Context, username string, entries []roster.Entry) (*Result, error) {
	url := graphqlAPI
	if c.baseURL != "" {
		url = c.baseURL
	}

	body, err := json.Marshal(map[string]string{"query": BuildQuery(username, entries)})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &remote.APIError{Service: "github", StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var payload struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode github response: %w", err)
	}

	result := &Result{Repos: make(map[string]Repo, len(entries))}

	if rawUser, ok := payload.Data["user"]; ok {
		if err := json.Unmarshal(rawUser, &result.Profile); err != nil {
			return nil, fmt.Errorf("decode user profile: %w", err)
		}
	}

	for _, e := range entries {
		raw, ok := payload.Data[e.Position]
		if !ok || string(raw) == "null" {
			slog.WarnContext(ctx, "repository slot missing from response", "position", e.Position, "repo", e.RepoName)
			continue
		}

		var slot struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			URL         string `json:"url"`
			Object      *struct {
				Text string `json:"text"`
			} `json:"object"`
		}
		if err := json.Unmarshal(raw, &slot); err != nil {
			return nil, fmt.Errorf("decode repository %s: %w", e.RepoName, err)
		}

		repo := Repo{Name: slot.Name, Description: slot.Description, URL: slot.URL}
		if slot.Object != nil {
			repo.Readme = slot.Object.Text
		}
		result.Repos[e.Position] = repo
	}

	return result, nil
}
