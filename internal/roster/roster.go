package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrConfigNotFound = errors.New("roster config not found")

// Entry is one slot of the portfolio roster. Position doubles as the GraphQL
// alias for the repository lookup, so it must be unique within a config.
type Entry struct {
	Position    string `json:"position"`
	RepoName    string `json:"repo_name"`
	DisplayName string `json:"display_name"`
}

type Config struct {
	GithubUsername string  `json:"github_username"`
	Roster         []Entry `json:"roster"`
}

// DefaultPaths are the candidate locations tried in order, mirroring where
// the descriptor lives relative to the backend in the deployed layout.
func DefaultPaths() []string {
	return []string{
		"roster_config.json",
		filepath.Join("..", "roster-portfolio", "src", "roster_config.json"),
		filepath.Join("roster-portfolio", "src", "roster_config.json"),
	}
}

// Load reads the roster descriptor from the first readable candidate path.
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = DefaultPaths()
	}

	for _, path := range paths {
		data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- candidate paths come from application config
		if err != nil {
			continue
		}

		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse roster config %s: %w", path, err)
		}
		if cfg.GithubUsername == "" {
			return nil, fmt.Errorf("roster config %s: github_username is required", path)
		}
		return &cfg, nil
	}

	return nil, ErrConfigNotFound
}
