// Package caption drafts social captions through an external
// text-generation service. The client never fails past its boundary: every
// network, auth, quota, or parsing error is logged and converted into a
// fixed fallback string the views can show as-is.
package caption

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/agencyflow/agencyflow/internal/domain"
)

// Fallback is the literal string returned on any generation failure.
const Fallback = "Failed to generate caption. Please try again later."

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Config controls the Gemini client.
type Config struct {
	APIKey  string        // from process configuration, never user input
	Model   string        // e.g. "gemini-3-flash-preview"
	BaseURL string        // overridable for tests
	Timeout time.Duration // per-request; default 30s
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	cfg  Config
	http *http.Client
}

// New creates a caption client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// ─── Wire Types ─────────────────────────────────────────────────────────────

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// ─── Generation ─────────────────────────────────────────────────────────────

// Prompt builds the generation prompt for a topic, platform, and brand.
func Prompt(topic string, platform domain.Platform, brandName string) string {
	return fmt.Sprintf(
		"Act as a senior social media manager. Generate a high-converting, engaging caption for a %s post about %q for the brand %q. Include 3-5 relevant hashtags and emojis. Keep the tone professional but approachable.",
		platform, topic, brandName,
	)
}

// Generate produces a caption, or Fallback on any failure. It is read-only
// with respect to planner state.
func (c *Client) Generate(ctx context.Context, topic string, platform domain.Platform, brandName string) string {
	text, err := c.generate(ctx, Prompt(topic, platform, brandName))
	if err != nil {
		log.Printf("caption: generation failed: %v", err)
		return Fallback
	}
	return text
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("no API key configured")
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("service returned %s", resp.Status)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
