package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"snakecoach/internal/core"
	"snakecoach/internal/game"
)

// Client is the AI gateway. It is stateless across calls: each intent
// builds a payload, performs one round trip through the transport and
// routes the raw body through the extractor. Concurrency policy lives in
// the coordinator, not here.
type Client struct {
	transport Transport
	model     string
	logger    *log.Logger
}

// NewClient creates a gateway using the given transport and model name.
// A nil logger disables logging.
func NewClient(transport Transport, model string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		transport: transport,
		model:     model,
		logger:    logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// complete performs one prompt round trip and returns the raw body.
func (c *Client) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.9,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("ai: marshal request: %w", err)
	}
	body, err := c.transport.RoundTrip(ctx, payload)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Welcome asks for a one-line greeting. Never fails: transport trouble
// degrades to a fixed placeholder sentence.
func (c *Client) Welcome(ctx context.Context, mode core.Mode) string {
	raw, err := c.complete(ctx, welcomePrompt(mode), 60)
	if err != nil {
		c.logger.Warn("welcome request failed", "error", err)
		return fallbackWelcome
	}
	return ExtractSentence(raw)
}

// Encourage asks for a one-line cheer after the snake eats. Never fails.
func (c *Client) Encourage(ctx context.Context, score, survivalSecs int, head core.Position) string {
	raw, err := c.complete(ctx, encouragePrompt(score, survivalSecs, head), 60)
	if err != nil {
		c.logger.Warn("encourage request failed", "error", err)
		return fallbackEncourage
	}
	return ExtractSentence(raw)
}

// SuggestPlacement asks where to put the next food item. ok is false on
// any transport or extraction failure; the coordinator then places
// locally. The returned position is a suggestion only and still needs
// validation against the live board.
func (c *Client) SuggestPlacement(ctx context.Context, body []core.Position, width, height int) (core.Position, bool) {
	raw, err := c.complete(ctx, placementPrompt(body, width, height), 30)
	if err != nil {
		c.logger.Warn("placement request failed", "error", err)
		return core.Position{}, false
	}
	x, y, ok := ExtractCoordinate(raw)
	if !ok {
		c.logger.Warn("placement reply had no coordinate", "reply", truncateRunes(sanitize(raw), 120))
		return core.Position{}, false
	}
	return core.Position{X: x, Y: y}, true
}

// Summarize asks for the end-of-session recap. Unlike the other intents
// the failure is surfaced to the caller, which shows it to the player in
// place of the coach text.
func (c *Client) Summarize(ctx context.Context, rec game.Record) (string, error) {
	raw, err := c.complete(ctx, summaryPrompt(rec), 400)
	if err != nil {
		c.logger.Warn("summary request failed", "error", err)
		return "", err
	}
	text := strings.TrimSpace(ExtractText(raw))
	if text == "" {
		return "", fmt.Errorf("ai: empty summary reply")
	}
	return text, nil
}
