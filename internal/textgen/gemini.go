package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultModel = "gemini-1.5-flash"

var ErrEmptyResult = errors.New("model returned empty text")

// Prompt carries the user's request for one story.
type Prompt struct {
	Title     string
	Direction string
	Topic     string
	LengthMin int
	Music     string
	Voice     string
}

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

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

// Generate asks the model for story prose. An empty completion is an error:
// the caller must not persist a blank story.
func (c *Client) Generate(ctx context.Context, p Prompt) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: BuildPrompt(p)}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		zap.L().Error("text generation request failed", zap.Error(err))
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Error("text generation returned bad status", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("text generation: unexpected status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("text generation: decode response: %w", err)
	}

	var b strings.Builder
	for _, cand := range out.Candidates {
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
		break
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrEmptyResult
	}
	return text, nil
}

// BuildPrompt renders the bedtime-story instruction template.
func BuildPrompt(p Prompt) string {
	title := p.Title
	if title == "" {
		title = "Untitled Bedtime Story"
	}
	topic := p.Topic
	if topic == "" {
		topic = "Nature"
	}
	length := p.LengthMin
	if length <= 0 {
		length = 5
	}
	music := p.Music
	if music == "" {
		music = "Ambient"
	}
	voice := p.Voice
	if voice == "" {
		voice = "Female"
	}

	return strings.TrimSpace(fmt.Sprintf(`
You are a bedtime-story author. Write a calming, imaginative, G-rated story.

Title: %s
Topic: %s
Desired length: ~%d minutes of narration.
Tone: Soothing, gentle, and cozy for bedtime.
Optional background music: %s (do NOT describe the music)
Voice: %s (used for TTS; do not mention voice in the story)

Additional direction from user (optional):
%s

Output:
- A single continuous narrative (no chapters)
- ~%d minutes when read calmly
- No violence, no distressing themes
`, title, topic, length, music, voice, strings.TrimSpace(p.Direction), length))
}
