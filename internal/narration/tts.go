package narration

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

var ErrNoAudio = errors.New("synthesis returned no audio content")

// Voice is one concrete text-to-speech voice configuration.
type Voice struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name"`
	SSMLGender   string `json:"ssmlGender"`
}

// VoicesFor maps the user's voice choice to a primary configuration and the
// single more widely available fallback tried when the primary fails.
func VoicesFor(choice string) (primary, fallback Voice) {
	if strings.HasPrefix(strings.ToLower(choice), "m") {
		primary = Voice{LanguageCode: "en-GB", Name: "en-GB-Neural2-D", SSMLGender: "MALE"}
		fallback = Voice{LanguageCode: "en-US", Name: "en-US-Neural2-D", SSMLGender: "MALE"}
		return
	}
	primary = Voice{LanguageCode: "en-GB", Name: "en-GB-Neural2-C", SSMLGender: "FEMALE"}
	fallback = Voice{LanguageCode: "en-US", Name: "en-US-Neural2-F", SSMLGender: "FEMALE"}
	return
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type synthesizeRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice       Voice `json:"voice"`
	AudioConfig struct {
		AudioEncoding string  `json:"audioEncoding"`
		SpeakingRate  float64 `json:"speakingRate"`
	} `json:"audioConfig"`
}

type synthesizeResponse struct {
	AudioContent string `json:"audioContent"`
}

// Synthesize narrates text as MP3 with the requested voice. On any primary
// failure it attempts the fallback configuration exactly once.
func (c *Client) Synthesize(ctx context.Context, text, voiceChoice string) ([]byte, error) {
	primary, fallback := VoicesFor(voiceChoice)

	audio, err := c.synth(ctx, text, primary)
	if err == nil {
		return audio, nil
	}
	zap.L().Warn("primary voice synthesis failed, trying fallback",
		zap.String("voice", primary.Name), zap.Error(err))

	audio, fbErr := c.synth(ctx, text, fallback)
	if fbErr != nil {
		return nil, fmt.Errorf("narration failed for both voices: %w", errors.Join(err, fbErr))
	}
	return audio, nil
}

func (c *Client) synth(ctx context.Context, text string, voice Voice) ([]byte, error) {
	var reqBody synthesizeRequest
	reqBody.Input.Text = text
	reqBody.Voice = voice
	reqBody.AudioConfig.AudioEncoding = "MP3"
	reqBody.AudioConfig.SpeakingRate = 1.0

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/text:synthesize?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("synthesis: unexpected status %d", resp.StatusCode)
	}

	var out synthesizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("synthesis: decode response: %w", err)
	}
	if out.AudioContent == "" {
		return nil, ErrNoAudio
	}
	audio, err := base64.StdEncoding.DecodeString(out.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("synthesis: decode audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, ErrNoAudio
	}
	return audio, nil
}
