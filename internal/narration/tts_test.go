package narration

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoicesFor(t *testing.T) {
	tests := []struct {
		choice   string
		primary  string
		fallback string
	}{
		{"Male", "en-GB-Neural2-D", "en-US-Neural2-D"},
		{"male", "en-GB-Neural2-D", "en-US-Neural2-D"},
		{"Female", "en-GB-Neural2-C", "en-US-Neural2-F"},
		{"", "en-GB-Neural2-C", "en-US-Neural2-F"},
	}

	for _, tt := range tests {
		t.Run("choice "+tt.choice, func(t *testing.T) {
			primary, fallback := VoicesFor(tt.choice)
			assert.Equal(t, tt.primary, primary.Name)
			assert.Equal(t, tt.fallback, fallback.Name)
		})
	}
}

func TestClient_Synthesize(t *testing.T) {
	ctx := context.Background()
	audio := []byte("mp3 bytes")

	t.Run("Primary voice used", func(t *testing.T) {
		var voices []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req synthesizeRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			voices = append(voices, req.Voice.Name)
			assert.Equal(t, "goodnight moon", req.Input.Text)
			assert.Equal(t, "MP3", req.AudioConfig.AudioEncoding)
			json.NewEncoder(w).Encode(synthesizeResponse{
				AudioContent: base64.StdEncoding.EncodeToString(audio),
			})
		}))
		defer server.Close()

		client := New(server.URL, "test-key")
		got, err := client.Synthesize(ctx, "goodnight moon", "Female")
		assert.NoError(t, err)
		assert.Equal(t, audio, got)
		assert.Equal(t, []string{"en-GB-Neural2-C"}, voices)
	})

	t.Run("Fallback voice after primary failure", func(t *testing.T) {
		var voices []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req synthesizeRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			voices = append(voices, req.Voice.Name)
			if req.Voice.Name == "en-GB-Neural2-D" {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			json.NewEncoder(w).Encode(synthesizeResponse{
				AudioContent: base64.StdEncoding.EncodeToString(audio),
			})
		}))
		defer server.Close()

		client := New(server.URL, "test-key")
		got, err := client.Synthesize(ctx, "goodnight moon", "Male")
		assert.NoError(t, err)
		assert.Equal(t, audio, got)
		assert.Equal(t, []string{"en-GB-Neural2-D", "en-US-Neural2-D"}, voices)
	})

	t.Run("Both voices fail", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := New(server.URL, "test-key")
		_, err := client.Synthesize(ctx, "goodnight moon", "Female")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "both voices")
	})

	t.Run("Empty audio content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(synthesizeResponse{})
		}))
		defer server.Close()

		client := New(server.URL, "test-key")
		_, err := client.Synthesize(ctx, "goodnight moon", "Female")
		assert.ErrorIs(t, err, ErrNoAudio)
	})
}
