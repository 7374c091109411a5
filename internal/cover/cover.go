package cover

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nightfable/nightfable/pkg/clients"
)

const fetchTimeout = 8 * time.Second

// Image is a ready-to-store cover picture.
type Image struct {
	Data        []byte
	ContentType string
	Extension   string
}

type Fetcher struct {
	client      clients.HTTPClientI
	unsplashURL string
	picsumURL   string
}

func New(client clients.HTTPClientI) *Fetcher {
	return &Fetcher{
		client:      client,
		unsplashURL: "https://source.unsplash.com",
		picsumURL:   "https://picsum.photos",
	}
}

// NewWithProviders overrides the provider base URLs, used in tests.
func NewWithProviders(client clients.HTTPClientI, unsplashURL, picsumURL string) *Fetcher {
	return &Fetcher{
		client:      client,
		unsplashURL: strings.TrimRight(unsplashURL, "/"),
		picsumURL:   strings.TrimRight(picsumURL, "/"),
	}
}

// KeywordsForTopic maps a story topic to a descriptive image search phrase.
func KeywordsForTopic(topic string) string {
	t := strings.ToLower(topic)
	switch {
	case strings.Contains(t, "space"):
		return "night sky, stars, moon, dreamy"
	case strings.Contains(t, "music"):
		return "music, lullaby, soft lights"
	case strings.Contains(t, "science"):
		return "soft laboratory, glowing jars"
	case strings.Contains(t, "invention"), strings.Contains(t, "technology"):
		return "cozy workshop, gears"
	case strings.Contains(t, "myth"):
		return "mythical forest, fireflies"
	case strings.Contains(t, "mind"):
		return "calm ocean, pastel gradient"
	case strings.Contains(t, "history"):
		return "old library, warm light"
	default:
		return "forest, fireflies, dreamy, moonlight"
	}
}

// Make returns a cover image for the topic. It tries two external providers
// and falls back to a locally rendered SVG placeholder, so it never fails.
func (f *Fetcher) Make(ctx context.Context, topic string) Image {
	kw := url.QueryEscape(KeywordsForTopic(topic))
	if img, ok := f.fetch(ctx, fmt.Sprintf("%s/1024x768/?%s", f.unsplashURL, kw)); ok {
		return img
	}

	seed := topic
	if seed == "" {
		seed = "nightfable"
	}
	if img, ok := f.fetch(ctx, fmt.Sprintf("%s/seed/%s/1024/768.jpg", f.picsumURL, url.QueryEscape(seed))); ok {
		return img
	}

	return Image{
		Data:        svgPlaceholder(topic),
		ContentType: "image/svg+xml",
		Extension:   "svg",
	}
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) (Image, bool) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	status, body, _, err := f.client.Get(ctx, rawURL, nil)
	if err != nil {
		zap.L().Warn("cover provider fetch failed", zap.String("url", rawURL), zap.Error(err))
		return Image{}, false
	}
	if status != http.StatusOK || len(body) == 0 {
		zap.L().Warn("cover provider returned no image", zap.String("url", rawURL), zap.Int("status", status))
		return Image{}, false
	}
	return Image{Data: body, ContentType: "image/jpeg", Extension: "jpg"}, true
}

func svgPlaceholder(topic string) []byte {
	safe := topic
	if safe == "" {
		safe = "Bedtime"
	}
	if runes := []rune(safe); len(runes) > 40 {
		safe = string(runes[:40])
	}
	svg := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="1024" height="768" xmlns="http://www.w3.org/2000/svg">
  <defs><linearGradient id="g" x1="0" y1="0" x2="1" y2="1">
    <stop offset="0%%" stop-color="#E9D5FF"/><stop offset="100%%" stop-color="#BFDBFE"/>
  </linearGradient></defs>
  <rect width="1024" height="768" fill="url(#g)"/>
  <text x="50%%" y="55%%" font-family="Poppins, Arial" font-size="48" text-anchor="middle" fill="#1f2937" opacity=".8">%s</text>
</svg>`, safe)
	return []byte(svg)
}
