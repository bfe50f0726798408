package llm

import (
	"context"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateRequest is a plain text chat completion request.
type GenerateRequest struct {
	Messages    []Message
	MaxTokens   int
	Temperature float32
}

// ImageRequest asks a vision-capable model to describe a set of image URLs.
type ImageRequest struct {
	Prompt      string
	ImageURLs   []string
	MaxTokens   int
	Temperature float32
}

type Provider interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	DescribeImages(ctx context.Context, req ImageRequest) (string, error)
}

type Config struct {
	APIKey      string
	TextModel   string
	VisionModel string
	BaseURL     string
}

func NewProvider(cfg Config) Provider {
	return NewOpenAIProvider(cfg)
}
