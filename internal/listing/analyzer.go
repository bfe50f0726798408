package listing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hagglebot/hagglebot/internal/llm"
)

const (
	maxAnalyzedImages   = 3
	textMaxTokens       = 1000
	imageMaxTokens      = 800
	analysisTemperature = 0.3
)

// Report is the merged result of the text and image branches. Immutable once
// produced; downstream consumers treat Description as an opaque blob.
type Report struct {
	ID           string    `json:"id"`
	SourceURL    string    `json:"url"`
	ContactPhone string    `json:"contactPhone,omitempty"`
	Description  string    `json:"description"`
	ImageCount   int       `json:"imageCount"`
	AnalyzedAt   time.Time `json:"analyzedAt"`
}

type Analyzer struct {
	fetcher    Fetcher
	provider   llm.Provider
	domain     string
	charBudget int
}

func NewAnalyzer(fetcher Fetcher, provider llm.Provider, domain string, charBudget int) *Analyzer {
	if charBudget <= 0 {
		charBudget = 8000
	}
	return &Analyzer{
		fetcher:    fetcher,
		provider:   provider,
		domain:     domain,
		charBudget: charBudget,
	}
}

// Analyze runs the full pipeline: fetch, extract images, summarize text,
// describe images, merge. Image-branch failure degrades the report instead of
// failing it; every other failure propagates.
func (a *Analyzer) Analyze(ctx context.Context, url string, contactPhone string) (*Report, error) {
	url = strings.TrimSpace(url)
	if url == "" || !strings.Contains(url, a.domain) {
		return nil, InvalidURLError{Domain: a.domain}
	}

	markup, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	// Image candidates come from the full markup; only the summarization
	// prompt sees the truncated version.
	imageURLs := ExtractImageURLs(markup, a.domain)

	summary, err := a.summarizeText(ctx, markup, contactPhone)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyCompletion) {
			return nil, ErrAnalysisEmpty
		}
		return nil, err
	}

	description := a.merge(ctx, summary, imageURLs)
	if strings.TrimSpace(description) == "" {
		return nil, ErrAnalysisEmpty
	}

	return &Report{
		ID:           uuid.New().String(),
		SourceURL:    url,
		ContactPhone: contactPhone,
		Description:  description,
		ImageCount:   len(imageURLs),
		AnalyzedAt:   time.Now().UTC(),
	}, nil
}

func (a *Analyzer) summarizeText(ctx context.Context, markup string, contactPhone string) (string, error) {
	content := markup
	if len(content) > a.charBudget {
		// Mid-tag truncation is an accepted tradeoff against token limits.
		content = content[:a.charBudget]
	}

	var prompt strings.Builder
	prompt.WriteString(textAnalysisPrompt)
	prompt.WriteString(content)
	if contactPhone != "" {
		prompt.WriteString("\n\nThe buyer's contact phone number is: ")
		prompt.WriteString(contactPhone)
	}

	return a.provider.Generate(ctx, llm.GenerateRequest{
		Messages: []llm.Message{
			{Role: "system", Content: analystSystemPrompt},
			{Role: "user", Content: prompt.String()},
		},
		MaxTokens:   textMaxTokens,
		Temperature: analysisTemperature,
	})
}

// merge appends the image section and the image-count footer. The footer is
// present regardless of whether image analysis succeeded, degraded, or was
// skipped for lack of candidates.
func (a *Analyzer) merge(ctx context.Context, summary string, imageURLs []string) string {
	if len(imageURLs) == 0 {
		return summary + "\n\n**Images Found:** No images detected in this listing"
	}

	candidates := imageURLs
	if len(candidates) > maxAnalyzedImages {
		candidates = candidates[:maxAnalyzedImages]
	}
	imageSummary, err := a.provider.DescribeImages(ctx, llm.ImageRequest{
		Prompt:      imageAnalysisPrompt,
		ImageURLs:   candidates,
		MaxTokens:   imageMaxTokens,
		Temperature: analysisTemperature,
	})
	if err != nil {
		log.Printf("listing: image analysis failed, degrading report: %v", err)
		return summary + fmt.Sprintf("\n\n**Images Found:** %d image(s) in the listing (image analysis unavailable)", len(imageURLs))
	}

	merged := summary + "\n\n**Image Analysis:**\n" + imageSummary
	merged += fmt.Sprintf("\n\n**Images Found:** %d image(s) in the listing", len(imageURLs))
	return merged
}
