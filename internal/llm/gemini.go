package llm

import (
	"errors"
	"fmt"
	"strings"

	"TranscriptSummarizer_Backend/internal/models"

	"github.com/go-resty/resty/v2"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Instruction sent with every transcription. The remote model is asked to
// answer in the language of the input.
const summaryPrompt = "Summarize the following text in the same language as the input. " +
	"If the input is English, the summary MUST be in English. " +
	"Review always and ensure response it's in language of input:\n\n%s\n\nSummary:"

// ErrEmptySummary means the API answered but produced no usable text.
var ErrEmptySummary = errors.New("empty summary from generative language API")

// Summarizer produces a summary for a transcription. Satisfied by
// GeminiClient; handler tests substitute a stub.
type Summarizer interface {
	Summarize(text string) (models.SummaryResult, error)
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
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GeminiClient calls the generateContent endpoint of the generative language
// API. One request per summary: no retry, no circuit breaking, default
// transport timeout.
type GeminiClient struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		client: resty.New().SetBaseURL(geminiBaseURL),
		apiKey: apiKey,
		model:  model,
	}
}

// Summarize forwards text to the remote model and returns its reply paired
// with the original input. Upstream failures come back as errors carrying the
// API detail; callers decide what (not) to show the user.
func (g *GeminiClient) Summarize(text string) (models.SummaryResult, error) {
	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(summaryPrompt, text)}}}},
	}

	var reply generateResponse
	resp, err := g.client.R().
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetBody(body).
		SetResult(&reply).
		SetError(&reply).
		Post(fmt.Sprintf("/models/%s:generateContent", g.model))
	if err != nil {
		return models.SummaryResult{}, fmt.Errorf("call generative language API: %w", err)
	}
	if resp.IsError() {
		if reply.Error != nil {
			return models.SummaryResult{}, fmt.Errorf("generative language API: %s (code %d)",
				reply.Error.Message, reply.Error.Code)
		}
		return models.SummaryResult{}, fmt.Errorf("generative language API: status %s", resp.Status())
	}

	summary := firstCandidateText(reply)
	if summary == "" {
		return models.SummaryResult{}, ErrEmptySummary
	}
	return models.SummaryResult{OriginalText: text, Summary: summary}, nil
}

func firstCandidateText(reply generateResponse) string {
	if len(reply.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range reply.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String())
}
