package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// maxPostingBytes caps how much of a pasted posting is sent to the model.
const maxPostingBytes = 20000

// ErrUnusableDraft means the model answered but not with a job object.
var ErrUnusableDraft = errors.New("model returned no usable job draft")

type LLMService struct {
	Client llms.Model
}

// NewLLMService connects to Gemini with the given key and model name.
func NewLLMService(ctx context.Context, apiKey, model string) (*LLMService, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is empty")
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &LLMService{Client: llm}, nil
}

const jobDraftPrompt = `
You are a job posting data extraction agent. Analyze the raw HTML/text of a job posting below and extract the listing fields.

### INSTRUCTIONS:
1. Ignore navigation menus, footers, "similar jobs" lists and advertisements.
2. Output a single JSON object only. Do not wrap it in markdown code blocks.
3. If a field is not stated in the posting, set it to null. Do not guess.

### OUTPUT SCHEMA:
{
    "title": "Job title, e.g. Senior Backend Engineer",
    "company": "Company name",
    "location": "City, or 'Remote'",
    "type": "One of: Full-time, Part-time, Contract, Internship",
    "salaryRange": "Lower salary bound in lakhs per annum, as a number",
    "salaryrange2": "Upper salary bound in lakhs per annum, as a number",
    "description": "Plain-text summary of responsibilities and requirements",
    "applicationDeadline": "YYYY-MM-DD",
    "isRemote": true
}

### RAW CONTENT:
%s
`

// ExtractJobDraft asks the model to read a job posting and returns the
// fields it found. Nothing is persisted.
func (s *LLMService) ExtractJobDraft(ctx context.Context, rawHTML string) (*dtos.JobDraft, error) {
	prompt := fmt.Sprintf(jobDraftPrompt, truncate(rawHTML, maxPostingBytes))
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt, llms.WithJSONMode())
	if err != nil {
		return nil, fmt.Errorf("generating job draft: %w", err)
	}
	return parseDraft(resp)
}

func parseDraft(resp string) (*dtos.JobDraft, error) {
	body := stripFences(resp)
	if !strings.HasPrefix(body, "{") {
		return nil, fmt.Errorf("%w: %q", ErrUnusableDraft, abbreviate(body))
	}
	var draft dtos.JobDraft
	if err := json.Unmarshal([]byte(body), &draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnusableDraft, err)
	}
	return &draft, nil
}

// stripFences removes a surrounding ```json ... ``` block if the model added one.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = ""
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func abbreviate(s string) string {
	return truncate(s, 80)
}
