package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	reply  string
	err    error
	prompt string
}

func (m *fakeModel) GenerateContent(_ context.Context, msgs []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range msgs {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.prompt += text.Text
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.reply}}}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, opts ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, opts...)
}

func TestExtractJobDraft(t *testing.T) {
	cases := []struct {
		name  string
		reply string
	}{
		{"plain", `{"title":"Go Developer","company":"Acme","salaryRange":6,"salaryrange2":"12","isRemote":true}`},
		{"fenced", "```json\n{\"title\":\"Go Developer\",\"company\":\"Acme\",\"salaryRange\":6,\"salaryrange2\":\"12\",\"isRemote\":true}\n```"},
		{"bare fence", "```\n{\"title\":\"Go Developer\",\"company\":\"Acme\",\"salaryRange\":6,\"salaryrange2\":\"12\",\"isRemote\":true}```"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := &LLMService{Client: &fakeModel{reply: c.reply}}
			draft, err := svc.ExtractJobDraft(context.Background(), "<h1>Go Developer</h1>")
			if err != nil {
				t.Fatalf("ExtractJobDraft: %v", err)
			}
			if draft.Title == nil || *draft.Title != "Go Developer" || *draft.Company != "Acme" {
				t.Errorf("unexpected draft: %+v", draft)
			}
			if *draft.SalaryRange != "6" || *draft.SalaryRange2 != "12" {
				t.Errorf("salaries = %v / %v", *draft.SalaryRange, *draft.SalaryRange2)
			}
			if draft.IsRemote == nil || !*draft.IsRemote {
				t.Error("isRemote should be true")
			}
			if draft.Location != nil {
				t.Errorf("missing location should stay nil, got %q", *draft.Location)
			}
		})
	}
}

func TestExtractJobDraft_UnusableOutput(t *testing.T) {
	for _, reply := range []string{"Sorry, I can't help with that.", "{not json", "[1,2]"} {
		svc := &LLMService{Client: &fakeModel{reply: reply}}
		_, err := svc.ExtractJobDraft(context.Background(), "posting")
		if !errors.Is(err, ErrUnusableDraft) {
			t.Errorf("reply %q: got %v, want ErrUnusableDraft", reply, err)
		}
	}
}

func TestExtractJobDraft_ModelError(t *testing.T) {
	svc := &LLMService{Client: &fakeModel{err: errors.New("quota exceeded")}}
	_, err := svc.ExtractJobDraft(context.Background(), "posting")
	if err == nil || errors.Is(err, ErrUnusableDraft) {
		t.Fatalf("got %v, want a generation error", err)
	}
}

func TestExtractJobDraft_TruncatesPosting(t *testing.T) {
	model := &fakeModel{reply: `{}`}
	svc := &LLMService{Client: model}
	posting := strings.Repeat("a", maxPostingBytes) + "TAIL"

	if _, err := svc.ExtractJobDraft(context.Background(), posting); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(model.prompt, "TAIL") {
		t.Error("posting beyond the byte cap should not reach the model")
	}
}

func TestTruncateKeepsRunes(t *testing.T) {
	s := "ab₹" // ₹ is three bytes
	if got := truncate(s, 3); got != "ab" {
		t.Errorf("truncate = %q, want %q", got, "ab")
	}
	if got := truncate(s, 10); got != s {
		t.Errorf("truncate = %q, want unchanged", got)
	}
}
