package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/hireloop/matchd/internal/talent"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string {
	return "stub-model"
}

var (
	testCandidate = &talent.CandidateProfile{Name: "Ada Lovelace", Skills: []string{"Go"}}
	testJob       = &talent.JobPosting{ID: "j1", Title: "Backend Engineer", RequiredSkills: []string{"Go"}}
	testSlots     = []talent.TimeSlot{{Date: "2026-09-08", Time: "09:00", Timezone: "UTC"}}
)

func TestComposeUsesGeneratorOutput(t *testing.T) {
	stub := &stubGenerator{response: "Hi Ada! Let's talk about the Backend Engineer role."}
	composer := NewComposer(stub, zap.NewNop(), 0)

	got, err := composer.Compose(context.Background(), testCandidate, testJob, testSlots)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != stub.response {
		t.Fatalf("unexpected message: %q", got)
	}

	if stub.lastPrompt == "" {
		t.Fatal("expected prompt to be sent")
	}
	if !strings.Contains(stub.lastPrompt, "Backend Engineer") {
		t.Error("prompt should carry the job title")
	}
	if !strings.Contains(stub.lastPrompt, "2026-09-08 09:00 (UTC)") {
		t.Error("prompt should carry the proposed slots")
	}
}

func TestComposeStripsCodeFence(t *testing.T) {
	stub := &stubGenerator{response: "```text\nHi Ada!\n```"}
	composer := NewComposer(stub, zap.NewNop(), 0)

	got, err := composer.Compose(context.Background(), testCandidate, testJob, testSlots)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hi Ada!" {
		t.Fatalf("fence not stripped: %q", got)
	}
}

func TestComposeFallsBackOnGeneratorError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	composer := NewComposer(stub, zap.NewNop(), 0)

	got, err := composer.Compose(context.Background(), testCandidate, testJob, testSlots)
	if err != nil {
		t.Fatalf("fallback must not propagate the provider error, got %v", err)
	}
	if !strings.Contains(got, "Backend Engineer") {
		t.Fatalf("expected template message, got %q", got)
	}
	if !strings.Contains(got, "2026-09-08 at 09:00") {
		t.Fatalf("template message should list slots, got %q", got)
	}
}

func TestComposeFallsBackOnEmptyResponse(t *testing.T) {
	stub := &stubGenerator{response: "``````"}
	composer := NewComposer(stub, zap.NewNop(), 0)

	got, err := composer.Compose(context.Background(), testCandidate, testJob, testSlots)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Hi Ada Lovelace!") {
		t.Fatalf("expected template message, got %q", got)
	}
}
