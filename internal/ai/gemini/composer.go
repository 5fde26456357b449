package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/hireloop/matchd/internal/ai"
	"github.com/hireloop/matchd/internal/logger"
	"github.com/hireloop/matchd/internal/talent"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Composer asks Gemini for a personalized interview-offer message. On any
// provider failure it falls back to the deterministic template: the
// coordinator must never lose an offer to an LLM hiccup.
type Composer struct {
	generator contentGenerator
	fallback  ai.TemplateComposer
	logger    *zap.Logger
	maxLogLen int
}

// NewComposer wraps a content generator into an ai.Composer.
func NewComposer(generator contentGenerator, log *zap.Logger, maxLogLength int) *Composer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	return &Composer{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

func (c *Composer) Compose(ctx context.Context, candidate *talent.CandidateProfile, job *talent.JobPosting, slots []talent.TimeSlot) (string, error) {
	prompt, err := buildPrompt(candidate, job, slots)
	if err != nil {
		return c.fallback.Compose(ctx, candidate, job, slots)
	}

	c.logger.Debug("gemini compose request",
		zap.String("model", c.generator.Model()),
		zap.String("job_id", job.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.Truncate(prompt, c.maxLogLen)),
	)

	raw, err := c.generator.GenerateContent(ctx, prompt)
	if err != nil {
		c.logger.Warn("gemini compose failed, using template message",
			zap.String("job_id", job.ID),
			zap.Error(err),
		)
		return c.fallback.Compose(ctx, candidate, job, slots)
	}

	message := cleanResponse(raw)
	if message == "" {
		return c.fallback.Compose(ctx, candidate, job, slots)
	}

	c.logger.Debug("gemini compose response",
		zap.String("job_id", job.ID),
		zap.Int("response_length", utf8.RuneCountInString(message)),
		zap.String("response_preview", logger.Truncate(message, c.maxLogLen)),
	)

	return message, nil
}

func buildPrompt(candidate *talent.CandidateProfile, job *talent.JobPosting, slots []talent.TimeSlot) (string, error) {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Candidate:\n{{CANDIDATE_JSON}}\n\nJob:\n{{JOB_JSON}}\n\nSlots:\n{{SLOTS_JSON}}\n\nMessage:"
	}

	candidatePayload := map[string]any{
		"name":   candidate.Name,
		"skills": candidate.Skills,
	}
	candidateJSON, err := json.MarshalIndent(candidatePayload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal candidate payload: %w", err)
	}

	jobPayload := map[string]any{
		"title":           job.Title,
		"required_skills": job.RequiredSkills,
		"job_type":        job.JobType,
		"location":        job.Location,
	}
	jobJSON, err := json.MarshalIndent(jobPayload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal job payload: %w", err)
	}

	slotLines := make([]string, 0, len(slots))
	for _, slot := range slots {
		slotLines = append(slotLines, fmt.Sprintf("%s %s (%s)", slot.Date, slot.Time, slot.Timezone))
	}
	slotsJSON, err := json.MarshalIndent(slotLines, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal slots payload: %w", err)
	}

	prompt := strings.ReplaceAll(template, "{{CANDIDATE_JSON}}", string(candidateJSON))
	prompt = strings.ReplaceAll(prompt, "{{JOB_JSON}}", string(jobJSON))
	prompt = strings.ReplaceAll(prompt, "{{SLOTS_JSON}}", string(slotsJSON))
	return prompt, nil
}

func cleanResponse(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```text")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
		if idx := strings.LastIndex(cleaned, "```"); idx != -1 {
			cleaned = cleaned[:idx]
		}
	}
	return strings.TrimSpace(cleaned)
}
