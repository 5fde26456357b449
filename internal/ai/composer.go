// Package ai defines the offer-message composer abstraction. The language
// model is strictly a collaborator: the coordinator works identically with
// the deterministic template composer when no provider is configured or a
// provider call fails.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/hireloop/matchd/internal/talent"
)

// Composer produces the message posted to a match's communication channel
// when an interview offer is made.
type Composer interface {
	Compose(ctx context.Context, candidate *talent.CandidateProfile, job *talent.JobPosting, slots []talent.TimeSlot) (string, error)
}

// TemplateComposer renders a fixed offer message. It never fails and serves
// as the fallback for provider-backed composers.
type TemplateComposer struct{}

func (TemplateComposer) Compose(_ context.Context, candidate *talent.CandidateProfile, job *talent.JobPosting, slots []talent.TimeSlot) (string, error) {
	var b strings.Builder

	name := strings.TrimSpace(candidate.Name)
	if name == "" {
		name = "there"
	}

	fmt.Fprintf(&b, "Hi %s! Based on your strong match for the %s position, we'd like to invite you to an interview.", name, job.Title)
	if len(slots) > 0 {
		b.WriteString(" Proposed times:")
		for _, slot := range slots {
			fmt.Fprintf(&b, "\n- %s at %s (%s)", slot.Date, slot.Time, slot.Timezone)
		}
		b.WriteString("\nPlease pick whichever works best for you.")
	}

	return b.String(), nil
}
