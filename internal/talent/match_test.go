package talent_test

import (
	"testing"

	"github.com/hireloop/matchd/internal/talent"
)

func TestParseMatchStatus(t *testing.T) {
	valid := []string{"matched", "interviewing", "offered", "hired", "rejected", "withdrawn"}
	for _, s := range valid {
		got, err := talent.ParseMatchStatus(s)
		if err != nil {
			t.Errorf("ParseMatchStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseMatchStatus(%q) = %q, want %q", s, got, s)
		}
	}

	if _, err := talent.ParseMatchStatus("archived"); err == nil {
		t.Error("ParseMatchStatus(\"archived\") expected error, got nil")
	}
	if _, err := talent.ParseMatchStatus(""); err == nil {
		t.Error("ParseMatchStatus(\"\") expected error, got nil")
	}
}

func TestMatchTransitionsForward(t *testing.T) {
	cases := []struct {
		from talent.MatchStatus
		to   talent.MatchStatus
	}{
		{talent.StatusMatched, talent.StatusInterviewing},
		{talent.StatusInterviewing, talent.StatusOffered},
		{talent.StatusOffered, talent.StatusHired},
	}
	for _, c := range cases {
		if !talent.IsMatchTransitionAllowed(c.from, c.to) {
			t.Errorf("IsMatchTransitionAllowed(%s -> %s) should be true", c.from, c.to)
		}
	}
}

func TestMatchTransitionsToTerminal(t *testing.T) {
	nonTerminals := []talent.MatchStatus{
		talent.StatusMatched,
		talent.StatusInterviewing,
		talent.StatusOffered,
	}
	for _, from := range nonTerminals {
		for _, to := range []talent.MatchStatus{talent.StatusRejected, talent.StatusWithdrawn} {
			if !talent.IsMatchTransitionAllowed(from, to) {
				t.Errorf("IsMatchTransitionAllowed(%s -> %s) should be true", from, to)
			}
		}
	}
}

func TestMatchTransitionsFromTerminal(t *testing.T) {
	terminals := []talent.MatchStatus{
		talent.StatusHired,
		talent.StatusRejected,
		talent.StatusWithdrawn,
	}
	for _, from := range terminals {
		for _, to := range []talent.MatchStatus{
			talent.StatusMatched,
			talent.StatusInterviewing,
			talent.StatusOffered,
			talent.StatusHired,
		} {
			if talent.IsMatchTransitionAllowed(from, to) {
				t.Errorf("IsMatchTransitionAllowed(%s -> %s) should be false", from, to)
			}
		}
	}
}

func TestMatchTransitionSkippingStages(t *testing.T) {
	if talent.IsMatchTransitionAllowed(talent.StatusMatched, talent.StatusOffered) {
		t.Error("matched -> offered should not skip interviewing")
	}
	if talent.IsMatchTransitionAllowed(talent.StatusMatched, talent.StatusHired) {
		t.Error("matched -> hired should not be allowed")
	}
}

func TestExperienceLevelRank(t *testing.T) {
	order := []talent.ExperienceLevel{
		talent.LevelEntry,
		talent.LevelMid,
		talent.LevelSenior,
		talent.LevelLead,
		talent.LevelExecutive,
	}
	for i, lvl := range order {
		if lvl.Rank() != i {
			t.Errorf("%s.Rank() = %d, want %d", lvl, lvl.Rank(), i)
		}
	}

	if talent.ExperienceLevel("principal").Rank() != -1 {
		t.Error("unknown level should rank -1")
	}
	if _, err := talent.ParseExperienceLevel("principal"); err == nil {
		t.Error("ParseExperienceLevel(\"principal\") expected error, got nil")
	}
}
