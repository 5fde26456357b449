package talent_test

import (
	"testing"

	"github.com/hireloop/matchd/internal/talent"
)

func TestParseJobType(t *testing.T) {
	valid := []string{"remote", "hybrid", "onsite", "contract"}
	for _, s := range valid {
		got, err := talent.ParseJobType(s)
		if err != nil {
			t.Errorf("ParseJobType(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseJobType(%q) = %q, want %q", s, got, s)
		}
	}

	if _, err := talent.ParseJobType("freelance"); err == nil {
		t.Error("ParseJobType(\"freelance\") expected error, got nil")
	}
	if _, err := talent.ParseJobType(""); err == nil {
		t.Error("ParseJobType(\"\") expected error, got nil")
	}
}

func TestParseCompanySize(t *testing.T) {
	valid := []string{"startup", "small", "medium", "large", "enterprise"}
	for _, s := range valid {
		got, err := talent.ParseCompanySize(s)
		if err != nil {
			t.Errorf("ParseCompanySize(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseCompanySize(%q) = %q, want %q", s, got, s)
		}
	}

	if _, err := talent.ParseCompanySize("galactic"); err == nil {
		t.Error("ParseCompanySize(\"galactic\") expected error, got nil")
	}
}
