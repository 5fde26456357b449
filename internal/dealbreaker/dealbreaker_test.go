package dealbreaker

import (
	"testing"

	"github.com/hireloop/matchd/internal/talent"
)

func TestCheckNoRulesPasses(t *testing.T) {
	result := Check(&talent.CandidateProfile{}, &talent.JobPosting{}, nil)
	if !result.Passed {
		t.Fatal("candidate without rules should pass")
	}
	if len(result.Violations) != 0 {
		t.Fatalf("expected no violations, got %+v", result.Violations)
	}
}

func TestCheckMinSalary(t *testing.T) {
	candidate := &talent.CandidateProfile{
		DealBreakers: []talent.DealBreakerRule{
			{Type: talent.DealBreakerMinSalary, Value: "100000"},
		},
	}

	result := Check(candidate, &talent.JobPosting{SalaryMax: 90000}, nil)
	if result.Passed {
		t.Fatal("expected a salary violation")
	}
	if len(result.Violations) != 1 || result.Violations[0].Type != "salary" {
		t.Fatalf("expected one violation of type salary, got %+v", result.Violations)
	}

	// An undeclared salary ceiling is not a violation.
	result = Check(candidate, &talent.JobPosting{}, nil)
	if !result.Passed {
		t.Fatalf("job without salary_max should pass, got %+v", result.Violations)
	}

	result = Check(candidate, &talent.JobPosting{SalaryMax: 120000}, nil)
	if !result.Passed {
		t.Fatalf("salary above minimum should pass, got %+v", result.Violations)
	}
}

func TestCheckJobType(t *testing.T) {
	candidate := &talent.CandidateProfile{
		DealBreakers: []talent.DealBreakerRule{
			{Type: talent.DealBreakerJobType, Value: "remote"},
		},
	}

	result := Check(candidate, &talent.JobPosting{JobType: talent.JobTypeOnsite}, nil)
	if result.Passed || result.Violations[0].Type != "job_type" {
		t.Fatalf("expected a job_type violation, got %+v", result.Violations)
	}

	result = Check(candidate, &talent.JobPosting{JobType: talent.JobTypeRemote}, nil)
	if !result.Passed {
		t.Fatalf("matching job type should pass, got %+v", result.Violations)
	}

	result = Check(candidate, &talent.JobPosting{}, nil)
	if !result.Passed {
		t.Fatalf("undeclared job type should pass, got %+v", result.Violations)
	}
}

func TestCheckLocation(t *testing.T) {
	candidate := &talent.CandidateProfile{
		DealBreakers: []talent.DealBreakerRule{
			{Type: talent.DealBreakerLocation, Value: "Berlin"},
		},
	}

	result := Check(candidate, &talent.JobPosting{Location: "Munich", JobType: talent.JobTypeOnsite}, nil)
	if result.Passed || result.Violations[0].Type != "location" {
		t.Fatalf("expected a location violation, got %+v", result.Violations)
	}

	// Remote jobs satisfy any location constraint.
	result = Check(candidate, &talent.JobPosting{Location: "Munich", JobType: talent.JobTypeRemote}, nil)
	if !result.Passed {
		t.Fatalf("remote job should pass the location rule, got %+v", result.Violations)
	}

	result = Check(candidate, &talent.JobPosting{Location: "Berlin, Germany"}, nil)
	if !result.Passed {
		t.Fatalf("substring-matching location should pass, got %+v", result.Violations)
	}
}

func TestCheckSkillRequired(t *testing.T) {
	candidate := &talent.CandidateProfile{
		DealBreakers: []talent.DealBreakerRule{
			{Type: talent.DealBreakerSkillRequired, Value: "Go"},
		},
	}

	result := Check(candidate, &talent.JobPosting{RequiredSkills: []string{"Python", "Django"}}, nil)
	if result.Passed || result.Violations[0].Type != "skills" {
		t.Fatalf("expected a skills violation, got %+v", result.Violations)
	}

	result = Check(candidate, &talent.JobPosting{RequiredSkills: []string{"Golang", "SQL"}}, nil)
	if !result.Passed {
		t.Fatalf("loose skill match should pass, got %+v", result.Violations)
	}
}

func TestCheckCompanySize(t *testing.T) {
	candidate := &talent.CandidateProfile{
		DealBreakers: []talent.DealBreakerRule{
			{Type: talent.DealBreakerCompanySize, Value: "startup"},
		},
	}

	result := Check(candidate, &talent.JobPosting{}, &talent.CompanyProfile{Size: talent.SizeEnterprise})
	if result.Passed || result.Violations[0].Type != "company_size" {
		t.Fatalf("expected a company_size violation, got %+v", result.Violations)
	}

	result = Check(candidate, &talent.JobPosting{}, &talent.CompanyProfile{Size: talent.SizeStartup})
	if !result.Passed {
		t.Fatalf("matching company size should pass, got %+v", result.Violations)
	}

	// Missing company data disables the rule.
	result = Check(candidate, &talent.JobPosting{}, nil)
	if !result.Passed {
		t.Fatalf("nil company should pass, got %+v", result.Violations)
	}
}

func TestCheckCollectsAllViolations(t *testing.T) {
	candidate := &talent.CandidateProfile{
		DealBreakers: []talent.DealBreakerRule{
			{Type: talent.DealBreakerMinSalary, Value: "100000"},
			{Type: talent.DealBreakerJobType, Value: "remote"},
			{Type: talent.DealBreakerLocation, Value: "Berlin"},
			{Type: "visa_sponsorship", Value: "required"}, // unknown type, ignored
		},
	}
	job := &talent.JobPosting{
		SalaryMax: 80000,
		JobType:   talent.JobTypeOnsite,
		Location:  "Paris",
	}

	result := Check(candidate, job, nil)
	if result.Passed {
		t.Fatal("expected violations")
	}
	if len(result.Violations) != 3 {
		t.Fatalf("expected all 3 violations collected independently, got %d: %+v", len(result.Violations), result.Violations)
	}
}

func TestCheckUnparsableSalaryRuleIgnored(t *testing.T) {
	candidate := &talent.CandidateProfile{
		DealBreakers: []talent.DealBreakerRule{
			{Type: talent.DealBreakerMinSalary, Value: "six figures"},
		},
	}

	result := Check(candidate, &talent.JobPosting{SalaryMax: 1}, nil)
	if !result.Passed {
		t.Fatalf("unparsable salary rule should not produce a violation, got %+v", result.Violations)
	}
}
