// Package dealbreaker evaluates candidate-declared hard constraints against a
// job and company. The filter is advisory: it feeds manual review flows and
// is not consulted by the automatic scheduler.
package dealbreaker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hireloop/matchd/internal/talent"
)

// Violation describes one failed deal-breaker rule.
type Violation struct {
	Rule    talent.DealBreakerType
	Type    string
	Message string
}

// Result is the outcome of evaluating every rule a candidate owns.
// Passed is true iff Violations is empty.
type Result struct {
	Passed     bool
	Violations []Violation
}

// Check evaluates all deal-breaker rules independently. Every rule is
// examined even when an earlier one already failed, so the result carries
// the complete violation list. Unknown rule types are ignored. company may
// be nil; company-scoped rules are then skipped.
func Check(candidate *talent.CandidateProfile, job *talent.JobPosting, company *talent.CompanyProfile) Result {
	var violations []Violation

	for _, rule := range candidate.DealBreakers {
		switch rule.Type {
		case talent.DealBreakerMinSalary:
			if v, ok := checkMinSalary(rule, job); ok {
				violations = append(violations, v)
			}
		case talent.DealBreakerJobType:
			if v, ok := checkJobType(rule, job); ok {
				violations = append(violations, v)
			}
		case talent.DealBreakerLocation:
			if v, ok := checkLocation(rule, job); ok {
				violations = append(violations, v)
			}
		case talent.DealBreakerSkillRequired:
			if v, ok := checkSkillRequired(rule, job); ok {
				violations = append(violations, v)
			}
		case talent.DealBreakerCompanySize:
			if v, ok := checkCompanySize(rule, company); ok {
				violations = append(violations, v)
			}
		}
	}

	return Result{
		Passed:     len(violations) == 0,
		Violations: violations,
	}
}

func checkMinSalary(rule talent.DealBreakerRule, job *talent.JobPosting) (Violation, bool) {
	want, err := strconv.Atoi(strings.TrimSpace(rule.Value))
	if err != nil {
		return Violation{}, false
	}
	if job.SalaryMax <= 0 || job.SalaryMax >= want {
		return Violation{}, false
	}
	return Violation{
		Rule:    rule.Type,
		Type:    "salary",
		Message: fmt.Sprintf("maximum salary %d is below the required minimum %d", job.SalaryMax, want),
	}, true
}

func checkJobType(rule talent.DealBreakerRule, job *talent.JobPosting) (Violation, bool) {
	if job.JobType == "" || strings.EqualFold(string(job.JobType), strings.TrimSpace(rule.Value)) {
		return Violation{}, false
	}
	return Violation{
		Rule:    rule.Type,
		Type:    "job_type",
		Message: fmt.Sprintf("job type %s does not match required %s", job.JobType, rule.Value),
	}, true
}

func checkLocation(rule talent.DealBreakerRule, job *talent.JobPosting) (Violation, bool) {
	if job.Location == "" || job.JobType == talent.JobTypeRemote {
		return Violation{}, false
	}
	if matchesLoosely(job.Location, rule.Value) {
		return Violation{}, false
	}
	return Violation{
		Rule:    rule.Type,
		Type:    "location",
		Message: fmt.Sprintf("job location %q does not match required %q", job.Location, rule.Value),
	}, true
}

func checkSkillRequired(rule talent.DealBreakerRule, job *talent.JobPosting) (Violation, bool) {
	for _, skill := range job.RequiredSkills {
		if matchesLoosely(skill, rule.Value) {
			return Violation{}, false
		}
	}
	return Violation{
		Rule:    rule.Type,
		Type:    "skills",
		Message: fmt.Sprintf("job does not involve required skill %q", rule.Value),
	}, true
}

func checkCompanySize(rule talent.DealBreakerRule, company *talent.CompanyProfile) (Violation, bool) {
	if company == nil || company.Size == "" {
		return Violation{}, false
	}
	if strings.EqualFold(string(company.Size), strings.TrimSpace(rule.Value)) {
		return Violation{}, false
	}
	return Violation{
		Rule:    rule.Type,
		Type:    "company_size",
		Message: fmt.Sprintf("company size %s does not match required %s", company.Size, rule.Value),
	}, true
}

func matchesLoosely(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
