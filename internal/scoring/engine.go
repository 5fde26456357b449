// Package scoring computes compatibility scores between candidates and job
// postings. Score is a pure function: identical inputs always produce the
// same score and insight list, so it can be reused for both browsing
// directions and exercised directly in tests.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/hireloop/matchd/internal/talent"
)

const (
	baseScore = 50
	maxScore  = 99

	maxSkillPoints    = 25
	exactLevelPoints  = 20
	aboveLevelPoints  = 15
	belowLevelPoints  = 5
	yearsPoints       = 10
	maxCulturePoints  = 15
	perCulturePoints  = 5
	locationPoints    = 10
	jobTypePoints     = 5

	topMatchScore = 85
)

// Score computes a compatibility score in [50, 99] between a candidate and a
// job, plus a ranked insight list explaining the result. company may be nil;
// the culture factor is then skipped.
func Score(candidate *talent.CandidateProfile, job *talent.JobPosting, company *talent.CompanyProfile) (int, []Insight) {
	score := baseScore
	var insights []Insight

	if pts, in, ok := skillsFactor(candidate, job); ok {
		score += pts
		insights = append(insights, in)
	}
	if pts, in, ok := experienceFactor(candidate, job); ok {
		score += pts
		insights = append(insights, in)
	}
	if pts, in, ok := yearsFactor(candidate, job); ok {
		score += pts
		insights = append(insights, in)
	}
	if pts, in, ok := cultureFactor(candidate, company); ok {
		score += pts
		insights = append(insights, in)
	}
	if pts, in, ok := locationFactor(candidate, job); ok {
		score += pts
		insights = append(insights, in)
	}
	if pts, in, ok := jobTypeFactor(candidate, job); ok {
		score += pts
		insights = append(insights, in)
	}

	if score > maxScore {
		score = maxScore
	}
	if score < baseScore {
		score = baseScore
	}

	return score, Rank(insights, score)
}

// matchesLoosely reports whether either string is a case-insensitive
// substring of the other. Empty strings never match.
func matchesLoosely(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func containsLoosely(haystack []string, needle string) bool {
	for _, h := range haystack {
		if matchesLoosely(h, needle) {
			return true
		}
	}
	return false
}

func skillsFactor(candidate *talent.CandidateProfile, job *talent.JobPosting) (int, Insight, bool) {
	required := len(job.RequiredSkills)
	if required == 0 || len(candidate.Skills) == 0 {
		return 0, Insight{}, false
	}

	matched := 0
	for _, skill := range job.RequiredSkills {
		if containsLoosely(candidate.Skills, skill) {
			matched++
		}
	}

	if matched == 0 {
		return 0, Insight{
			Type:    InsightSkills,
			Message: fmt.Sprintf("None of the %d required skills found on the profile", required),
		}, true
	}

	pts := int(math.Round(maxSkillPoints * float64(matched) / float64(required)))
	return pts, Insight{
		Type:     InsightSkills,
		Message:  fmt.Sprintf("Matches %d of %d required skills", matched, required),
		Points:   pts,
		Scored:   true,
		Positive: true,
	}, true
}

func experienceFactor(candidate *talent.CandidateProfile, job *talent.JobPosting) (int, Insight, bool) {
	candRank := candidate.ExperienceLevel.Rank()
	reqRank := job.RequiredLevel.Rank()
	if candRank < 0 || reqRank < 0 {
		return 0, Insight{}, false
	}

	switch diff := candRank - reqRank; {
	case diff == 0:
		return exactLevelPoints, Insight{
			Type:     InsightExperience,
			Message:  fmt.Sprintf("Experience level matches exactly (%s)", job.RequiredLevel),
			Points:   exactLevelPoints,
			Scored:   true,
			Positive: true,
		}, true
	case diff >= 1:
		return aboveLevelPoints, Insight{
			Type:     InsightExperience,
			Message:  fmt.Sprintf("More senior than required (%s vs %s)", candidate.ExperienceLevel, job.RequiredLevel),
			Points:   aboveLevelPoints,
			Scored:   true,
			Positive: true,
		}, true
	case diff == -1:
		return belowLevelPoints, Insight{
			Type:    InsightExperience,
			Message: fmt.Sprintf("One level below the required %s", job.RequiredLevel),
			Points:  belowLevelPoints,
			Scored:  true,
		}, true
	default:
		// Two or more levels below: no points and no insight.
		return 0, Insight{}, false
	}
}

func yearsFactor(candidate *talent.CandidateProfile, job *talent.JobPosting) (int, Insight, bool) {
	if job.MinYears <= 0 {
		return 0, Insight{}, false
	}
	if candidate.YearsOfExperience < job.MinYears {
		return 0, Insight{}, false
	}
	return yearsPoints, Insight{
		Type:     InsightYears,
		Message:  fmt.Sprintf("%d+ years of experience (%d required)", candidate.YearsOfExperience, job.MinYears),
		Points:   yearsPoints,
		Scored:   true,
		Positive: true,
	}, true
}

func cultureFactor(candidate *talent.CandidateProfile, company *talent.CompanyProfile) (int, Insight, bool) {
	if company == nil || len(company.CultureTraits) == 0 || len(candidate.CulturePreferences) == 0 {
		return 0, Insight{}, false
	}

	overlap := 0
	for _, trait := range company.CultureTraits {
		if containsLoosely(candidate.CulturePreferences, trait) {
			overlap++
		}
	}
	if overlap == 0 {
		return 0, Insight{}, false
	}

	pts := overlap * perCulturePoints
	if pts > maxCulturePoints {
		pts = maxCulturePoints
	}
	return pts, Insight{
		Type:     InsightCulture,
		Message:  fmt.Sprintf("Shares %d culture preferences with the company", overlap),
		Points:   pts,
		Scored:   true,
		Positive: true,
	}, true
}

func locationFactor(candidate *talent.CandidateProfile, job *talent.JobPosting) (int, Insight, bool) {
	if job.JobType == talent.JobTypeRemote {
		return locationPoints, Insight{
			Type:     InsightLocation,
			Message:  "Remote position, location is no constraint",
			Points:   locationPoints,
			Scored:   true,
			Positive: true,
		}, true
	}
	if candidate.Location == "" || job.Location == "" {
		return 0, Insight{}, false
	}
	if !matchesLoosely(candidate.Location, job.Location) {
		return 0, Insight{}, false
	}
	return locationPoints, Insight{
		Type:     InsightLocation,
		Message:  fmt.Sprintf("Located near the job (%s)", job.Location),
		Points:   locationPoints,
		Scored:   true,
		Positive: true,
	}, true
}

func jobTypeFactor(candidate *talent.CandidateProfile, job *talent.JobPosting) (int, Insight, bool) {
	if job.JobType == "" || len(candidate.PreferredJobTypes) == 0 {
		return 0, Insight{}, false
	}
	for _, preferred := range candidate.PreferredJobTypes {
		if strings.EqualFold(preferred, string(job.JobType)) {
			return jobTypePoints, Insight{
				Type:     InsightJobType,
				Message:  fmt.Sprintf("Preferred job type (%s)", job.JobType),
				Points:   jobTypePoints,
				Scored:   true,
				Positive: true,
			}, true
		}
	}
	return 0, Insight{}, false
}
