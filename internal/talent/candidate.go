package talent

import "fmt"

// ExperienceLevel is the ordinal seniority scale used by job postings and
// candidate profiles. Levels compare via Rank.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelLead      ExperienceLevel = "lead"
	LevelExecutive ExperienceLevel = "executive"
)

var levelRanks = map[ExperienceLevel]int{
	LevelEntry:     0,
	LevelMid:       1,
	LevelSenior:    2,
	LevelLead:      3,
	LevelExecutive: 4,
}

// ParseExperienceLevel converts a raw string to an ExperienceLevel, returning
// an error for unknown values.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	lvl := ExperienceLevel(s)
	if _, ok := levelRanks[lvl]; !ok {
		return "", fmt.Errorf("unknown experience level %q", s)
	}
	return lvl, nil
}

// Rank returns the ordinal position of the level (entry=0 .. executive=4).
// Unknown or empty levels rank -1.
func (l ExperienceLevel) Rank() int {
	if r, ok := levelRanks[l]; ok {
		return r
	}
	return -1
}

// CandidateProfile is a job seeker as the matching engine sees them.
type CandidateProfile struct {
	ID                 string           `mapstructure:"id"`
	UserID             string           `mapstructure:"user_id"`
	Name               string           `mapstructure:"name"`
	Email              string           `mapstructure:"email"`
	Skills             []string         `mapstructure:"skills"`
	ExperienceLevel    ExperienceLevel  `mapstructure:"experience_level"`
	YearsOfExperience  int              `mapstructure:"years_of_experience"`
	Location           string           `mapstructure:"location"`
	CulturePreferences []string         `mapstructure:"culture_preferences"`
	PreferredJobTypes  []string         `mapstructure:"preferred_job_types"`
	DealBreakers       []DealBreakerRule `mapstructure:"deal_breakers"`
}

// DealBreakerType tags a candidate-declared hard constraint.
type DealBreakerType string

const (
	DealBreakerMinSalary     DealBreakerType = "min_salary"
	DealBreakerJobType       DealBreakerType = "job_type"
	DealBreakerLocation      DealBreakerType = "location"
	DealBreakerSkillRequired DealBreakerType = "skill_required"
	DealBreakerCompanySize   DealBreakerType = "company_size"
)

// DealBreakerRule is one hard constraint owned by a candidate. Rules are
// evaluated read-only; unknown types are ignored by the filter.
type DealBreakerRule struct {
	Type  DealBreakerType `mapstructure:"type"`
	Value string          `mapstructure:"value"`
}
