package talent

import "fmt"

// JobType describes the working arrangement of a posting.
type JobType string

const (
	JobTypeRemote   JobType = "remote"
	JobTypeHybrid   JobType = "hybrid"
	JobTypeOnsite   JobType = "onsite"
	JobTypeContract JobType = "contract"
)

// ParseJobType converts a raw string to a JobType, returning an error for
// unknown values.
func ParseJobType(s string) (JobType, error) {
	jt := JobType(s)
	switch jt {
	case JobTypeRemote, JobTypeHybrid, JobTypeOnsite, JobTypeContract:
		return jt, nil
	}
	return "", fmt.Errorf("unknown job type %q", s)
}

// JobPosting is an open position owned by a company. Zero values mean the
// field is not set: an empty RequiredLevel disables the experience factor, a
// zero SalaryMax means the posting does not declare a salary ceiling.
type JobPosting struct {
	ID             string          `mapstructure:"id"`
	CompanyID      string          `mapstructure:"company_id"`
	Title          string          `mapstructure:"title"`
	RequiredSkills []string        `mapstructure:"required_skills"`
	RequiredLevel  ExperienceLevel `mapstructure:"required_level"`
	MinYears       int             `mapstructure:"min_years"`
	Location       string          `mapstructure:"location"`
	JobType        JobType         `mapstructure:"job_type"`
	SalaryMin      int             `mapstructure:"salary_min"`
	SalaryMax      int             `mapstructure:"salary_max"`
	Active         bool            `mapstructure:"active"`
}

// CompanySize buckets a company by headcount.
type CompanySize string

const (
	SizeStartup    CompanySize = "startup"
	SizeSmall      CompanySize = "small"
	SizeMedium     CompanySize = "medium"
	SizeLarge      CompanySize = "large"
	SizeEnterprise CompanySize = "enterprise"
)

// ParseCompanySize converts a raw string to a CompanySize, returning an
// error for unknown values.
func ParseCompanySize(s string) (CompanySize, error) {
	size := CompanySize(s)
	switch size {
	case SizeStartup, SizeSmall, SizeMedium, SizeLarge, SizeEnterprise:
		return size, nil
	}
	return "", fmt.Errorf("unknown company size %q", s)
}

// CompanyProfile carries the company-side signals used by scoring and
// deal-breaker evaluation.
type CompanyProfile struct {
	ID            string      `mapstructure:"id"`
	Name          string      `mapstructure:"name"`
	CultureTraits []string    `mapstructure:"culture_traits"`
	Size          CompanySize `mapstructure:"size"`
}
