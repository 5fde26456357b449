package scoring

import "sort"

// InsightType tags which factor produced an insight.
type InsightType string

const (
	InsightSkills     InsightType = "skills"
	InsightExperience InsightType = "experience"
	InsightYears      InsightType = "years"
	InsightCulture    InsightType = "culture"
	InsightLocation   InsightType = "location"
	InsightJobType    InsightType = "job_type"
	InsightTopMatch   InsightType = "top_match"
)

// Insight is one human-readable explanation of a score. Insights are
// ephemeral: recomputed on every score request and never persisted.
type Insight struct {
	Type     InsightType
	Message  string
	Points   int
	Scored   bool // false when the insight carries no point contribution
	Positive bool
}

// Rank orders insights for display: highest point contribution first,
// entries without a contribution last, stable among ties. When the score
// qualifies as a top match a highlight insight is placed at the very front.
// Idempotent: existing highlights are dropped before the single highlight is
// prepended, so ranking an already ranked list returns the same list.
func Rank(insights []Insight, score int) []Insight {
	ranked := make([]Insight, 0, len(insights))
	for _, in := range insights {
		if in.Type == InsightTopMatch {
			continue
		}
		ranked = append(ranked, in)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Scored != b.Scored {
			return a.Scored
		}
		if !a.Scored {
			return false
		}
		return a.Points > b.Points
	})

	if score >= topMatchScore {
		ranked = append([]Insight{{
			Type:     InsightTopMatch,
			Message:  "Top match: this candidate is an excellent fit",
			Positive: true,
		}}, ranked...)
	}

	return ranked
}
