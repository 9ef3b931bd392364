package agenda

import "strings"

// Tier is one of the four priority buckets a meeting can land in.
type Tier string

// Tiers in descending priority order.
const (
	TierCritical   Tier = "critical"
	TierImportant  Tier = "important"
	TierModerate   Tier = "moderate"
	TierCancelable Tier = "cancelable"
)

// Tiers lists all tiers in display order.
var Tiers = []Tier{TierCritical, TierImportant, TierModerate, TierCancelable}

// rankRule pairs a predicate with the tier it assigns. Rules are
// evaluated top to bottom; the first match wins.
type rankRule struct {
	matches func(e Event, title string) bool
	tier    Tier
}

func titleContainsAny(title string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(title, w) {
			return true
		}
	}
	return false
}

// rankRules mirrors the keyword heuristics used to triage a day's
// meetings. The final rule is a catch-all, so every meeting is
// assigned exactly one tier. Predicates receive the lowercased title.
var rankRules = []rankRule{
	{
		tier: TierCritical,
		matches: func(_ Event, title string) bool {
			return titleContainsAny(title, "production", "deploy", "leads", "epd", "gtm", "critical", "urgent")
		},
	},
	{
		tier: TierImportant,
		matches: func(_ Event, title string) bool {
			return titleContainsAny(title, "daily", "migration", "customer", "onboarding", "1:1", "weekly")
		},
	},
	{
		tier: TierModerate,
		matches: func(_ Event, title string) bool {
			return titleContainsAny(title, "sync", "catch", "check")
		},
	},
	{
		tier: TierCancelable,
		matches: func(e Event, title string) bool {
			return e.DurationMinutes() <= 30 || strings.Contains(title, "list")
		},
	},
	{
		// Long meetings with no keyword signal are worth keeping an
		// eye on but not protecting.
		tier:    TierModerate,
		matches: func(Event, string) bool { return true },
	},
}

// Ranking partitions a day's meetings into the four priority tiers.
// The tiers are disjoint and, excluding focus and commute blocks,
// cover the input; each preserves the relative order of its events.
type Ranking struct {
	Critical   []Event
	Important  []Event
	Moderate   []Event
	Cancelable []Event
}

// ByTier returns the events assigned to the given tier.
func (r Ranking) ByTier(t Tier) []Event {
	switch t {
	case TierCritical:
		return r.Critical
	case TierImportant:
		return r.Important
	case TierModerate:
		return r.Moderate
	case TierCancelable:
		return r.Cancelable
	}
	return nil
}

// Classify returns the tier for a single meeting.
func Classify(e Event) Tier {
	title := strings.ToLower(e.Title)
	for _, rule := range rankRules {
		if rule.matches(e, title) {
			return rule.tier
		}
	}
	// Unreachable: the last rule always matches.
	return TierModerate
}

// Rank classifies every ordinary meeting in events. Focus and commute
// blocks are never classified and do not appear in the result.
func Rank(events []Event) Ranking {
	var r Ranking
	for _, e := range events {
		if !e.IsMeeting() {
			continue
		}
		switch Classify(e) {
		case TierCritical:
			r.Critical = append(r.Critical, e)
		case TierImportant:
			r.Important = append(r.Important, e)
		case TierModerate:
			r.Moderate = append(r.Moderate, e)
		case TierCancelable:
			r.Cancelable = append(r.Cancelable, e)
		}
	}
	return r
}
