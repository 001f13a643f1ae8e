package stats

// WatchFacts are the two derived facts badge rules evaluate against.
type WatchFacts struct {
	WatchedCount     int64
	WatchTimeMinutes int64
}

// BadgeRule is a single threshold. A zero threshold means the dimension
// does not apply to this rule.
type BadgeRule struct {
	Name       string
	MinWatched int64
	MinMinutes int64
}

// Qualifies reports whether the facts meet the rule's threshold.
func (r BadgeRule) Qualifies(f WatchFacts) bool {
	if r.MinWatched > 0 {
		return f.WatchedCount >= r.MinWatched
	}
	return r.MinMinutes > 0 && f.WatchTimeMinutes >= r.MinMinutes
}

// BadgeCatalog is the fixed, ordered set of badges. Order here is the
// order newly earned badges are awarded in.
var BadgeCatalog = []BadgeRule{
	{Name: "First Movie Watched", MinWatched: 1},
	{Name: "5 Movies Watched", MinWatched: 5},
	{Name: "10 Movies Watched", MinWatched: 10},
	{Name: "25 Movies Watched", MinWatched: 25},
	{Name: "50 Movies Watched", MinWatched: 50},
	{Name: "100 Movies Watched", MinWatched: 100},
	{Name: "24 Hours Watched", MinMinutes: 1440},
	{Name: "100 Hours Watched", MinMinutes: 6000},
}

// NewlyEarned returns the badge names that qualify under the facts and
// are not already held. Evaluating twice with unchanged facts returns
// nothing the second time once the first batch is persisted.
func NewlyEarned(facts WatchFacts, owned map[string]bool) []string {
	var earned []string
	for _, rule := range BadgeCatalog {
		if rule.Qualifies(facts) && !owned[rule.Name] {
			earned = append(earned, rule.Name)
		}
	}
	return earned
}
