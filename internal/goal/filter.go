package goal

// Filter selects the visible subset of the goal list.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ParseFilter maps a query value onto a filter mode, defaulting to all.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterActive:
		return FilterActive
	case FilterCompleted:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Apply derives the visible goals for a filter mode. Pure and
// order-preserving; "all" returns the input as is.
func (f Filter) Apply(goals []Goal) []Goal {
	if f == FilterAll {
		return goals
	}
	wantCompleted := f == FilterCompleted
	filtered := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if g.Completed == wantCompleted {
			filtered = append(filtered, g)
		}
	}
	return filtered
}
