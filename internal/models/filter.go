package models

import (
	"fmt"
	"strings"
)

// Filter selects a derived view of the task list
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
	FilterHigh      Filter = "high" // high priority and not completed
)

// Filters lists every filter in tab order
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted, FilterHigh}

// Label returns the display name of the filter
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	case FilterHigh:
		return "High Priority"
	default:
		return "All"
	}
}

// Match reports whether t belongs to the view selected by f.
// Unknown filters behave like FilterAll.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	case FilterHigh:
		return t.Priority == PriorityHigh && !t.Completed
	default:
		return true
	}
}

// Next returns the filter after f in tab order, wrapping around
func (f Filter) Next() Filter {
	return Filters[(f.index()+1)%len(Filters)]
}

// Prev returns the filter before f in tab order, wrapping around
func (f Filter) Prev() Filter {
	return Filters[(f.index()+len(Filters)-1)%len(Filters)]
}

func (f Filter) index() int {
	for i, candidate := range Filters {
		if candidate == f {
			return i
		}
	}
	return 0
}

// ParseFilter maps user input to a Filter (case-insensitive)
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "active":
		return FilterActive, nil
	case "completed", "done":
		return FilterCompleted, nil
	case "high", "high-priority":
		return FilterHigh, nil
	}
	return "", fmt.Errorf("%w '%s' (must be: all, active, completed, high)", ErrInvalidFilter, s)
}

// Counts holds the number of tasks in each filtered view
type Counts struct {
	All       int `json:"all"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	High      int `json:"high"`
}

// For returns the count that belongs to f
func (c Counts) For(f Filter) int {
	switch f {
	case FilterActive:
		return c.Active
	case FilterCompleted:
		return c.Completed
	case FilterHigh:
		return c.High
	default:
		return c.All
	}
}

// ApplyFilter returns the tasks matching f in list order.
// The input slice is never modified.
func ApplyFilter(tasks []Task, f Filter) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// CountTasks tallies every view in one pass
func CountTasks(tasks []Task) Counts {
	c := Counts{All: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
			continue
		}
		c.Active++
		if t.Priority == PriorityHigh {
			c.High++
		}
	}
	return c
}
