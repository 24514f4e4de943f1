package roadmap

import (
	"fmt"
	"slices"
)

// State is the persisted roadmap slice: the current roadmap, if any, and the
// day numbers completed on it.
type State struct {
	Roadmap       *Roadmap `json:"roadmap"`
	CompletedDays []int    `json:"completedDays"`
}

// NewState returns the empty roadmap state.
func NewState() State {
	return State{CompletedDays: []int{}}
}

// Replace installs r as the current roadmap and clears completed days.
func (s *State) Replace(r *Roadmap) {
	s.Roadmap = r
	s.CompletedDays = []int{}
}

// CompleteDay marks day n complete. It reports false when n was already
// complete.
func (s *State) CompleteDay(n int) (bool, error) {
	if err := s.check(n); err != nil {
		return false, err
	}
	if slices.Contains(s.CompletedDays, n) {
		return false, nil
	}
	s.CompletedDays = append(s.CompletedDays, n)
	return true, nil
}

// UncompleteDay clears day n. It reports false when n was not complete.
func (s *State) UncompleteDay(n int) (bool, error) {
	if err := s.check(n); err != nil {
		return false, err
	}
	i := slices.Index(s.CompletedDays, n)
	if i < 0 {
		return false, nil
	}
	s.CompletedDays = slices.Delete(s.CompletedDays, i, i+1)
	return true, nil
}

// IsCompleted reports whether day n is complete.
func (s State) IsCompleted(n int) bool {
	return slices.Contains(s.CompletedDays, n)
}

// NextDay returns the first day not yet completed, or 0 when there is no
// roadmap or every day is done.
func (s State) NextDay() int {
	if s.Roadmap == nil {
		return 0
	}
	for _, d := range s.Roadmap.Schedule {
		if !s.IsCompleted(d.Day) {
			return d.Day
		}
	}
	return 0
}

// Progress projects the completed days onto the current roadmap.
func (s State) Progress() Progress {
	return CalculateProgress(s.Roadmap, s.CompletedDays)
}

// Clone returns a deep copy of s. The schedule itself is shared; roadmaps
// are never edited in place.
func (s State) Clone() State {
	out := s
	out.CompletedDays = append([]int{}, s.CompletedDays...)
	return out
}

func (s State) check(n int) error {
	if s.Roadmap == nil {
		return ErrNoRoadmap
	}
	if n < 1 || n > len(s.Roadmap.Schedule) {
		return fmt.Errorf("%w: %d not in 1..%d", ErrDayOutOfRange, n, len(s.Roadmap.Schedule))
	}
	return nil
}
