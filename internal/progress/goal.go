package progress

import (
	"math"
	"time"

	"github.com/abhisek/prepquest/internal/badges"
)

// WeekStart returns the Monday that starts t's ISO week, as a date key.
func WeekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location()).Format(DateLayout)
}

// IsAchieved reports whether every sub-target of g is met.
func (g WeeklyGoal) IsAchieved() bool {
	return g.ProblemsCompleted >= g.ProblemsTarget &&
		g.HoursCompleted >= g.HoursTarget &&
		g.TopicsCompleted >= g.TopicsTarget
}

// SetWeeklyGoal creates a new goal, appends it to the goal history and makes
// it current. It does not look for an existing goal for the same week.
func (e *Engine) SetWeeklyGoal(ng NewGoal) (WeeklyGoal, Result) {
	if ng.ProblemsTarget <= 0 || ng.HoursTarget <= 0 || ng.TopicsTarget <= 0 {
		return WeeklyGoal{}, ignored(ReasonInvalidGoal)
	}
	week := ng.WeekStart
	if week.IsZero() {
		week = e.now()
	}
	g := WeeklyGoal{
		ID:             e.newID(),
		WeekStart:      WeekStart(week),
		ProblemsTarget: ng.ProblemsTarget,
		HoursTarget:    ng.HoursTarget,
		TopicsTarget:   ng.TopicsTarget,
	}
	e.state.WeeklyGoals = append(e.state.WeeklyGoals, g)
	e.state.CurrentWeekGoalID = g.ID
	return g, Result{Outcome: Applied}
}

// CurrentGoal returns a copy of the current weekly goal.
func (e *Engine) CurrentGoal() (WeeklyGoal, bool) {
	g := e.currentGoal()
	if g == nil {
		return WeeklyGoal{}, false
	}
	return *g, true
}

// UpdateGoalProgress adds amount to one sub-counter of the current goal,
// capped at its target. Problems and topics are counted in whole units.
func (e *Engine) UpdateGoalProgress(metric GoalMetric, amount float64) Result {
	if !metric.Valid() {
		return ignored(ReasonUnknownMetric)
	}
	g := e.currentGoal()
	if g == nil {
		return ignored(ReasonNoCurrentGoal)
	}
	if amount <= 0 {
		return ignored(ReasonNonPositiveAmount)
	}
	if metric != MetricHours && math.Round(amount) < 1 {
		return ignored(ReasonNonPositiveAmount)
	}
	r := Result{Outcome: Applied}
	r.merge(e.advanceGoal(g, metric, amount))
	return r
}

// advanceGoal bumps a counter and recomputes Achieved. The false to true
// transition is the only place goal badges and the goal streak move.
func (e *Engine) advanceGoal(g *WeeklyGoal, metric GoalMetric, amount float64) Result {
	wasAchieved := g.Achieved

	switch metric {
	case MetricProblems:
		g.ProblemsCompleted = min(g.ProblemsTarget, g.ProblemsCompleted+int(math.Round(amount)))
	case MetricHours:
		g.HoursCompleted = math.Min(g.HoursTarget, g.HoursCompleted+amount)
	case MetricTopics:
		g.TopicsCompleted = min(g.TopicsTarget, g.TopicsCompleted+int(math.Round(amount)))
	}
	g.Achieved = g.IsAchieved()

	var r Result
	if g.Achieved && !wasAchieved {
		e.state.GoalStreak++
		r.NewBadges = append(r.NewBadges, e.unlockEligible(badges.TriggerGoals, e.state.GoalStreak)...)
		r.NewBadges = append(r.NewBadges, e.unlockEligible(badges.TriggerGoalStreak, e.state.GoalStreak)...)
	}
	return r
}

func (e *Engine) currentGoal() *WeeklyGoal {
	if e.state.CurrentWeekGoalID == "" {
		return nil
	}
	for i := range e.state.WeeklyGoals {
		if e.state.WeeklyGoals[i].ID == e.state.CurrentWeekGoalID {
			return &e.state.WeeklyGoals[i]
		}
	}
	return nil
}
