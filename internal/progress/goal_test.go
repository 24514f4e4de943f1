package progress

import (
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		day  time.Time
		want string
	}{
		{time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), "2024-03-11"}, // Monday
		{time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), "2024-03-11"},
		{time.Date(2024, 3, 17, 23, 0, 0, 0, time.UTC), "2024-03-11"}, // Sunday
		{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "2024-02-26"},
	}
	for _, tt := range tests {
		if got := WeekStart(tt.day); got != tt.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tt.day.Format(DateLayout), got, tt.want)
		}
	}
}

func TestUpdateGoalProgressWithoutGoal(t *testing.T) {
	e, _ := newTestEngine(t)
	r := e.UpdateGoalProgress(MetricProblems, 1)
	if r.Applied() || r.Reason != ReasonNoCurrentGoal {
		t.Errorf("result = %+v", r)
	}
}

func TestUpdateGoalProgressIgnoresFractionalUnits(t *testing.T) {
	e, _ := newTestEngine(t)
	e.SetWeeklyGoal(NewGoal{ProblemsTarget: 3, HoursTarget: 2, TopicsTarget: 1})

	for _, m := range []GoalMetric{MetricProblems, MetricTopics} {
		r := e.UpdateGoalProgress(m, 0.4)
		if r.Applied() || r.Reason != ReasonNonPositiveAmount {
			t.Errorf("%s+0.4 result = %+v", m, r)
		}
	}
	if r := e.UpdateGoalProgress(MetricHours, 0.4); !r.Applied() {
		t.Errorf("hours+0.4 ignored: %s", r.Reason)
	}
	cur, _ := e.CurrentGoal()
	if cur.ProblemsCompleted != 0 || cur.TopicsCompleted != 0 || cur.HoursCompleted != 0.4 {
		t.Errorf("goal = %+v", cur)
	}
}

func TestGoalAchievedConsistency(t *testing.T) {
	e, _ := newTestEngine(t)
	g, r := e.SetWeeklyGoal(NewGoal{ProblemsTarget: 3, HoursTarget: 2, TopicsTarget: 1})
	if !r.Applied() {
		t.Fatalf("SetWeeklyGoal ignored: %s", r.Reason)
	}
	if g.WeekStart != "2024-03-11" || g.Achieved {
		t.Fatalf("goal = %+v", g)
	}

	steps := []struct {
		metric GoalMetric
		amount float64
	}{
		{MetricProblems, 2},
		{MetricHours, 1.5},
		{MetricProblems, 5},
		{MetricHours, 1},
		{MetricTopics, 1},
	}
	for _, st := range steps {
		e.UpdateGoalProgress(st.metric, st.amount)
		cur, _ := e.CurrentGoal()
		want := cur.ProblemsCompleted >= cur.ProblemsTarget &&
			cur.HoursCompleted >= cur.HoursTarget &&
			cur.TopicsCompleted >= cur.TopicsTarget
		if cur.Achieved != want {
			t.Fatalf("after %s+%v achieved = %v, want %v (%+v)", st.metric, st.amount, cur.Achieved, want, cur)
		}
	}

	cur, _ := e.CurrentGoal()
	if cur.ProblemsCompleted != 3 || cur.HoursCompleted != 2 {
		t.Errorf("counters not clamped: %+v", cur)
	}
	if !cur.Achieved {
		t.Fatal("expected achieved")
	}
	if !e.HasBadge("weekly-warrior") {
		t.Error("expected weekly-warrior")
	}
	if e.State().GoalStreak != 1 {
		t.Errorf("GoalStreak = %d, want 1", e.State().GoalStreak)
	}

	// Further progress on an achieved goal does not bump the goal streak.
	e.UpdateGoalProgress(MetricProblems, 1)
	if e.State().GoalStreak != 1 {
		t.Errorf("GoalStreak = %d after extra progress", e.State().GoalStreak)
	}
}

func TestGoalCrusherAfterTenGoals(t *testing.T) {
	e, clock := newTestEngine(t)
	for i := 0; i < 10; i++ {
		e.SetWeeklyGoal(NewGoal{ProblemsTarget: 1, HoursTarget: 1, TopicsTarget: 1})
		e.UpdateGoalProgress(MetricProblems, 1)
		e.UpdateGoalProgress(MetricHours, 1)
		e.UpdateGoalProgress(MetricTopics, 1)
		clock.AddDays(7)
	}
	s := e.State()
	if s.GoalStreak != 10 {
		t.Errorf("GoalStreak = %d, want 10", s.GoalStreak)
	}
	if len(s.WeeklyGoals) != 10 {
		t.Errorf("history = %d, want 10", len(s.WeeklyGoals))
	}
	if !e.HasBadge("goal-crusher") {
		t.Error("expected goal-crusher")
	}
}

func TestSetWeeklyGoalReplacesCurrent(t *testing.T) {
	e, _ := newTestEngine(t)
	first, _ := e.SetWeeklyGoal(NewGoal{ProblemsTarget: 5, HoursTarget: 5, TopicsTarget: 5})
	second, _ := e.SetWeeklyGoal(NewGoal{ProblemsTarget: 1, HoursTarget: 1, TopicsTarget: 1})

	cur, ok := e.CurrentGoal()
	if !ok || cur.ID != second.ID {
		t.Fatalf("current = %+v, want %s", cur, second.ID)
	}
	// Both goals for the same week are kept in history.
	s := e.State()
	if len(s.WeeklyGoals) != 2 || s.WeeklyGoals[0].ID != first.ID {
		t.Errorf("history = %+v", s.WeeklyGoals)
	}
}

func TestSetWeeklyGoalValidation(t *testing.T) {
	e, _ := newTestEngine(t)
	if _, r := e.SetWeeklyGoal(NewGoal{ProblemsTarget: 0, HoursTarget: 1, TopicsTarget: 1}); r.Applied() {
		t.Error("zero target applied")
	}
	if r := e.UpdateGoalProgress("sleep", 1); r.Applied() {
		t.Error("unknown metric applied")
	}
}

func TestCompleteTopicAdvancesGoal(t *testing.T) {
	e, _ := newTestEngine(t)
	e.SetWeeklyGoal(NewGoal{ProblemsTarget: 1, HoursTarget: 1, TopicsTarget: 2})
	e.UpdateGoalProgress(MetricProblems, 1)
	e.UpdateGoalProgress(MetricHours, 1)

	e.CompleteTopic("a", 10)
	e.CompleteTopic("b", 10)
	e.CompleteTopic("c", 10)

	cur, _ := e.CurrentGoal()
	if cur.TopicsCompleted != 2 {
		t.Errorf("TopicsCompleted = %d, want 2 (capped)", cur.TopicsCompleted)
	}
	if !cur.Achieved || !e.HasBadge("weekly-warrior") {
		t.Error("expected achieved goal and badge")
	}
}

// Uncompleting a topic leaves the weekly goal counter untouched, so the goal
// stays achieved.
func TestUncompleteTopicKeepsGoalCounter(t *testing.T) {
	e, _ := newTestEngine(t)
	e.SetWeeklyGoal(NewGoal{ProblemsTarget: 1, HoursTarget: 1, TopicsTarget: 1})
	e.UpdateGoalProgress(MetricProblems, 1)
	e.UpdateGoalProgress(MetricHours, 1)
	e.CompleteTopic("a", 10)

	e.UncompleteTopic("a", 10)

	cur, _ := e.CurrentGoal()
	if cur.TopicsCompleted != 1 || !cur.Achieved {
		t.Errorf("goal after uncomplete = %+v", cur)
	}
}
