package progress

import "testing"

func TestStreakContinuity(t *testing.T) {
	e, clock := newTestEngine(t)

	e.UpdateStreak()
	if got := e.State().CurrentStreak; got != 1 {
		t.Fatalf("first activity streak = %d, want 1", got)
	}

	// Same day is a no-op.
	if r := e.UpdateStreak(); r.Applied() || r.Reason != ReasonSameDay {
		t.Errorf("same-day UpdateStreak = %+v", r)
	}

	clock.AddDays(1)
	e.UpdateStreak()
	if got := e.State().CurrentStreak; got != 2 {
		t.Errorf("next-day streak = %d, want 2", got)
	}

	clock.AddDays(1)
	e.UpdateStreak()
	if !e.HasBadge("streak-3") {
		t.Error("expected streak-3")
	}

	clock.AddDays(2)
	e.UpdateStreak()
	s := e.State()
	if s.CurrentStreak != 1 {
		t.Errorf("after gap streak = %d, want 1", s.CurrentStreak)
	}
	if s.LongestStreak != 3 {
		t.Errorf("longest = %d, want 3", s.LongestStreak)
	}
	if !e.HasBadge("streak-3") {
		t.Error("streak badge revoked after reset")
	}
}

func TestStreakAcrossMonthBoundary(t *testing.T) {
	e, clock := newTestEngine(t)
	clock.t = clock.t.AddDate(0, 0, 19) // 2024-03-31
	e.UpdateStreak()
	clock.AddDays(1) // 2024-04-01
	e.UpdateStreak()
	if got := e.State().CurrentStreak; got != 2 {
		t.Errorf("streak across month = %d, want 2", got)
	}
}

func TestLongestStreakIsRunningMax(t *testing.T) {
	e, clock := newTestEngine(t)
	prevLongest := 0
	gaps := []int{1, 1, 1, 3, 1, 1, 1, 1, 5, 1}
	for _, g := range gaps {
		clock.AddDays(g)
		e.UpdateStreak()
		s := e.State()
		if s.LongestStreak < prevLongest {
			t.Fatalf("longest decreased from %d to %d", prevLongest, s.LongestStreak)
		}
		if s.CurrentStreak > s.LongestStreak {
			t.Fatalf("current %d > longest %d", s.CurrentStreak, s.LongestStreak)
		}
		prevLongest = s.LongestStreak
	}
	if prevLongest != 5 {
		t.Errorf("longest = %d, want 5", prevLongest)
	}
}

func TestSevenDayStreakBadge(t *testing.T) {
	e, clock := newTestEngine(t)
	for i := 0; i < 7; i++ {
		q, _ := e.AddQuest(NewQuest{Title: "daily", Category: QuestCoding, XP: 10})
		e.CompleteTask(q.ID)
		clock.AddDays(1)
	}
	if !e.HasBadge("streak-7") {
		t.Error("expected streak-7")
	}
	if e.HasBadge("streak-30") {
		t.Error("unexpected streak-30")
	}
}
