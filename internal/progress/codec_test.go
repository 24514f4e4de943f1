package progress

import "testing"

func TestDecodeMissingDocument(t *testing.T) {
	s, recovered, err := Decode(nil)
	if err != nil || recovered {
		t.Fatalf("Decode(nil) = recovered %v, err %v", recovered, err)
	}
	if s.TotalXP != 0 || s.PreviousLevel != 1 || s.CompletedTopics == nil {
		t.Errorf("zero state = %+v", s)
	}
}

func TestDecodeCorruptDocument(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"truncated", `{"totalXP": 10`},
		{"wrong type", `{"totalXP": "ten"}`},
		{"missing xp", `{"currentStreak": 2}`},
		{"bad quest list", `{"totalXP": 1, "dailyQuests": "none"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, recovered, err := Decode([]byte(tt.raw))
			if !recovered || err == nil {
				t.Fatalf("recovered = %v, err = %v", recovered, err)
			}
			if s.TotalXP != 0 {
				t.Errorf("TotalXP = %d, want 0", s.TotalXP)
			}
		})
	}
}

func TestEncodeDecodePreservesEngineState(t *testing.T) {
	e, _ := newTestEngine(t)
	q, _ := e.AddQuest(NewQuest{Title: "heap", Category: QuestCoding, XP: 40})
	e.CompleteTask(q.ID)
	e.AddNote(NewNote{Title: "STAR", Category: NoteBehavioral})
	e.SetWeeklyGoal(NewGoal{ProblemsTarget: 2, HoursTarget: 3, TopicsTarget: 1})

	raw, err := Encode(e.State())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	s, recovered, err := Decode(raw)
	if err != nil || recovered {
		t.Fatalf("decode: recovered %v err %v", recovered, err)
	}
	if s.TotalXP != 40 || len(s.Notes) != 1 || s.CurrentWeekGoalID == "" {
		t.Errorf("decoded = %+v", s)
	}
	if !s.DailyQuests[0].CreatedAt.Equal(q.CreatedAt) {
		t.Error("quest timestamp lost")
	}
}

func TestNormalizeRepairsInvariants(t *testing.T) {
	s := State{
		TotalXP:           -20,
		CurrentStreak:     5,
		LongestStreak:     2,
		CompletedTopics:   []string{"a", "b", "a"},
		UnlockedBadges:    []string{"x", "x"},
		CurrentWeekGoalID: "gone",
		StudyHistory: []StudyDay{
			{Date: "2024-01-01", TasksCompleted: 1, XPEarned: 10},
			{Date: "2024-01-01", TasksCompleted: 2, XPEarned: 5, HoursStudied: 1},
		},
		WeeklyGoals: []WeeklyGoal{{ID: "g", ProblemsTarget: 1, ProblemsCompleted: 1, HoursTarget: 1, HoursCompleted: 1, TopicsTarget: 1, TopicsCompleted: 1}},
	}
	n := Normalize(s)
	if n.TotalXP != 0 {
		t.Errorf("TotalXP = %d", n.TotalXP)
	}
	if n.LongestStreak != 5 {
		t.Errorf("LongestStreak = %d", n.LongestStreak)
	}
	if len(n.CompletedTopics) != 2 || len(n.UnlockedBadges) != 1 {
		t.Errorf("sets not deduplicated: %v %v", n.CompletedTopics, n.UnlockedBadges)
	}
	if n.CurrentWeekGoalID != "" {
		t.Error("dangling goal reference kept")
	}
	if len(n.StudyHistory) != 1 || n.StudyHistory[0].TasksCompleted != 3 {
		t.Errorf("study history = %+v", n.StudyHistory)
	}
	if !n.WeeklyGoals[0].Achieved {
		t.Error("achieved not recomputed")
	}
	if n.PreviousLevel != 1 {
		t.Errorf("PreviousLevel = %d", n.PreviousLevel)
	}
}

func TestComputeStats(t *testing.T) {
	e, clock := newTestEngine(t)
	e.UpdateHoursStudied(2)
	clock.AddDays(1)
	e.UpdateHoursStudied(1.5)
	q, _ := e.AddQuest(NewQuest{Title: "dp", Category: QuestCoding, XP: 120})
	e.AddQuest(NewQuest{Title: "open", Category: QuestLearning, XP: 10})
	e.CompleteTask(q.ID)
	e.AddNote(NewNote{Title: "n", Category: NoteDSA})
	e.SetWeeklyGoal(NewGoal{ProblemsTarget: 4, HoursTarget: 10, TopicsTarget: 2})
	e.UpdateGoalProgress(MetricProblems, 1)

	st := ComputeStats(e.State(), e.Catalog(), clock.t)
	if st.TotalXP != 120 || st.Level != 2 || st.XPIntoLevel != 20 || st.XPLevelSpan != 300 {
		t.Errorf("xp stats = %+v", st)
	}
	if st.TotalHours != 3.5 {
		t.Errorf("TotalHours = %v", st.TotalHours)
	}
	if st.QuestsDone != 1 || st.QuestsOpen != 1 {
		t.Errorf("quests = %d/%d", st.QuestsDone, st.QuestsOpen)
	}
	if st.NotesByCategory[NoteDSA] != 1 {
		t.Errorf("notes = %v", st.NotesByCategory)
	}
	if len(st.RecentActivity) != ActivityDays {
		t.Fatalf("recent activity len = %d", len(st.RecentActivity))
	}
	last := st.RecentActivity[ActivityDays-1]
	if last.Date != clock.t.Format(DateLayout) || last.HoursStudied != 1.5 {
		t.Errorf("last day = %+v", last)
	}
	if st.RecentActivity[0].Date != clock.t.AddDate(0, 0, -6).Format(DateLayout) {
		t.Errorf("first day = %s", st.RecentActivity[0].Date)
	}
	if st.Goal == nil || st.Goal.Problems != 0.25 {
		t.Errorf("goal = %+v", st.Goal)
	}
	if st.BadgesUnlocked == 0 || st.BadgesTotal != e.Catalog().Len() {
		t.Errorf("badges = %d/%d", st.BadgesUnlocked, st.BadgesTotal)
	}
}
