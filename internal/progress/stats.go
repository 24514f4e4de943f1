package progress

import (
	"time"

	"github.com/abhisek/prepquest/internal/badges"
	"github.com/abhisek/prepquest/internal/level"
)

// ActivityDays is the length of the trailing activity window in Stats.
const ActivityDays = 7

// Stats is a read-only projection of State for dashboards.
type Stats struct {
	TotalXP            int                  `json:"totalXP"`
	Level              int                  `json:"level"`
	Title              string               `json:"title"`
	XPIntoLevel        int                  `json:"xpIntoLevel"`
	XPLevelSpan        int                  `json:"xpLevelSpan"`
	CurrentStreak      int                  `json:"currentStreak"`
	LongestStreak      int                  `json:"longestStreak"`
	TotalHours         float64              `json:"totalHours"`
	TasksCompleted     int                  `json:"tasksCompleted"`
	QuestsOpen         int                  `json:"questsOpen"`
	QuestsDone         int                  `json:"questsDone"`
	TopicsCompleted    int                  `json:"topicsCompleted"`
	FocusMinutes       int                  `json:"focusMinutes"`
	PomodorosDone      int                  `json:"pomodorosDone"`
	QuestionsPracticed int                  `json:"questionsPracticed"`
	NotesByCategory    map[NoteCategory]int `json:"notesByCategory"`
	BadgesUnlocked     int                  `json:"badgesUnlocked"`
	BadgesTotal        int                  `json:"badgesTotal"`
	RecentActivity     []StudyDay           `json:"recentActivity"`
	Goal               *GoalStats           `json:"goal,omitempty"`
}

// GoalStats reports the current weekly goal as fractions in [0, 1].
type GoalStats struct {
	WeekStart string  `json:"weekStart"`
	Problems  float64 `json:"problems"`
	Hours     float64 `json:"hours"`
	Topics    float64 `json:"topics"`
	Achieved  bool    `json:"achieved"`
}

// ComputeStats projects s for display. It has no side effects.
func ComputeStats(s State, catalog badges.Catalog, today time.Time) Stats {
	lvl, into, span := level.Progress(s.TotalXP)
	st := Stats{
		TotalXP:         s.TotalXP,
		Level:           lvl,
		Title:           level.Title(lvl),
		XPIntoLevel:     into,
		XPLevelSpan:     span,
		CurrentStreak:   s.CurrentStreak,
		LongestStreak:   s.LongestStreak,
		TasksCompleted:  s.TasksCompleted,
		TopicsCompleted: len(s.CompletedTopics),
		FocusMinutes:    s.TotalFocusMinutes,
		NotesByCategory: make(map[NoteCategory]int),
		BadgesTotal:     catalog.Len(),
	}

	for _, d := range s.StudyHistory {
		st.TotalHours += d.HoursStudied
	}
	for _, q := range s.DailyQuests {
		if q.Completed {
			st.QuestsDone++
		} else {
			st.QuestsOpen++
		}
	}
	for _, p := range s.PomodoroSessions {
		if p.Completed {
			st.PomodorosDone++
		}
	}
	for _, q := range s.PracticedQuestions {
		if q.Practiced {
			st.QuestionsPracticed++
		}
	}
	for _, n := range s.Notes {
		st.NotesByCategory[n.Category]++
	}
	for _, id := range s.UnlockedBadges {
		if _, ok := catalog.Lookup(id); ok {
			st.BadgesUnlocked++
		}
	}

	st.RecentActivity = recentActivity(s.StudyHistory, today, ActivityDays)

	for _, g := range s.WeeklyGoals {
		if g.ID != s.CurrentWeekGoalID {
			continue
		}
		st.Goal = &GoalStats{
			WeekStart: g.WeekStart,
			Problems:  fraction(float64(g.ProblemsCompleted), float64(g.ProblemsTarget)),
			Hours:     fraction(g.HoursCompleted, g.HoursTarget),
			Topics:    fraction(float64(g.TopicsCompleted), float64(g.TopicsTarget)),
			Achieved:  g.Achieved,
		}
	}
	return st
}

// recentActivity returns one entry per day for the trailing window ending
// today, oldest first, with zero entries for days without activity.
func recentActivity(history []StudyDay, today time.Time, days int) []StudyDay {
	byDate := make(map[string]StudyDay, len(history))
	for _, d := range history {
		byDate[d.Date] = d
	}
	y, m, d := today.Date()
	out := make([]StudyDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		key := time.Date(y, m, d-i, 0, 0, 0, 0, today.Location()).Format(DateLayout)
		if day, ok := byDate[key]; ok {
			out = append(out, day)
		} else {
			out = append(out, StudyDay{Date: key})
		}
	}
	return out
}

func fraction(done, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return min(1, done/target)
}
