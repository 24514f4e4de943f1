package progress

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/abhisek/prepquest/internal/docschema"
)

// StorageKey is the stable storage name of the gamification document.
const StorageKey = "gamification-storage"

// stateSchema is deliberately loose: it rejects shapes that would decode
// into nonsense but tolerates unknown and missing optional fields.
var stateSchema = &docschema.Schema{
	Name: "progress-state",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"version":            map[string]any{"type": "integer"},
			"totalXP":            map[string]any{"type": "integer"},
			"currentStreak":      map[string]any{"type": "integer", "minimum": 0},
			"longestStreak":      map[string]any{"type": "integer", "minimum": 0},
			"lastActiveDate":     map[string]any{"type": "string"},
			"completedTopics":    stringArray(),
			"unlockedBadges":     stringArray(),
			"dailyQuests":        objectArray("id", "xp"),
			"studyHistory":       objectArray("date"),
			"pomodoroSessions":   objectArray("id", "duration"),
			"totalFocusMinutes":  map[string]any{"type": "integer", "minimum": 0},
			"notes":              objectArray("id", "title"),
			"weeklyGoals":        objectArray("id", "weekStart"),
			"currentWeekGoalId":  map[string]any{"type": "string"},
			"goalStreak":         map[string]any{"type": "integer", "minimum": 0},
			"tasksCompleted":     map[string]any{"type": "integer", "minimum": 0},
			"practicedQuestions": objectArray("id"),
			"previousLevel":      map[string]any{"type": "integer"},
			"levelUpPending":     map[string]any{"type": "boolean"},
		},
		"required": []any{"totalXP"},
	},
}

func stringArray() map[string]any {
	return map[string]any{
		"type":  []any{"array", "null"},
		"items": map[string]any{"type": "string"},
	}
}

func objectArray(required ...string) map[string]any {
	req := make([]any, len(required))
	for i, r := range required {
		req[i] = r
	}
	return map[string]any{
		"type": []any{"array", "null"},
		"items": map[string]any{
			"type":     "object",
			"required": req,
		},
	}
}

// Encode serialises s as the persisted JSON document.
func Encode(s State) ([]byte, error) {
	s.Version = StateVersion
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal progress state: %w", err)
	}
	return b, nil
}

// Decode parses a persisted document. A missing document yields the zero
// state. A corrupt or schema-invalid one also yields the zero state, with
// recovered set and the validation error returned for diagnostics.
func Decode(raw []byte) (s State, recovered bool, err error) {
	if len(raw) == 0 {
		return NewState(), false, nil
	}
	if err := docschema.Validate(stateSchema, raw); err != nil {
		return NewState(), true, err
	}
	var decoded State
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return NewState(), true, fmt.Errorf("unmarshal progress state: %w", err)
	}
	return Normalize(decoded), false, nil
}

// Normalize restores the State invariants on data that may come from an
// older or hand-edited document.
func Normalize(s State) State {
	out := s.Clone()
	if out.Version == 0 {
		out.Version = StateVersion
	}
	out.TotalXP = max(0, out.TotalXP)
	out.CurrentStreak = max(0, out.CurrentStreak)
	out.LongestStreak = max(out.LongestStreak, out.CurrentStreak)
	out.PreviousLevel = max(1, out.PreviousLevel)
	out.CompletedTopics = dedup(out.CompletedTopics)
	out.UnlockedBadges = dedup(out.UnlockedBadges)
	out.StudyHistory = mergeStudyDays(out.StudyHistory)
	for i := range out.WeeklyGoals {
		out.WeeklyGoals[i].Achieved = out.WeeklyGoals[i].IsAchieved()
	}
	if out.CurrentWeekGoalID != "" && !slices.ContainsFunc(out.WeeklyGoals, func(g WeeklyGoal) bool {
		return g.ID == out.CurrentWeekGoalID
	}) {
		out.CurrentWeekGoalID = ""
	}
	return out
}

func dedup(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// mergeStudyDays folds duplicate dates into one record per day.
func mergeStudyDays(in []StudyDay) []StudyDay {
	idx := make(map[string]int, len(in))
	out := make([]StudyDay, 0, len(in))
	for _, d := range in {
		if i, ok := idx[d.Date]; ok {
			out[i].HoursStudied = max(out[i].HoursStudied, d.HoursStudied)
			out[i].TasksCompleted += d.TasksCompleted
			out[i].XPEarned += d.XPEarned
			continue
		}
		idx[d.Date] = len(out)
		out = append(out, d)
	}
	return out
}
