package badges

// Trigger identifies the quantity a badge condition is measured against.
type Trigger string

const (
	TriggerXP         Trigger = "xp"
	TriggerStreak     Trigger = "streak"
	TriggerTasks      Trigger = "tasks"
	TriggerPomodoros  Trigger = "pomodoros"
	TriggerNotes      Trigger = "notes"
	TriggerTopics     Trigger = "topics"
	TriggerPracticed  Trigger = "practiced"
	TriggerGoals      Trigger = "goals"
	TriggerGoalStreak Trigger = "goal-streak"
)

// AllTriggers returns all trigger kinds in display order.
func AllTriggers() []Trigger {
	return []Trigger{
		TriggerXP, TriggerStreak, TriggerTasks, TriggerPomodoros, TriggerNotes,
		TriggerTopics, TriggerPracticed, TriggerGoals, TriggerGoalStreak,
	}
}

// DisplayName returns a human-readable label for the trigger.
func (t Trigger) DisplayName() string {
	switch t {
	case TriggerXP:
		return "Experience"
	case TriggerStreak:
		return "Streaks"
	case TriggerTasks:
		return "Quests"
	case TriggerPomodoros:
		return "Focus"
	case TriggerNotes:
		return "Notes"
	case TriggerTopics:
		return "Topics"
	case TriggerPracticed:
		return "Practice"
	case TriggerGoals:
		return "Weekly Goals"
	case TriggerGoalStreak:
		return "Goal Streak"
	default:
		return string(t)
	}
}
