package badges

import "fmt"

// Badge is a static catalog entry. Condition is the human-readable form of
// Trigger >= Threshold.
type Badge struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Condition   string  `json:"condition"`
	Rarity      Rarity  `json:"rarity"`
	Trigger     Trigger `json:"trigger"`
	Threshold   int     `json:"threshold"`
}

// Well-known badge ids referenced directly by the engine.
const (
	FirstTask      = "first-task"
	WeeklyWarrior  = "weekly-warrior"
	GoalCrusher    = "goal-crusher"
	InterviewReady = "interview-ready"
)

var defaultBadges = []Badge{
	{ID: FirstTask, Name: "First Steps", Description: "Complete your first quest", Icon: "🎯", Condition: "Complete 1 quest", Rarity: RarityCommon, Trigger: TriggerTasks, Threshold: 1},

	{ID: "xp-1000", Name: "Rising Star", Description: "Earn 1,000 XP", Icon: "⭐", Condition: "Reach 1000 XP", Rarity: RarityCommon, Trigger: TriggerXP, Threshold: 1000},
	{ID: "xp-5000", Name: "XP Hunter", Description: "Earn 5,000 XP", Icon: "🌟", Condition: "Reach 5000 XP", Rarity: RarityRare, Trigger: TriggerXP, Threshold: 5000},
	{ID: "xp-10000", Name: "XP Legend", Description: "Earn 10,000 XP", Icon: "💫", Condition: "Reach 10000 XP", Rarity: RarityEpic, Trigger: TriggerXP, Threshold: 10000},

	{ID: "streak-3", Name: "On Fire", Description: "Study 3 days in a row", Icon: "🔥", Condition: "3-day streak", Rarity: RarityCommon, Trigger: TriggerStreak, Threshold: 3},
	{ID: "streak-7", Name: "Week Warrior", Description: "Study 7 days in a row", Icon: "⚡", Condition: "7-day streak", Rarity: RarityRare, Trigger: TriggerStreak, Threshold: 7},
	{ID: "streak-30", Name: "Monthly Master", Description: "Study 30 days in a row", Icon: "🏆", Condition: "30-day streak", Rarity: RarityEpic, Trigger: TriggerStreak, Threshold: 30},
	{ID: "streak-100", Name: "Unstoppable", Description: "Study 100 days in a row", Icon: "👑", Condition: "100-day streak", Rarity: RarityLegendary, Trigger: TriggerStreak, Threshold: 100},

	{ID: "pomodoro-1", Name: "Focused", Description: "Finish your first pomodoro", Icon: "🍅", Condition: "Complete 1 pomodoro", Rarity: RarityCommon, Trigger: TriggerPomodoros, Threshold: 1},
	{ID: "pomodoro-10", Name: "Deep Worker", Description: "Finish 10 pomodoros", Icon: "⏱️", Condition: "Complete 10 pomodoros", Rarity: RarityRare, Trigger: TriggerPomodoros, Threshold: 10},
	{ID: "pomodoro-50", Name: "Focus Machine", Description: "Finish 50 pomodoros", Icon: "🧠", Condition: "Complete 50 pomodoros", Rarity: RarityEpic, Trigger: TriggerPomodoros, Threshold: 50},

	{ID: "note-1", Name: "Note Taker", Description: "Write your first note", Icon: "📝", Condition: "Create 1 note", Rarity: RarityCommon, Trigger: TriggerNotes, Threshold: 1},
	{ID: "note-10", Name: "Scholar", Description: "Write 10 notes", Icon: "📚", Condition: "Create 10 notes", Rarity: RarityRare, Trigger: TriggerNotes, Threshold: 10},

	{ID: "topics-10", Name: "Explorer", Description: "Complete 10 topics", Icon: "🧭", Condition: "Complete 10 topics", Rarity: RarityCommon, Trigger: TriggerTopics, Threshold: 10},
	{ID: "topics-50", Name: "Module Master", Description: "Complete 50 topics", Icon: "🗺️", Condition: "Complete 50 topics", Rarity: RarityEpic, Trigger: TriggerTopics, Threshold: 50},

	{ID: InterviewReady, Name: "Interview Ready", Description: "Practice 50 interview questions", Icon: "🎤", Condition: "Practice 50 questions", Rarity: RarityEpic, Trigger: TriggerPracticed, Threshold: 50},

	{ID: WeeklyWarrior, Name: "Goal Getter", Description: "Achieve a weekly goal", Icon: "✅", Condition: "Achieve 1 weekly goal", Rarity: RarityRare, Trigger: TriggerGoals, Threshold: 1},
	{ID: GoalCrusher, Name: "Goal Crusher", Description: "Achieve 10 weekly goals", Icon: "💎", Condition: "Achieve 10 weekly goals", Rarity: RarityLegendary, Trigger: TriggerGoalStreak, Threshold: 10},
}

// Catalog is an immutable, ordered set of badges.
type Catalog struct {
	badges []Badge
	byID   map[string]int
}

// Default returns the built-in badge catalog.
func Default() Catalog {
	c, err := NewCatalog(defaultBadges)
	if err != nil {
		panic(err)
	}
	return c
}

// NewCatalog builds a catalog from the given badges, rejecting duplicate ids,
// unknown rarities and non-positive thresholds.
func NewCatalog(list []Badge) (Catalog, error) {
	c := Catalog{
		badges: make([]Badge, len(list)),
		byID:   make(map[string]int, len(list)),
	}
	copy(c.badges, list)
	for i, b := range c.badges {
		if b.ID == "" {
			return Catalog{}, fmt.Errorf("badge %d: empty id", i)
		}
		if _, dup := c.byID[b.ID]; dup {
			return Catalog{}, fmt.Errorf("badge %q: duplicate id", b.ID)
		}
		if !b.Rarity.Valid() {
			return Catalog{}, fmt.Errorf("badge %q: unknown rarity %q", b.ID, b.Rarity)
		}
		if b.Threshold <= 0 {
			return Catalog{}, fmt.Errorf("badge %q: threshold must be positive", b.ID)
		}
		c.byID[b.ID] = i
	}
	return c, nil
}

// All returns a copy of every badge in catalog order.
func (c Catalog) All() []Badge {
	out := make([]Badge, len(c.badges))
	copy(out, c.badges)
	return out
}

// Len returns the number of badges in the catalog.
func (c Catalog) Len() int {
	return len(c.badges)
}

// Lookup returns the badge with the given id.
func (c Catalog) Lookup(id string) (Badge, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Badge{}, false
	}
	return c.badges[i], true
}

// Eligible returns the badges for trigger whose threshold is met by value,
// in catalog order.
func (c Catalog) Eligible(trigger Trigger, value int) []Badge {
	var out []Badge
	for _, b := range c.badges {
		if b.Trigger == trigger && value >= b.Threshold {
			out = append(out, b)
		}
	}
	return out
}
