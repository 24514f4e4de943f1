package progress

import "time"

// DateLayout is the calendar-day key format used for streaks and study history.
const DateLayout = "2006-01-02"

// StateVersion is the current persisted schema version.
const StateVersion = 1

// QuestCategory classifies a daily quest.
type QuestCategory string

const (
	QuestCoding   QuestCategory = "coding"
	QuestBuilding QuestCategory = "building"
	QuestLearning QuestCategory = "learning"
)

// AllQuestCategories returns all quest categories in display order.
func AllQuestCategories() []QuestCategory {
	return []QuestCategory{QuestCoding, QuestBuilding, QuestLearning}
}

// Valid reports whether c is a known quest category.
func (c QuestCategory) Valid() bool {
	switch c {
	case QuestCoding, QuestBuilding, QuestLearning:
		return true
	}
	return false
}

// NoteCategory classifies a note.
type NoteCategory string

const (
	NoteDSA          NoteCategory = "dsa"
	NoteSystemDesign NoteCategory = "system-design"
	NoteBehavioral   NoteCategory = "behavioral"
	NoteDevelopment  NoteCategory = "development"
	NoteGeneral      NoteCategory = "general"
)

// AllNoteCategories returns all note categories in display order.
func AllNoteCategories() []NoteCategory {
	return []NoteCategory{NoteDSA, NoteSystemDesign, NoteBehavioral, NoteDevelopment, NoteGeneral}
}

// Valid reports whether c is a known note category.
func (c NoteCategory) Valid() bool {
	switch c {
	case NoteDSA, NoteSystemDesign, NoteBehavioral, NoteDevelopment, NoteGeneral:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the note category.
func (c NoteCategory) DisplayName() string {
	switch c {
	case NoteDSA:
		return "DSA"
	case NoteSystemDesign:
		return "System Design"
	case NoteBehavioral:
		return "Behavioral"
	case NoteDevelopment:
		return "Development"
	case NoteGeneral:
		return "General"
	default:
		return string(c)
	}
}

// GoalMetric names one of the three weekly-goal sub-targets.
type GoalMetric string

const (
	MetricProblems GoalMetric = "problems"
	MetricHours    GoalMetric = "hours"
	MetricTopics   GoalMetric = "topics"
)

// Valid reports whether m is a known goal metric.
func (m GoalMetric) Valid() bool {
	switch m {
	case MetricProblems, MetricHours, MetricTopics:
		return true
	}
	return false
}

// Quest is a user-created daily task. Completion is one-way.
type Quest struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Category    QuestCategory `json:"category"`
	Completed   bool          `json:"completed"`
	XP          int           `json:"xp"`
	CreatedAt   time.Time     `json:"createdAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

// StudyDay aggregates activity for one calendar day.
type StudyDay struct {
	Date           string  `json:"date"`
	HoursStudied   float64 `json:"hoursStudied"`
	TasksCompleted int     `json:"tasksCompleted"`
	XPEarned       int     `json:"xpEarned"`
}

// PomodoroSession is an append-only focus session record.
type PomodoroSession struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	Duration  int       `json:"duration"` // minutes
	Completed bool      `json:"completed"`
	XPEarned  int       `json:"xpEarned"`
}

// Note is a free-form study note.
type Note struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Category  NoteCategory `json:"category"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// WeeklyGoal tracks three sub-targets for the week starting WeekStart (a Monday).
// Achieved is always derived from the counters.
type WeeklyGoal struct {
	ID                string  `json:"id"`
	WeekStart         string  `json:"weekStart"`
	ProblemsTarget    int     `json:"problemsTarget"`
	ProblemsCompleted int     `json:"problemsCompleted"`
	HoursTarget       float64 `json:"hoursTarget"`
	HoursCompleted    float64 `json:"hoursCompleted"`
	TopicsTarget      int     `json:"topicsTarget"`
	TopicsCompleted   int     `json:"topicsCompleted"`
	Achieved          bool    `json:"achieved"`
}

// PracticedQuestion records that an interview question has been practiced.
type PracticedQuestion struct {
	ID              string    `json:"id"`
	Practiced       bool      `json:"practiced"`
	LastPracticedAt time.Time `json:"lastPracticedAt"`
}

// State is the root aggregate of all gamification progress for one user.
type State struct {
	Version            int                 `json:"version"`
	TotalXP            int                 `json:"totalXP"`
	CurrentStreak      int                 `json:"currentStreak"`
	LongestStreak      int                 `json:"longestStreak"`
	LastActiveDate     string              `json:"lastActiveDate,omitempty"`
	CompletedTopics    []string            `json:"completedTopics"`
	UnlockedBadges     []string            `json:"unlockedBadges"`
	DailyQuests        []Quest             `json:"dailyQuests"`
	StudyHistory       []StudyDay          `json:"studyHistory"`
	PomodoroSessions   []PomodoroSession   `json:"pomodoroSessions"`
	TotalFocusMinutes  int                 `json:"totalFocusMinutes"`
	Notes              []Note              `json:"notes"`
	WeeklyGoals        []WeeklyGoal        `json:"weeklyGoals"`
	CurrentWeekGoalID  string              `json:"currentWeekGoalId,omitempty"`
	GoalStreak         int                 `json:"goalStreak"`
	TasksCompleted     int                 `json:"tasksCompleted"`
	PracticedQuestions []PracticedQuestion `json:"practicedQuestions"`
	PreviousLevel      int                 `json:"previousLevel"`
	LevelUpPending     bool                `json:"levelUpPending"`
}

// NewState returns the zero-value state used on first run.
func NewState() State {
	return State{
		Version:            StateVersion,
		CompletedTopics:    []string{},
		UnlockedBadges:     []string{},
		DailyQuests:        []Quest{},
		StudyHistory:       []StudyDay{},
		PomodoroSessions:   []PomodoroSession{},
		Notes:              []Note{},
		WeeklyGoals:        []WeeklyGoal{},
		PracticedQuestions: []PracticedQuestion{},
		PreviousLevel:      1,
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.CompletedTopics = append([]string{}, s.CompletedTopics...)
	out.UnlockedBadges = append([]string{}, s.UnlockedBadges...)
	out.DailyQuests = make([]Quest, len(s.DailyQuests))
	for i, q := range s.DailyQuests {
		if q.CompletedAt != nil {
			t := *q.CompletedAt
			q.CompletedAt = &t
		}
		out.DailyQuests[i] = q
	}
	out.StudyHistory = append([]StudyDay{}, s.StudyHistory...)
	out.PomodoroSessions = append([]PomodoroSession{}, s.PomodoroSessions...)
	out.Notes = append([]Note{}, s.Notes...)
	out.WeeklyGoals = append([]WeeklyGoal{}, s.WeeklyGoals...)
	out.PracticedQuestions = append([]PracticedQuestion{}, s.PracticedQuestions...)
	return out
}

// NewQuest holds the caller-supplied fields of a quest.
type NewQuest struct {
	Title    string
	Category QuestCategory
	XP       int
}

// NewPomodoro holds the caller-supplied fields of a pomodoro session.
type NewPomodoro struct {
	StartTime time.Time
	Duration  int
	Completed bool
	XPEarned  int
}

// NewNote holds the caller-supplied fields of a note.
type NewNote struct {
	Title    string
	Content  string
	Category NoteCategory
}

// NoteUpdate lists the note fields to change. Nil fields are left alone.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Category *NoteCategory
}

// NewGoal holds the caller-supplied fields of a weekly goal.
type NewGoal struct {
	WeekStart      time.Time
	ProblemsTarget int
	HoursTarget    float64
	TopicsTarget   int
}
