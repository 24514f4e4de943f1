package progress

import "fmt"

// Outcome reports whether a mutation changed state.
type Outcome int

const (
	// Applied means the mutation changed state.
	Applied Outcome = iota
	// Ignored means a guard condition turned the mutation into a no-op.
	Ignored
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// MarshalText encodes the outcome as its string form.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes the string form produced by MarshalText.
func (o *Outcome) UnmarshalText(b []byte) error {
	switch string(b) {
	case "applied":
		*o = Applied
	case "ignored":
		*o = Ignored
	default:
		return fmt.Errorf("unknown outcome %q", b)
	}
	return nil
}

// Ignore reasons.
const (
	ReasonNonPositiveAmount = "amount must be positive"
	ReasonNegativeAmount    = "amount must not be negative"
	ReasonQuestNotFound     = "quest not found"
	ReasonAlreadyCompleted  = "already completed"
	ReasonNotCompleted      = "not completed"
	ReasonInvalidQuest      = "quest needs a title, a known category and positive xp"
	ReasonInvalidNote       = "note needs a title and a known category"
	ReasonNoteNotFound      = "note not found"
	ReasonInvalidGoal       = "goal targets must be positive"
	ReasonNoCurrentGoal     = "no current weekly goal"
	ReasonUnknownMetric     = "unknown goal metric"
	ReasonInvalidSession    = "session needs a positive duration and non-negative xp"
	ReasonEmptyID           = "id must not be empty"
	ReasonSameDay           = "already active today"
	ReasonNoLevelUp         = "no pending level up"
)

// Result describes the effect of a mutation.
type Result struct {
	Outcome   Outcome  `json:"outcome"`
	Reason    string   `json:"reason,omitempty"`
	XPDelta   int      `json:"xpDelta"`
	NewBadges []string `json:"newBadges,omitempty"`
	LeveledUp bool     `json:"leveledUp"`
}

// Applied reports whether the mutation changed state.
func (r Result) Applied() bool {
	return r.Outcome == Applied
}

func ignored(reason string) Result {
	return Result{Outcome: Ignored, Reason: reason}
}

// merge folds the side effects of a nested step into r.
func (r *Result) merge(other Result) {
	r.XPDelta += other.XPDelta
	r.NewBadges = append(r.NewBadges, other.NewBadges...)
	r.LeveledUp = r.LeveledUp || other.LeveledUp
}
