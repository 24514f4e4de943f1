package progress

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/prepquest/internal/badges"
	"github.com/abhisek/prepquest/internal/level"
)

// Engine owns a State and applies mutations to it. Every mutator runs to
// completion, including streak, badge and level-up side effects, before it
// returns. Engine is not safe for concurrent use; callers serialise access.
type Engine struct {
	state   State
	now     func() time.Time
	catalog badges.Catalog
	newID   func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source used for "today" and timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithCatalog replaces the default badge catalog.
func WithCatalog(c badges.Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// WithIDGenerator replaces the uuid-based id generator.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) { e.newID = gen }
}

// New creates an engine over the zero state.
func New(opts ...Option) *Engine {
	return FromState(NewState(), opts...)
}

// FromState creates an engine over a copy of s.
func FromState(s State, opts ...Option) *Engine {
	e := &Engine{
		state:   Normalize(s),
		now:     time.Now,
		catalog: badges.Default(),
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// State returns a deep copy of the current state.
func (e *Engine) State() State {
	return e.state.Clone()
}

// Catalog returns the badge catalog the engine evaluates.
func (e *Engine) Catalog() badges.Catalog {
	return e.catalog
}

// Level returns the level for the current XP total.
func (e *Engine) Level() int {
	return level.ForXP(e.state.TotalXP)
}

// Title returns the title for the current level.
func (e *Engine) Title() string {
	return level.Title(e.Level())
}

// HasBadge reports whether the badge id has been unlocked.
func (e *Engine) HasBadge(id string) bool {
	return slices.Contains(e.state.UnlockedBadges, id)
}

// Today returns the current calendar day key.
func (e *Engine) Today() string {
	return e.now().Format(DateLayout)
}

// AddXP credits amount to the XP total.
func (e *Engine) AddXP(amount int) Result {
	if amount <= 0 {
		return ignored(ReasonNonPositiveAmount)
	}
	r := Result{Outcome: Applied}
	r.merge(e.creditXP(amount))
	r.merge(e.checkLevelUp())
	return r
}

// AcknowledgeLevelUp clears the one-shot level-up flag.
func (e *Engine) AcknowledgeLevelUp() Result {
	if !e.state.LevelUpPending {
		return ignored(ReasonNoLevelUp)
	}
	e.state.LevelUpPending = false
	return Result{Outcome: Applied}
}

// Reset discards all progress.
func (e *Engine) Reset() Result {
	e.state = NewState()
	return Result{Outcome: Applied}
}

// creditXP adds XP and evaluates XP-threshold badges.
func (e *Engine) creditXP(amount int) Result {
	e.state.TotalXP += amount
	r := Result{XPDelta: amount}
	r.NewBadges = e.unlockEligible(badges.TriggerXP, e.state.TotalXP)
	return r
}

// debitXP subtracts XP, clamping the total at zero.
func (e *Engine) debitXP(amount int) Result {
	before := e.state.TotalXP
	e.state.TotalXP = max(0, e.state.TotalXP-amount)
	return Result{XPDelta: e.state.TotalXP - before}
}

// checkLevelUp raises the level-up flag when the level has grown past the
// last recorded one. A level drop never lowers PreviousLevel.
func (e *Engine) checkLevelUp() Result {
	lvl := level.ForXP(e.state.TotalXP)
	if lvl <= e.state.PreviousLevel {
		return Result{}
	}
	e.state.PreviousLevel = lvl
	e.state.LevelUpPending = true
	return Result{LeveledUp: true}
}

// unlockEligible unions every badge of trigger whose threshold value meets
// into the unlocked set and returns the ids that were new.
func (e *Engine) unlockEligible(trigger badges.Trigger, value int) []string {
	var added []string
	for _, b := range e.catalog.Eligible(trigger, value) {
		if e.unlock(b.ID) {
			added = append(added, b.ID)
		}
	}
	return added
}

// unlock adds id to the unlocked set. Badges are never removed.
func (e *Engine) unlock(id string) bool {
	if slices.Contains(e.state.UnlockedBadges, id) {
		return false
	}
	e.state.UnlockedBadges = append(e.state.UnlockedBadges, id)
	return true
}

// studyDay returns today's study record, creating it on first use.
func (e *Engine) studyDay() *StudyDay {
	today := e.Today()
	for i := range e.state.StudyHistory {
		if e.state.StudyHistory[i].Date == today {
			return &e.state.StudyHistory[i]
		}
	}
	e.state.StudyHistory = append(e.state.StudyHistory, StudyDay{Date: today})
	return &e.state.StudyHistory[len(e.state.StudyHistory)-1]
}
