package progress

import (
	"time"

	"github.com/abhisek/prepquest/internal/badges"
)

// UpdateStreak records activity for today. A second call on the same day is
// ignored; activity the day after the last active day extends the streak;
// any other gap, including first-ever activity, restarts it at 1.
func (e *Engine) UpdateStreak() Result {
	today := e.now()
	todayKey := today.Format(DateLayout)
	if e.state.LastActiveDate == todayKey {
		return ignored(ReasonSameDay)
	}

	if isPreviousDay(e.state.LastActiveDate, today) {
		e.state.CurrentStreak++
	} else {
		e.state.CurrentStreak = 1
	}
	e.state.LongestStreak = max(e.state.LongestStreak, e.state.CurrentStreak)
	e.state.LastActiveDate = todayKey

	r := Result{Outcome: Applied}
	r.NewBadges = e.unlockEligible(badges.TriggerStreak, e.state.CurrentStreak)
	return r
}

// isPreviousDay reports whether last is the calendar day before today.
func isPreviousDay(last string, today time.Time) bool {
	if last == "" {
		return false
	}
	y, m, d := today.Date()
	yesterday := time.Date(y, m, d-1, 0, 0, 0, 0, today.Location())
	return yesterday.Format(DateLayout) == last
}
