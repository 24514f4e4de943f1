package progress

import (
	"github.com/abhisek/prepquest/internal/badges"
)

// UpdateHoursStudied overwrites today's studied hours and records activity.
func (e *Engine) UpdateHoursStudied(hours float64) Result {
	if hours < 0 {
		return ignored(ReasonNegativeAmount)
	}
	e.studyDay().HoursStudied = hours

	r := Result{Outcome: Applied}
	r.merge(e.UpdateStreak())
	return r
}

// AddPomodoroSession appends a focus session. Only completed sessions count
// toward focus minutes, XP and pomodoro badges.
func (e *Engine) AddPomodoroSession(p NewPomodoro) (PomodoroSession, Result) {
	if p.Duration <= 0 || p.XPEarned < 0 {
		return PomodoroSession{}, ignored(ReasonInvalidSession)
	}
	start := p.StartTime
	if start.IsZero() {
		start = e.now()
	}
	session := PomodoroSession{
		ID:        e.newID(),
		StartTime: start,
		Duration:  p.Duration,
		Completed: p.Completed,
		XPEarned:  p.XPEarned,
	}
	e.state.PomodoroSessions = append(e.state.PomodoroSessions, session)

	r := Result{Outcome: Applied}
	if session.Completed {
		e.state.TotalFocusMinutes += session.Duration
		if session.XPEarned > 0 {
			r.merge(e.creditXP(session.XPEarned))
		}
	}
	r.NewBadges = append(r.NewBadges, e.unlockEligible(badges.TriggerPomodoros, e.completedPomodoros())...)

	r.merge(e.UpdateStreak())
	r.merge(e.checkLevelUp())
	return session, r
}

func (e *Engine) completedPomodoros() int {
	n := 0
	for _, s := range e.state.PomodoroSessions {
		if s.Completed {
			n++
		}
	}
	return n
}

// MarkQuestionPracticed records practice of an interview question. Practicing
// the same question again refreshes its timestamp.
func (e *Engine) MarkQuestionPracticed(questionID string) Result {
	if questionID == "" {
		return ignored(ReasonEmptyID)
	}
	now := e.now()
	found := false
	for i := range e.state.PracticedQuestions {
		if e.state.PracticedQuestions[i].ID == questionID {
			e.state.PracticedQuestions[i].Practiced = true
			e.state.PracticedQuestions[i].LastPracticedAt = now
			found = true
			break
		}
	}
	if !found {
		e.state.PracticedQuestions = append(e.state.PracticedQuestions, PracticedQuestion{
			ID:              questionID,
			Practiced:       true,
			LastPracticedAt: now,
		})
	}

	r := Result{Outcome: Applied}
	r.NewBadges = e.unlockEligible(badges.TriggerPracticed, e.practicedCount())
	r.merge(e.UpdateStreak())
	return r
}

func (e *Engine) practicedCount() int {
	n := 0
	for _, q := range e.state.PracticedQuestions {
		if q.Practiced {
			n++
		}
	}
	return n
}
