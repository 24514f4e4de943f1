package progress

import (
	"slices"

	"github.com/abhisek/prepquest/internal/badges"
)

// CompleteTopic adds topicID to the completed set and credits xp. A topic
// that is already completed is ignored so XP is never granted twice.
func (e *Engine) CompleteTopic(topicID string, xp int) Result {
	if topicID == "" {
		return ignored(ReasonEmptyID)
	}
	if xp < 0 {
		return ignored(ReasonNegativeAmount)
	}
	if slices.Contains(e.state.CompletedTopics, topicID) {
		return ignored(ReasonAlreadyCompleted)
	}

	e.state.CompletedTopics = append(e.state.CompletedTopics, topicID)

	r := Result{Outcome: Applied}
	if xp > 0 {
		r.merge(e.creditXP(xp))
	}
	if g := e.currentGoal(); g != nil {
		r.merge(e.advanceGoal(g, MetricTopics, 1))
	}
	r.NewBadges = append(r.NewBadges, e.unlockEligible(badges.TriggerTopics, len(e.state.CompletedTopics))...)
	r.merge(e.checkLevelUp())
	return r
}

// UncompleteTopic removes topicID from the completed set and subtracts xp,
// clamping the total at zero.
//
// The current weekly goal's topic counter is left as is, so a goal can stay
// achieved on the strength of a topic that is no longer complete.
func (e *Engine) UncompleteTopic(topicID string, xp int) Result {
	if xp < 0 {
		return ignored(ReasonNegativeAmount)
	}
	i := slices.Index(e.state.CompletedTopics, topicID)
	if i < 0 {
		return ignored(ReasonNotCompleted)
	}
	e.state.CompletedTopics = slices.Delete(e.state.CompletedTopics, i, i+1)

	r := Result{Outcome: Applied}
	r.merge(e.debitXP(xp))
	return r
}

// IsTopicCompleted reports whether topicID is in the completed set.
func (e *Engine) IsTopicCompleted(topicID string) bool {
	return slices.Contains(e.state.CompletedTopics, topicID)
}
