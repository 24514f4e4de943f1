package progress

import (
	"strings"

	"github.com/abhisek/prepquest/internal/badges"
)

// AddQuest creates an incomplete quest.
func (e *Engine) AddQuest(q NewQuest) (Quest, Result) {
	title := strings.TrimSpace(q.Title)
	if title == "" || !q.Category.Valid() || q.XP <= 0 {
		return Quest{}, ignored(ReasonInvalidQuest)
	}
	quest := Quest{
		ID:        e.newID(),
		Title:     title,
		Category:  q.Category,
		XP:        q.XP,
		CreatedAt: e.now(),
	}
	e.state.DailyQuests = append(e.state.DailyQuests, quest)
	return quest, Result{Outcome: Applied}
}

// RemoveQuest deletes a quest. XP already credited for it is kept.
func (e *Engine) RemoveQuest(id string) Result {
	i := e.questIndex(id)
	if i < 0 {
		return ignored(ReasonQuestNotFound)
	}
	e.state.DailyQuests = append(e.state.DailyQuests[:i], e.state.DailyQuests[i+1:]...)
	return Result{Outcome: Applied}
}

// CompleteTask marks a quest completed and credits its XP exactly once.
func (e *Engine) CompleteTask(id string) Result {
	i := e.questIndex(id)
	if i < 0 {
		return ignored(ReasonQuestNotFound)
	}
	q := &e.state.DailyQuests[i]
	if q.Completed {
		return ignored(ReasonAlreadyCompleted)
	}

	now := e.now()
	q.Completed = true
	q.CompletedAt = &now
	xp := q.XP

	r := Result{Outcome: Applied}
	r.merge(e.creditXP(xp))

	day := e.studyDay()
	day.TasksCompleted++
	day.XPEarned += xp

	e.state.TasksCompleted++
	r.NewBadges = append(r.NewBadges, e.unlockEligible(badges.TriggerTasks, e.state.TasksCompleted)...)

	r.merge(e.UpdateStreak())
	r.merge(e.checkLevelUp())
	return r
}

// Quests returns the quests in the given category, or all quests when
// category is empty.
func (e *Engine) Quests(category QuestCategory) []Quest {
	var out []Quest
	for _, q := range e.state.DailyQuests {
		if category == "" || q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

func (e *Engine) questIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range e.state.DailyQuests {
		if e.state.DailyQuests[i].ID == id {
			return i
		}
	}
	return -1
}
