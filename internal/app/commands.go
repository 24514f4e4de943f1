package app

import (
	"context"

	"github.com/abhisek/prepquest/internal/progress"
	"github.com/abhisek/prepquest/internal/roadmap"
)

func (t *Tracker) AddXP(ctx context.Context, amount int) (progress.Result, error) {
	return t.mutate(ctx, "add_xp", func(e *progress.Engine) progress.Result {
		return e.AddXP(amount)
	})
}

func (t *Tracker) AddQuest(ctx context.Context, q progress.NewQuest) (progress.Quest, progress.Result, error) {
	var quest progress.Quest
	r, err := t.mutate(ctx, "add_quest", func(e *progress.Engine) progress.Result {
		var r progress.Result
		quest, r = e.AddQuest(q)
		return r
	})
	return quest, r, err
}

func (t *Tracker) RemoveQuest(ctx context.Context, id string) (progress.Result, error) {
	return t.mutate(ctx, "remove_quest", func(e *progress.Engine) progress.Result {
		return e.RemoveQuest(id)
	})
}

func (t *Tracker) CompleteTask(ctx context.Context, id string) (progress.Result, error) {
	return t.mutate(ctx, "complete_task", func(e *progress.Engine) progress.Result {
		return e.CompleteTask(id)
	})
}

// Quests lists quests, optionally filtered by category.
func (t *Tracker) Quests(category progress.QuestCategory) []progress.Quest {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.engine.Quests(category)
}

func (t *Tracker) CompleteTopic(ctx context.Context, topicID string, xp int) (progress.Result, error) {
	return t.mutate(ctx, "complete_topic", func(e *progress.Engine) progress.Result {
		return e.CompleteTopic(topicID, xp)
	})
}

func (t *Tracker) UncompleteTopic(ctx context.Context, topicID string, xp int) (progress.Result, error) {
	return t.mutate(ctx, "uncomplete_topic", func(e *progress.Engine) progress.Result {
		return e.UncompleteTopic(topicID, xp)
	})
}

func (t *Tracker) UpdateHoursStudied(ctx context.Context, hours float64) (progress.Result, error) {
	return t.mutate(ctx, "update_hours", func(e *progress.Engine) progress.Result {
		return e.UpdateHoursStudied(hours)
	})
}

func (t *Tracker) AddPomodoroSession(ctx context.Context, p progress.NewPomodoro) (progress.PomodoroSession, progress.Result, error) {
	var session progress.PomodoroSession
	r, err := t.mutate(ctx, "add_pomodoro", func(e *progress.Engine) progress.Result {
		var r progress.Result
		session, r = e.AddPomodoroSession(p)
		return r
	})
	return session, r, err
}

func (t *Tracker) AddNote(ctx context.Context, n progress.NewNote) (progress.Note, progress.Result, error) {
	var note progress.Note
	r, err := t.mutate(ctx, "add_note", func(e *progress.Engine) progress.Result {
		var r progress.Result
		note, r = e.AddNote(n)
		return r
	})
	return note, r, err
}

func (t *Tracker) UpdateNote(ctx context.Context, id string, u progress.NoteUpdate) (progress.Note, progress.Result, error) {
	var note progress.Note
	r, err := t.mutate(ctx, "update_note", func(e *progress.Engine) progress.Result {
		var r progress.Result
		note, r = e.UpdateNote(id, u)
		return r
	})
	return note, r, err
}

func (t *Tracker) DeleteNote(ctx context.Context, id string) (progress.Result, error) {
	return t.mutate(ctx, "delete_note", func(e *progress.Engine) progress.Result {
		return e.DeleteNote(id)
	})
}

// Notes lists notes, optionally filtered by category.
func (t *Tracker) Notes(category progress.NoteCategory) []progress.Note {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.engine.Notes(category)
}

func (t *Tracker) SetWeeklyGoal(ctx context.Context, g progress.NewGoal) (progress.WeeklyGoal, progress.Result, error) {
	var goal progress.WeeklyGoal
	r, err := t.mutate(ctx, "set_goal", func(e *progress.Engine) progress.Result {
		var r progress.Result
		goal, r = e.SetWeeklyGoal(g)
		return r
	})
	return goal, r, err
}

func (t *Tracker) UpdateGoalProgress(ctx context.Context, metric progress.GoalMetric, amount float64) (progress.Result, error) {
	return t.mutate(ctx, "goal_progress", func(e *progress.Engine) progress.Result {
		return e.UpdateGoalProgress(metric, amount)
	})
}

// CurrentGoal returns the current weekly goal, if any.
func (t *Tracker) CurrentGoal() (progress.WeeklyGoal, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.engine.CurrentGoal()
}

func (t *Tracker) MarkQuestionPracticed(ctx context.Context, questionID string) (progress.Result, error) {
	return t.mutate(ctx, "practice", func(e *progress.Engine) progress.Result {
		return e.MarkQuestionPracticed(questionID)
	})
}

func (t *Tracker) AcknowledgeLevelUp(ctx context.Context) (progress.Result, error) {
	return t.mutate(ctx, "ack_level_up", func(e *progress.Engine) progress.Result {
		return e.AcknowledgeLevelUp()
	})
}

// Reset discards all progress, the roadmap and every problem-set list.
// Deltas already in the sync outbox are left alone.
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.engine.Reset()
	t.roadmap = roadmap.NewState()
	if err := t.saveProgressLocked(ctx); err != nil {
		return err
	}
	if err := t.saveRoadmapLocked(ctx); err != nil {
		return err
	}
	for set := range t.problems {
		t.problems[set] = []string{}
		if err := t.saveProblemsLocked(ctx, set); err != nil {
			return err
		}
	}
	t.log.Info().Msg("progress reset")
	return nil
}
