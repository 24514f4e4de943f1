package app

import (
	"context"

	"github.com/abhisek/prepquest/internal/progress"
	"github.com/abhisek/prepquest/internal/roadmap"
)

// GenerateRoadmap builds a new roadmap and replaces the current one,
// clearing its completed days. XP already earned is kept.
func (t *Tracker) GenerateRoadmap(ctx context.Context, role roadmap.Role, timeframe roadmap.Timeframe, company roadmap.CompanyType) (*roadmap.Roadmap, error) {
	r, err := t.gen.Generate(role, timeframe, company)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.roadmap.Replace(r)
	if err := t.saveRoadmapLocked(ctx); err != nil {
		return nil, err
	}
	t.log.Info().
		Str("role", string(role)).
		Str("timeframe", string(timeframe)).
		Str("company", string(company)).
		Int("days", r.TotalDays).
		Msg("roadmap generated")
	return r, nil
}

// Roadmap returns a copy of the roadmap state.
func (t *Tracker) Roadmap() roadmap.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.roadmap.Clone()
}

// RoadmapProgress summarises completion of the current roadmap.
func (t *Tracker) RoadmapProgress() roadmap.Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.roadmap.Progress()
}

// CompleteRoadmapDay marks day n complete and credits the day's XP. Completing
// an already completed day is ignored.
func (t *Tracker) CompleteRoadmapDay(ctx context.Context, n int) (roadmap.Day, progress.Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	changed, err := t.roadmap.CompleteDay(n)
	if err != nil {
		return roadmap.Day{}, progress.Result{}, err
	}
	day, _ := t.roadmap.Roadmap.Day(n)
	if !changed {
		return day, progress.Result{Outcome: progress.Ignored, Reason: progress.ReasonAlreadyCompleted}, nil
	}

	r := t.engine.AddXP(day.XP)
	if err := t.saveRoadmapLocked(ctx); err != nil {
		return day, r, err
	}
	if r.Applied() {
		if err := t.saveProgressLocked(ctx); err != nil {
			return day, r, err
		}
	}
	t.logResult("complete_day", r)
	return day, r, nil
}

// UncompleteRoadmapDay clears day n. XP credited for it is not taken back.
// It reports false when the day was not complete.
func (t *Tracker) UncompleteRoadmapDay(ctx context.Context, n int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	changed, err := t.roadmap.UncompleteDay(n)
	if err != nil || !changed {
		return false, err
	}
	return true, t.saveRoadmapLocked(ctx)
}
