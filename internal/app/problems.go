package app

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/abhisek/prepquest/internal/content"
	"github.com/abhisek/prepquest/internal/docschema"
	"github.com/abhisek/prepquest/internal/progress"
	"github.com/abhisek/prepquest/internal/syncer"
)

// ProblemStorageKey is the storage name of a problem set's completion list.
func ProblemStorageKey(set string) string {
	return "problem-progress/" + set
}

// TopicID is the engine topic id a problem-set item completes.
func TopicID(set, itemID string) string {
	return set + "/" + itemID
}

type problemDoc struct {
	Completed []string `json:"completed"`
}

var problemSchema = &docschema.Schema{
	Name: "problem-progress",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"completed"},
		"properties": map[string]any{
			"completed": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	},
}

func decodeProblems(raw []byte) (completed []string, recovered bool, err error) {
	if len(raw) == 0 {
		return []string{}, false, nil
	}
	if err := docschema.Validate(problemSchema, raw); err != nil {
		return []string{}, true, err
	}
	var doc problemDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return []string{}, true, fmt.Errorf("unmarshal problem progress: %w", err)
	}
	return uniq(doc.Completed), false, nil
}

func uniq(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// ProblemToggle is the outcome of toggling one problem-set item.
type ProblemToggle struct {
	Set       string          `json:"set"`
	ItemID    string          `json:"itemId"`
	Completed bool            `json:"completed"`
	Result    progress.Result `json:"result"`
}

// ToggleProblem flips the completion of one item. Completing credits the
// item's XP through the matching engine topic; un-completing removes it.
// The direction follows the engine topic, not the set list, since a
// reconcile can change the list without touching XP. The list is then made
// to agree and the delta is queued for sync after local state is saved.
func (t *Tracker) ToggleProblem(ctx context.Context, set, itemID string) (ProblemToggle, error) {
	item, err := t.content.Item(set, itemID)
	if err != nil {
		return ProblemToggle{}, err
	}

	t.mu.Lock()
	list := t.problems[set]
	topic := TopicID(set, itemID)
	completing := !t.engine.IsTopicCompleted(topic)

	var r progress.Result
	if completing {
		r = t.engine.CompleteTopic(topic, item.XP)
		if !slices.Contains(list, itemID) {
			list = append(list, itemID)
		}
	} else {
		r = t.engine.UncompleteTopic(topic, item.XP)
		list = slices.DeleteFunc(list, func(id string) bool { return id == itemID })
	}
	t.problems[set] = list

	if r.Applied() {
		err = t.saveProgressLocked(ctx)
	}
	if err == nil {
		err = t.saveProblemsLocked(ctx, set)
	}
	t.mu.Unlock()

	toggle := ProblemToggle{Set: set, ItemID: itemID, Completed: completing, Result: r}
	if err != nil {
		return toggle, err
	}
	t.logResult("toggle_problem", r)

	if t.sync != nil {
		xp := item.XP
		if !completing {
			xp = -xp
		}
		job := syncer.Job{Set: set, Delta: syncer.Delta{ItemID: itemID, XPDelta: xp, IsCompleting: completing}}
		if err := t.sync.Enqueue(job); err != nil {
			t.log.Warn().Err(err).Str("set", set).Str("item", itemID).Msg("sync enqueue failed")
		}
	}
	return toggle, nil
}

// ProblemSetProgress is a set with its completion list and XP totals.
type ProblemSetProgress struct {
	Set       content.Set `json:"set"`
	Completed []string    `json:"completed"`
	EarnedXP  int         `json:"earnedXp"`
	TotalXP   int         `json:"totalXp"`
}

// ProblemProgress reports completion of one set.
func (t *Tracker) ProblemProgress(set string) (ProblemSetProgress, error) {
	s, err := t.content.Set(set)
	if err != nil {
		return ProblemSetProgress{}, err
	}

	t.mu.Lock()
	completed := slices.Clone(t.problems[set])
	t.mu.Unlock()

	p := ProblemSetProgress{Set: s, Completed: completed, TotalXP: s.TotalXP()}
	for _, id := range completed {
		if it, ok := s.Item(id); ok {
			p.EarnedXP += it.XP
		}
	}
	return p, nil
}

// Reconcile replaces a set's completion list with the server's view. XP and
// engine topics are left as they are. It is called from the sync worker.
func (t *Tracker) Reconcile(set string, completed []string) error {
	if _, err := t.content.Set(set); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.problems[set] = uniq(completed)
	return t.saveProblemsLocked(context.Background(), set)
}

// FlushSync replays the outbox. It must not be called with t.mu held since
// successful deliveries reconcile through the tracker.
func (t *Tracker) FlushSync(ctx context.Context) (int, error) {
	if t.sync == nil {
		return 0, ErrSyncDisabled
	}
	return t.sync.Flush(ctx)
}

// PullSync fetches the server's completion list for set and reconciles it.
func (t *Tracker) PullSync(ctx context.Context, set string) ([]string, error) {
	if t.sync == nil {
		return nil, ErrSyncDisabled
	}
	if _, err := t.content.Set(set); err != nil {
		return nil, err
	}
	return t.sync.Pull(ctx, set)
}

// PendingSync counts deltas waiting in the outbox.
func (t *Tracker) PendingSync(ctx context.Context) (int, error) {
	if t.sync == nil {
		return 0, ErrSyncDisabled
	}
	return t.sync.Pending(ctx)
}

func (t *Tracker) saveProblemsLocked(ctx context.Context, set string) error {
	completed := t.problems[set]
	if completed == nil {
		completed = []string{}
	}
	data, err := json.Marshal(problemDoc{Completed: completed})
	if err != nil {
		return fmt.Errorf("marshal problem progress: %w", err)
	}
	return t.save(ctx, ProblemStorageKey(set), data)
}
