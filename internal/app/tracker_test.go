package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepquest/internal/content"
	"github.com/abhisek/prepquest/internal/progress"
	"github.com/abhisek/prepquest/internal/roadmap"
	"github.com/abhisek/prepquest/internal/store"
	"github.com/abhisek/prepquest/internal/syncer"
)

var testNow = time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func openTracker(t *testing.T, s *store.Store, client syncer.Client) *Tracker {
	t.Helper()
	tr, err := Open(context.Background(), Options{
		Snapshots: s.SnapshotRepo(),
		Outbox:    s.OutboxRepo(),
		Sync:      client,
		Logger:    zerolog.Nop(),
		Clock:     func() time.Time { return testNow },
	})
	require.NoError(t, err)
	return tr
}

func TestOpenRequiresOutboxForSync(t *testing.T) {
	s := openTestStore(t)
	_, err := Open(context.Background(), Options{Snapshots: s.SnapshotRepo(), Sync: syncer.NewMockClient()})
	assert.Error(t, err)
}

func TestTrackerPersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	tr := openTracker(t, s, nil)
	r, err := tr.AddXP(ctx, 150)
	require.NoError(t, err)
	assert.True(t, r.LeveledUp)
	_, _, err = tr.AddQuest(ctx, progress.NewQuest{Title: "Solve 2 graphs", Category: progress.QuestCoding, XP: 40})
	require.NoError(t, err)
	tr.Close()

	reopened := openTracker(t, s, nil)
	defer reopened.Close()
	st := reopened.State()
	assert.Equal(t, 150, st.TotalXP)
	require.Len(t, st.DailyQuests, 1)
	assert.Equal(t, "Solve 2 graphs", st.DailyQuests[0].Title)
}

func TestTrackerIgnoredMutationIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	tr := openTracker(t, s, nil)
	defer tr.Close()

	r, err := tr.AddXP(ctx, -5)
	require.NoError(t, err)
	assert.Equal(t, progress.Ignored, r.Outcome)

	snap, err := s.SnapshotRepo().Latest(ctx, progress.StorageKey)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestTrackerPrunesSnapshots(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	tr := openTracker(t, s, nil)
	defer tr.Close()

	for i := 0; i < SnapshotsKept+5; i++ {
		_, err := tr.AddXP(ctx, 1)
		require.NoError(t, err)
	}

	var n int
	err := s.DB().QueryRow(`SELECT COUNT(*) FROM snapshots WHERE name = ?`, progress.StorageKey).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, SnapshotsKept, n)
}

func TestTrackerRecoversCorruptDocument(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	_, err := s.SnapshotRepo().Save(ctx, progress.StorageKey, []byte(`{"totalXP": "lots"`))
	require.NoError(t, err)
	_, err = s.SnapshotRepo().Save(ctx, ProblemStorageKey(content.InterviewSheet), []byte(`{"completed": 7}`))
	require.NoError(t, err)

	tr := openTracker(t, s, nil)
	defer tr.Close()
	assert.Zero(t, tr.State().TotalXP)
	p, err := tr.ProblemProgress(content.InterviewSheet)
	require.NoError(t, err)
	assert.Empty(t, p.Completed)
}

func TestToggleProblemCreditsAndRemovesXP(t *testing.T) {
	ctx := context.Background()
	tr := openTracker(t, openTestStore(t), nil)
	defer tr.Close()

	toggle, err := tr.ToggleProblem(ctx, content.InterviewSheet, "two-sum")
	require.NoError(t, err)
	assert.True(t, toggle.Completed)
	assert.Equal(t, 10, toggle.Result.XPDelta)
	assert.Contains(t, tr.State().CompletedTopics, TopicID(content.InterviewSheet, "two-sum"))

	p, err := tr.ProblemProgress(content.InterviewSheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"two-sum"}, p.Completed)
	assert.Equal(t, 10, p.EarnedXP)

	toggle, err = tr.ToggleProblem(ctx, content.InterviewSheet, "two-sum")
	require.NoError(t, err)
	assert.False(t, toggle.Completed)
	assert.Zero(t, tr.State().TotalXP)

	p, err = tr.ProblemProgress(content.InterviewSheet)
	require.NoError(t, err)
	assert.Empty(t, p.Completed)
}

func TestToggleProblemUnknownItem(t *testing.T) {
	tr := openTracker(t, openTestStore(t), nil)
	defer tr.Close()

	_, err := tr.ToggleProblem(context.Background(), content.InterviewSheet, "no-such-problem")
	assert.ErrorIs(t, err, content.ErrUnknownItem)
	_, err = tr.ToggleProblem(context.Background(), "nope", "two-sum")
	assert.ErrorIs(t, err, content.ErrUnknownSet)
}

func TestToggleProblemSyncsAndReconciles(t *testing.T) {
	ctx := context.Background()
	mock := syncer.NewMockClient()
	mock.SetCompleted(content.InterviewSheet, "valid-anagram")
	tr := openTracker(t, openTestStore(t), mock)

	_, err := tr.ToggleProblem(ctx, content.InterviewSheet, "two-sum")
	require.NoError(t, err)
	tr.Close()

	require.Len(t, mock.Posted, 1)
	assert.Equal(t, syncer.Delta{ItemID: "two-sum", XPDelta: 10, IsCompleting: true}, mock.Posted[0])

	p, err := tr.ProblemProgress(content.InterviewSheet)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"valid-anagram", "two-sum"}, p.Completed)
	assert.Equal(t, 10, tr.State().TotalXP, "reconcile must not touch xp")
}

func TestToggleProblemFollowsLocalXPAfterReconcile(t *testing.T) {
	ctx := context.Background()
	mock := syncer.NewMockClient()
	tr := openTracker(t, openTestStore(t), mock)

	_, err := tr.ToggleProblem(ctx, content.InterviewSheet, "two-sum")
	require.NoError(t, err)
	require.NoError(t, tr.Reconcile(content.InterviewSheet, nil))
	require.Equal(t, 10, tr.State().TotalXP)

	// The server no longer lists the item, but its XP is still held locally,
	// so the next toggle takes it back.
	toggle, err := tr.ToggleProblem(ctx, content.InterviewSheet, "two-sum")
	require.NoError(t, err)
	tr.Close()

	assert.False(t, toggle.Completed)
	assert.True(t, toggle.Result.Applied())
	assert.Zero(t, tr.State().TotalXP)
	require.Len(t, mock.Posted, 2)
	assert.Equal(t, syncer.Delta{ItemID: "two-sum", XPDelta: -10}, mock.Posted[1])

	p, err := tr.ProblemProgress(content.InterviewSheet)
	require.NoError(t, err)
	assert.NotContains(t, p.Completed, "two-sum")
}

func TestToggleProblemOfflineGoesToOutbox(t *testing.T) {
	ctx := context.Background()
	mock := syncer.NewMockClient()
	mock.FailNext(&syncer.ErrUnavailable{Err: errors.New("offline")})
	s := openTestStore(t)
	tr := openTracker(t, s, mock)

	_, err := tr.ToggleProblem(ctx, content.InterviewSheet, "two-sum")
	require.NoError(t, err)
	tr.Close()

	assert.Equal(t, 10, tr.State().TotalXP, "local state is kept when the backend is down")
	n, err := s.OutboxRepo().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSyncCommandsDisabled(t *testing.T) {
	tr := openTracker(t, openTestStore(t), nil)
	defer tr.Close()

	assert.False(t, tr.SyncEnabled())
	_, err := tr.FlushSync(context.Background())
	assert.ErrorIs(t, err, ErrSyncDisabled)
	_, err = tr.PullSync(context.Background(), content.InterviewSheet)
	assert.ErrorIs(t, err, ErrSyncDisabled)
}

func TestPullSyncReconciles(t *testing.T) {
	mock := syncer.NewMockClient()
	mock.SetCompleted(content.InterviewSheet, "two-sum", "valid-anagram")
	tr := openTracker(t, openTestStore(t), mock)
	defer tr.Close()

	got, err := tr.PullSync(context.Background(), content.InterviewSheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"two-sum", "valid-anagram"}, got)

	p, err := tr.ProblemProgress(content.InterviewSheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"two-sum", "valid-anagram"}, p.Completed)
}

func TestRoadmapLifecycle(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	tr := openTracker(t, s, nil)

	_, _, err := tr.CompleteRoadmapDay(ctx, 1)
	assert.ErrorIs(t, err, roadmap.ErrNoRoadmap)

	r, err := tr.GenerateRoadmap(ctx, roadmap.RoleBackend, roadmap.ThreeMonths, roadmap.CompanyFAANG)
	require.NoError(t, err)
	assert.Equal(t, 90, r.TotalDays)

	day, res, err := tr.CompleteRoadmapDay(ctx, 1)
	require.NoError(t, err)
	assert.True(t, res.Applied())
	assert.Equal(t, day.XP, tr.State().TotalXP)

	_, res, err = tr.CompleteRoadmapDay(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, progress.Ignored, res.Outcome)
	assert.Equal(t, day.XP, tr.State().TotalXP)

	_, _, err = tr.CompleteRoadmapDay(ctx, 91)
	assert.ErrorIs(t, err, roadmap.ErrDayOutOfRange)

	changed, err := tr.UncompleteRoadmapDay(ctx, 1)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, day.XP, tr.State().TotalXP, "undo keeps earned xp")

	_, _, err = tr.CompleteRoadmapDay(ctx, 2)
	require.NoError(t, err)
	tr.Close()

	reopened := openTracker(t, s, nil)
	defer reopened.Close()
	assert.Equal(t, []int{2}, reopened.Roadmap().CompletedDays)
	assert.Equal(t, 1, reopened.RoadmapProgress().CompletedCount)
}

func TestBadgesReportUnlockStatus(t *testing.T) {
	ctx := context.Background()
	tr := openTracker(t, openTestStore(t), nil)
	defer tr.Close()

	q, _, err := tr.AddQuest(ctx, progress.NewQuest{Title: "Warm up", Category: progress.QuestLearning, XP: 20})
	require.NoError(t, err)
	_, err = tr.CompleteTask(ctx, q.ID)
	require.NoError(t, err)

	var unlocked []string
	for _, b := range tr.Badges() {
		if b.Unlocked {
			unlocked = append(unlocked, b.ID)
		}
	}
	assert.Contains(t, unlocked, "first-task")
	assert.Equal(t, len(unlocked), tr.Stats().BadgesUnlocked)
}

func TestTrackerReset(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	tr := openTracker(t, s, nil)

	_, err := tr.ToggleProblem(ctx, content.InterviewSheet, "two-sum")
	require.NoError(t, err)
	_, err = tr.GenerateRoadmap(ctx, roadmap.RoleSDE, roadmap.SixMonths, roadmap.CompanyMixed)
	require.NoError(t, err)
	require.NoError(t, tr.Reset(ctx))
	tr.Close()

	reopened := openTracker(t, s, nil)
	defer reopened.Close()
	assert.Zero(t, reopened.State().TotalXP)
	assert.Nil(t, reopened.Roadmap().Roadmap)
	p, err := reopened.ProblemProgress(content.InterviewSheet)
	require.NoError(t, err)
	assert.Empty(t, p.Completed)
}
