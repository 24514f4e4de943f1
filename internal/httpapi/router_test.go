package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepquest/internal/app"
	"github.com/abhisek/prepquest/internal/progress"
	"github.com/abhisek/prepquest/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	tr, err := app.Open(context.Background(), app.Options{
		Snapshots: s.SnapshotRepo(),
		Logger:    zerolog.Nop(),
		Clock:     func() time.Time { return time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	t.Cleanup(tr.Close)

	srv := httptest.NewServer(NewRouter(tr, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp := do(t, srv, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAddXPAppliedAndIgnored(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/v1/xp", map[string]int{"amount": 150})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "applied", got["outcome"])
	assert.Equal(t, true, got["leveledUp"])

	resp = do(t, srv, http.MethodPost, "/v1/xp", map[string]int{"amount": 0})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got = decodeBody[map[string]any](t, resp)
	assert.Equal(t, "ignored", got["outcome"])
	assert.Equal(t, progress.ReasonNonPositiveAmount, got["reason"])

	resp = do(t, srv, http.MethodGet, "/v1/state", nil)
	st := decodeBody[progress.State](t, resp)
	assert.Equal(t, 150, st.TotalXP)
}

func TestQuestValidation(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/v1/quests", map[string]any{"title": "", "category": "cooking", "xp": 10})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decodeBody[ErrorResponse](t, resp)
	assert.Equal(t, CodeBadRequest, e.Code)
	assert.Contains(t, e.Message, "title")
	assert.Contains(t, e.Message, "category")
	assert.NotEmpty(t, e.RequestID)

	resp = do(t, srv, http.MethodPost, "/v1/quests", map[string]any{"title": "x", "category": "coding", "xp": 10, "extra": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQuestFlow(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/v1/quests", map[string]any{"title": "Solve 3 DP", "category": "coding", "xp": 40})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decodeBody[struct {
		Outcome string         `json:"outcome"`
		Data    progress.Quest `json:"data"`
	}](t, resp)
	require.Equal(t, "applied", created.Outcome)
	id := created.Data.ID
	require.NotEmpty(t, id)

	resp = do(t, srv, http.MethodPost, "/v1/quests/"+id+"/complete", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	done := decodeBody[progress.Result](t, resp)
	assert.Equal(t, 40, done.XPDelta)
	assert.Contains(t, done.NewBadges, "first-task")

	resp = do(t, srv, http.MethodPost, "/v1/quests/"+id+"/complete", nil)
	again := decodeBody[progress.Result](t, resp)
	assert.Equal(t, progress.Ignored, again.Outcome)

	resp = do(t, srv, http.MethodGet, "/v1/quests?category=coding", nil)
	list := decodeBody[struct {
		Items []progress.Quest `json:"items"`
	}](t, resp)
	assert.Len(t, list.Items, 1)

	resp = do(t, srv, http.MethodGet, "/v1/quests?category=cooking", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRoadmapEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodGet, "/v1/roadmap", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = do(t, srv, http.MethodPost, "/v1/roadmap", map[string]string{"role": "pilot", "timeframe": "3_months", "companyType": "FAANG"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, srv, http.MethodPost, "/v1/roadmap", map[string]string{"role": "frontend", "timeframe": "3_months", "companyType": "Startups"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, srv, http.MethodPost, "/v1/roadmap/days/1/complete", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decodeBody[progress.Result](t, resp)
	assert.Equal(t, progress.Applied, res.Outcome)
	assert.Positive(t, res.XPDelta)

	resp = do(t, srv, http.MethodPost, "/v1/roadmap/days/500/complete", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, srv, http.MethodPost, "/v1/roadmap/days/abc/complete", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, srv, http.MethodDelete, "/v1/roadmap/days/1/complete", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, progress.Applied, decodeBody[progress.Result](t, resp).Outcome)

	resp = do(t, srv, http.MethodDelete, "/v1/roadmap/days/1/complete", nil)
	assert.Equal(t, progress.Ignored, decodeBody[progress.Result](t, resp).Outcome)
}

func TestProblemToggleEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/v1/problems/interview-sheet/two-sum/toggle", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	toggle := decodeBody[app.ProblemToggle](t, resp)
	assert.True(t, toggle.Completed)
	assert.Equal(t, 10, toggle.Result.XPDelta)

	resp = do(t, srv, http.MethodPost, "/v1/problems/interview-sheet/not-a-problem/toggle", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, "/v1/problems/interview-sheet", nil)
	p := decodeBody[app.ProblemSetProgress](t, resp)
	assert.Equal(t, []string{"two-sum"}, p.Completed)
}

func TestGoalEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodGet, "/v1/goal", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, srv, http.MethodPut, "/v1/goal", map[string]any{"weekStart": "12/03/2024", "problemsTarget": 1, "hoursTarget": 1, "topicsTarget": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, srv, http.MethodPut, "/v1/goal", map[string]any{"problemsTarget": 5, "hoursTarget": 2, "topicsTarget": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, srv, http.MethodPost, "/v1/goal/progress", map[string]any{"metric": "problems", "amount": 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, "/v1/goal", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	g := decodeBody[progress.WeeklyGoal](t, resp)
	assert.Equal(t, "2024-03-11", g.WeekStart)
	assert.Equal(t, 5, g.ProblemsCompleted)
}

func TestSyncDisabled(t *testing.T) {
	srv := newTestServer(t)
	resp := do(t, srv, http.MethodPost, "/v1/sync/flush", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, CodeSyncDisabled, decodeBody[ErrorResponse](t, resp).Code)
}
