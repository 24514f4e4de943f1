package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/prepquest/internal/progress"
	"github.com/abhisek/prepquest/internal/roadmap"
)

const maxPayloadBytes = 1 << 20

type xpRequest struct {
	Amount int `json:"amount"`
}

type questRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Category string `json:"category" validate:"required,oneof=coding building learning"`
	XP       int    `json:"xp" validate:"gt=0"`
}

type topicRequest struct {
	XP int `json:"xp" validate:"gte=0"`
}

type hoursRequest struct {
	Hours float64 `json:"hours" validate:"gte=0"`
}

type pomodoroRequest struct {
	StartTime time.Time `json:"startTime" validate:"required"`
	Duration  int       `json:"duration" validate:"gt=0"`
	Completed bool      `json:"completed"`
	XPEarned  int       `json:"xpEarned" validate:"gte=0"`
}

type noteRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"max=20000"`
	Category string `json:"category" validate:"required,oneof=dsa system-design behavioral development general"`
}

type noteUpdateRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content  *string `json:"content" validate:"omitempty,max=20000"`
	Category *string `json:"category" validate:"omitempty,oneof=dsa system-design behavioral development general"`
}

type goalRequest struct {
	WeekStart      string  `json:"weekStart" validate:"omitempty,datetime=2006-01-02"`
	ProblemsTarget int     `json:"problemsTarget" validate:"gt=0"`
	HoursTarget    float64 `json:"hoursTarget" validate:"gt=0"`
	TopicsTarget   int     `json:"topicsTarget" validate:"gt=0"`
}

type goalProgressRequest struct {
	Metric string  `json:"metric" validate:"required,oneof=problems hours topics"`
	Amount float64 `json:"amount"`
}

type roadmapRequest struct {
	Role        string `json:"role" validate:"required,oneof=full-stack frontend backend sde"`
	Timeframe   string `json:"timeframe" validate:"required,oneof=3_months 6_months"`
	CompanyType string `json:"companyType" validate:"required,oneof=FAANG Startups Service_Based Mixed"`
}

// decode reads a JSON body into dst and validates it. It writes the error
// response itself and reports false on failure.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxPayloadBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, r, CodeBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, r, CodeBadRequest, validationMessage(err))
		return false
	}
	return true
}

func (h *handler) getState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.State())
}

func (h *handler) getStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.Stats())
}

func (h *handler) listBadges(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": h.tracker.Badges()})
}

func (h *handler) addXP(w http.ResponseWriter, r *http.Request) {
	var req xpRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.tracker.AddXP(r.Context(), req.Amount)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, nil)
}

func (h *handler) ackLevelUp(w http.ResponseWriter, r *http.Request) {
	res, err := h.tracker.AcknowledgeLevelUp(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, nil)
}

func (h *handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := h.tracker.Reset(r.Context()); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) listQuests(w http.ResponseWriter, r *http.Request) {
	cat := progress.QuestCategory(r.URL.Query().Get("category"))
	if cat != "" && !cat.Valid() {
		writeError(w, r, CodeBadRequest, "invalid category")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": h.tracker.Quests(cat)})
}

func (h *handler) addQuest(w http.ResponseWriter, r *http.Request) {
	var req questRequest
	if !h.decode(w, r, &req) {
		return
	}
	q, res, err := h.tracker.AddQuest(r.Context(), progress.NewQuest{
		Title:    req.Title,
		Category: progress.QuestCategory(req.Category),
		XP:       req.XP,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, q)
}

func (h *handler) removeQuest(w http.ResponseWriter, r *http.Request) {
	res, err := h.tracker.RemoveQuest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, nil)
}

func (h *handler) completeTask(w http.ResponseWriter, r *http.Request) {
	res, err := h.tracker.CompleteTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, nil)
}

func (h *handler) completeTopic(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.tracker.CompleteTopic(r.Context(), chi.URLParam(r, "id"), req.XP)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, nil)
}

func (h *handler) uncompleteTopic(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.tracker.UncompleteTopic(r.Context(), chi.URLParam(r, "id"), req.XP)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, nil)
}

func (h *handler) updateHours(w http.ResponseWriter, r *http.Request) {
	var req hoursRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.tracker.UpdateHoursStudied(r.Context(), req.Hours)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, nil)
}

func (h *handler) addPomodoro(w http.ResponseWriter, r *http.Request) {
	var req pomodoroRequest
	if !h.decode(w, r, &req) {
		return
	}
	s, res, err := h.tracker.AddPomodoroSession(r.Context(), progress.NewPomodoro{
		StartTime: req.StartTime,
		Duration:  req.Duration,
		Completed: req.Completed,
		XPEarned:  req.XPEarned,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, s)
}

func (h *handler) practice(w http.ResponseWriter, r *http.Request) {
	res, err := h.tracker.MarkQuestionPracticed(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, nil)
}

func (h *handler) listNotes(w http.ResponseWriter, r *http.Request) {
	cat := progress.NoteCategory(r.URL.Query().Get("category"))
	if cat != "" && !cat.Valid() {
		writeError(w, r, CodeBadRequest, "invalid category")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": h.tracker.Notes(cat)})
}

func (h *handler) addNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !h.decode(w, r, &req) {
		return
	}
	n, res, err := h.tracker.AddNote(r.Context(), progress.NewNote{
		Title:    req.Title,
		Content:  req.Content,
		Category: progress.NoteCategory(req.Category),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, n)
}

func (h *handler) updateNote(w http.ResponseWriter, r *http.Request) {
	var req noteUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}
	u := progress.NoteUpdate{Title: req.Title, Content: req.Content}
	if req.Category != nil {
		c := progress.NoteCategory(*req.Category)
		u.Category = &c
	}
	n, res, err := h.tracker.UpdateNote(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, n)
}

func (h *handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	res, err := h.tracker.DeleteNote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, nil)
}

func (h *handler) getGoal(w http.ResponseWriter, r *http.Request) {
	g, ok := h.tracker.CurrentGoal()
	if !ok {
		writeError(w, r, CodeNotFound, "no weekly goal set")
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (h *handler) setGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !h.decode(w, r, &req) {
		return
	}
	ng := progress.NewGoal{
		ProblemsTarget: req.ProblemsTarget,
		HoursTarget:    req.HoursTarget,
		TopicsTarget:   req.TopicsTarget,
	}
	if req.WeekStart != "" {
		// Already checked by the datetime validator.
		ng.WeekStart, _ = time.Parse(time.DateOnly, req.WeekStart)
	}
	g, res, err := h.tracker.SetWeeklyGoal(r.Context(), ng)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, g)
}

func (h *handler) goalProgress(w http.ResponseWriter, r *http.Request) {
	var req goalProgressRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.tracker.UpdateGoalProgress(r.Context(), progress.GoalMetric(req.Metric), req.Amount)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, nil)
}

func (h *handler) getRoadmap(w http.ResponseWriter, r *http.Request) {
	st := h.tracker.Roadmap()
	if st.Roadmap == nil {
		h.respondError(w, r, roadmap.ErrNoRoadmap)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *handler) generateRoadmap(w http.ResponseWriter, r *http.Request) {
	var req roadmapRequest
	if !h.decode(w, r, &req) {
		return
	}
	rm, err := h.tracker.GenerateRoadmap(r.Context(),
		roadmap.Role(req.Role), roadmap.Timeframe(req.Timeframe), roadmap.CompanyType(req.CompanyType))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rm)
}

func (h *handler) roadmapProgress(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.RoadmapProgress())
}

func dayParam(r *http.Request) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, "day"))
	return n, err == nil
}

func (h *handler) completeDay(w http.ResponseWriter, r *http.Request) {
	n, ok := dayParam(r)
	if !ok {
		writeError(w, r, CodeBadRequest, "day must be an integer")
		return
	}
	day, res, err := h.tracker.CompleteRoadmapDay(r.Context(), n)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeResult(w, res, day)
}

func (h *handler) uncompleteDay(w http.ResponseWriter, r *http.Request) {
	n, ok := dayParam(r)
	if !ok {
		writeError(w, r, CodeBadRequest, "day must be an integer")
		return
	}
	changed, err := h.tracker.UncompleteRoadmapDay(r.Context(), n)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	res := progress.Result{Outcome: progress.Applied}
	if !changed {
		res = progress.Result{Outcome: progress.Ignored, Reason: progress.ReasonNotCompleted}
	}
	writeResult(w, res, nil)
}

func (h *handler) listSets(w http.ResponseWriter, r *http.Request) {
	names := h.tracker.Content().Names()
	items := make([]any, 0, len(names))
	for _, name := range names {
		p, err := h.tracker.ProblemProgress(name)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		items = append(items, map[string]any{
			"name":      p.Set.Name,
			"title":     p.Set.Title,
			"total":     len(p.Set.Items),
			"completed": len(p.Completed),
			"earnedXp":  p.EarnedXP,
			"totalXp":   p.TotalXP,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *handler) getSet(w http.ResponseWriter, r *http.Request) {
	p, err := h.tracker.ProblemProgress(chi.URLParam(r, "set"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *handler) toggleProblem(w http.ResponseWriter, r *http.Request) {
	t, err := h.tracker.ToggleProblem(r.Context(), chi.URLParam(r, "set"), chi.URLParam(r, "item"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *handler) syncPending(w http.ResponseWriter, r *http.Request) {
	n, err := h.tracker.PendingSync(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"pending": n})
}

func (h *handler) syncFlush(w http.ResponseWriter, r *http.Request) {
	n, err := h.tracker.FlushSync(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"delivered": n})
}

func (h *handler) syncPull(w http.ResponseWriter, r *http.Request) {
	completed, err := h.tracker.PullSync(r.Context(), chi.URLParam(r, "set"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"completed": completed})
}
