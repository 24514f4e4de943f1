// Package httpapi exposes the Tracker as a local JSON API for dashboards.
package httpapi

import (
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/abhisek/prepquest/internal/app"
)

// Version is reported by /healthz.
var Version = "dev"

type handler struct {
	tracker  *app.Tracker
	validate *validator.Validate
	log      zerolog.Logger
}

// NewRouter returns the API handler with request ids, panic recovery and an
// access log installed.
func NewRouter(tr *app.Tracker, log zerolog.Logger) *chi.Mux {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	h := &handler{
		tracker:  tr,
		validate: v,
		log:      log.With().Str("component", "httpapi").Logger(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(accessLog(h.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": Version})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/state", h.getState)
		r.Get("/stats", h.getStats)
		r.Get("/badges", h.listBadges)
		r.Post("/xp", h.addXP)
		r.Post("/level-up/ack", h.ackLevelUp)
		r.Post("/reset", h.reset)

		r.Route("/quests", func(r chi.Router) {
			r.Get("/", h.listQuests)
			r.Post("/", h.addQuest)
			r.Delete("/{id}", h.removeQuest)
			r.Post("/{id}/complete", h.completeTask)
		})

		r.Post("/topics/{id}/complete", h.completeTopic)
		r.Post("/topics/{id}/uncomplete", h.uncompleteTopic)
		r.Put("/hours", h.updateHours)
		r.Post("/pomodoros", h.addPomodoro)
		r.Post("/practice/{id}", h.practice)

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Post("/", h.addNote)
			r.Patch("/{id}", h.updateNote)
			r.Delete("/{id}", h.deleteNote)
		})

		r.Route("/goal", func(r chi.Router) {
			r.Get("/", h.getGoal)
			r.Put("/", h.setGoal)
			r.Post("/progress", h.goalProgress)
		})

		r.Route("/roadmap", func(r chi.Router) {
			r.Get("/", h.getRoadmap)
			r.Post("/", h.generateRoadmap)
			r.Get("/progress", h.roadmapProgress)
			r.Post("/days/{day}/complete", h.completeDay)
			r.Delete("/days/{day}/complete", h.uncompleteDay)
		})

		r.Route("/problems", func(r chi.Router) {
			r.Get("/", h.listSets)
			r.Get("/{set}", h.getSet)
			r.Post("/{set}/{item}/toggle", h.toggleProblem)
		})

		r.Route("/sync", func(r chi.Router) {
			r.Get("/pending", h.syncPending)
			r.Post("/flush", h.syncFlush)
			r.Post("/pull/{set}", h.syncPull)
		})
	})
	return r
}

// accessLog writes one line per request once the response is complete.
func accessLog(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Info().
					Str("request_id", middleware.GetReqID(r.Context())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", ww.Status()).
					Int("bytes", ww.BytesWritten()).
					Dur("latency", time.Since(start)).
					Msg("request")
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
