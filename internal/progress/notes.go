package progress

import (
	"strings"

	"github.com/abhisek/prepquest/internal/badges"
)

// AddNote creates a note and evaluates note-count badges.
func (e *Engine) AddNote(n NewNote) (Note, Result) {
	title := strings.TrimSpace(n.Title)
	if title == "" || !n.Category.Valid() {
		return Note{}, ignored(ReasonInvalidNote)
	}
	now := e.now()
	note := Note{
		ID:        e.newID(),
		Title:     title,
		Content:   n.Content,
		Category:  n.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	e.state.Notes = append(e.state.Notes, note)

	r := Result{Outcome: Applied}
	r.NewBadges = e.unlockEligible(badges.TriggerNotes, len(e.state.Notes))
	return note, r
}

// UpdateNote edits the given fields of a note and refreshes UpdatedAt.
func (e *Engine) UpdateNote(id string, u NoteUpdate) (Note, Result) {
	i := e.noteIndex(id)
	if i < 0 {
		return Note{}, ignored(ReasonNoteNotFound)
	}
	n := e.state.Notes[i]
	if u.Title != nil {
		n.Title = strings.TrimSpace(*u.Title)
	}
	if u.Content != nil {
		n.Content = *u.Content
	}
	if u.Category != nil {
		n.Category = *u.Category
	}
	if n.Title == "" || !n.Category.Valid() {
		return Note{}, ignored(ReasonInvalidNote)
	}
	n.UpdatedAt = e.now()
	e.state.Notes[i] = n
	return n, Result{Outcome: Applied}
}

// DeleteNote removes a note. Note badges already earned are kept.
func (e *Engine) DeleteNote(id string) Result {
	i := e.noteIndex(id)
	if i < 0 {
		return ignored(ReasonNoteNotFound)
	}
	e.state.Notes = append(e.state.Notes[:i], e.state.Notes[i+1:]...)
	return Result{Outcome: Applied}
}

// Notes returns the notes in the given category, or all notes when
// category is empty.
func (e *Engine) Notes(category NoteCategory) []Note {
	var out []Note
	for _, n := range e.state.Notes {
		if category == "" || n.Category == category {
			out = append(out, n)
		}
	}
	return out
}

func (e *Engine) noteIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range e.state.Notes {
		if e.state.Notes[i].ID == id {
			return i
		}
	}
	return -1
}
