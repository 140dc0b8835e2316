package schedule

import "schedule-interpreter/internal/model"

// History is the linear list of committed documents. Committing after an
// undo drops the redo tail. It is not safe for concurrent use.
type History struct {
	versions []model.Document
	pos      int
}

// NewHistory starts a history at the initial document.
func NewHistory(initial model.Document) *History {
	return &History{versions: []model.Document{initial}}
}

// Current is the single accessor for the live document.
func (h *History) Current() model.Document {
	return h.versions[h.pos]
}

// Commit appends doc as the new current version.
func (h *History) Commit(doc model.Document) {
	h.versions = append(h.versions[:h.pos+1], doc)
	h.pos++
}

// Undo steps back one version.
func (h *History) Undo() (model.Document, bool) {
	if h.pos == 0 {
		return h.Current(), false
	}
	h.pos--
	return h.Current(), true
}

// Redo steps forward one version.
func (h *History) Redo() (model.Document, bool) {
	if h.pos == len(h.versions)-1 {
		return h.Current(), false
	}
	h.pos++
	return h.Current(), true
}

// Reset discards all versions and starts over from doc.
func (h *History) Reset(doc model.Document) {
	h.versions = []model.Document{doc}
	h.pos = 0
}

func (h *History) Len() int      { return len(h.versions) }
func (h *History) Position() int { return h.pos }
func (h *History) CanUndo() bool { return h.pos > 0 }
func (h *History) CanRedo() bool { return h.pos < len(h.versions)-1 }
