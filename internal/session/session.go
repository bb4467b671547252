// Package session tracks the open tabs of a writing session: which
// one is active, which files they are bound to, and when the last
// save happened. It owns no terminal state; the UI layer holds the
// widgets and feeds events down here.
package session

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// saveDebounce is the double-press window on the save command. A
// second save inside it reroutes to save-as so the writer can fork
// the note under a new name.
const saveDebounce = 2 * time.Second

// Document is the text buffer behind a tab. The UI supplies a widget
// implementation; tests use a plain string box.
type Document interface {
	Text() string
	SetText(string)
}

// Tab is one open note.
type Tab struct {
	ID    string
	Title string
	// Path is the bound file, empty while the note is unsaved.
	Path  string
	Dirty bool
	Doc   Document
}

// SavePlan tells the caller how to carry out a requested save.
type SavePlan int

const (
	// SaveToPath writes the active tab to its bound file.
	SaveToPath SavePlan = iota
	// SaveNeedsName routes through the save-as prompt first.
	SaveNeedsName
)

// Session is the ordered set of open tabs.
type Session struct {
	tabs     []*Tab
	active   int
	counter  int
	lastSave time.Time
	newDoc   func() Document
}

func New(newDoc func() Document) *Session {
	return &Session{newDoc: newDoc}
}

// NewTab opens an empty unsaved note titled with the current clock.
func (s *Session) NewTab(now time.Time) *Tab {
	s.counter++
	tab := &Tab{
		ID:    fmt.Sprintf("tab%d", s.counter),
		Title: "Note " + now.Format("1504-0201"),
		Doc:   s.newDoc(),
	}
	s.tabs = append(s.tabs, tab)
	s.active = len(s.tabs) - 1
	return tab
}

// OpenFile opens a note bound to path with the given contents. The
// tab takes the file's stem as its title.
func (s *Session) OpenFile(path, text string) *Tab {
	s.counter++
	tab := &Tab{
		ID:    fmt.Sprintf("tab%d", s.counter),
		Title: stem(path),
		Path:  path,
		Doc:   s.newDoc(),
	}
	tab.Doc.SetText(text)
	s.tabs = append(s.tabs, tab)
	s.active = len(s.tabs) - 1
	return tab
}

// Close removes the identified tab. Closing the final tab immediately
// opens a fresh one so the session never goes empty. Reports whether
// the id matched.
func (s *Session) Close(id string, now time.Time) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.tabs = append(s.tabs[:idx], s.tabs[idx+1:]...)
	if len(s.tabs) == 0 {
		s.NewTab(now)
		return true
	}
	switch {
	case idx == s.active:
		if idx > 0 {
			s.active = idx - 1
		} else {
			s.active = 0
		}
	case idx < s.active:
		s.active--
	}
	return true
}

// Select activates the identified tab.
func (s *Session) Select(id string) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.active = idx
	return true
}

// SelectNext cycles forward, wrapping at the end.
func (s *Session) SelectNext() {
	if len(s.tabs) == 0 {
		return
	}
	s.active = (s.active + 1) % len(s.tabs)
}

// SelectPrev cycles backward, wrapping at the start.
func (s *Session) SelectPrev() {
	if len(s.tabs) == 0 {
		return
	}
	s.active = (s.active - 1 + len(s.tabs)) % len(s.tabs)
}

// Active returns the active tab, nil when the session is empty.
func (s *Session) Active() *Tab {
	if s.active < 0 || s.active >= len(s.tabs) {
		return nil
	}
	return s.tabs[s.active]
}

// Tabs returns the open tabs in order. The slice is shared; callers
// must not mutate it.
func (s *Session) Tabs() []*Tab {
	return s.tabs
}

// ActiveIndex returns the position of the active tab.
func (s *Session) ActiveIndex() int {
	return s.active
}

// AnyDirty reports whether any open tab has unsaved edits.
func (s *Session) AnyDirty() bool {
	for _, tab := range s.tabs {
		if tab.Dirty {
			return true
		}
	}
	return false
}

// PlanSave decides what a save press should do. An unbound tab, or a
// second press within the debounce window, routes to save-as. The
// press timestamp is recorded either way.
func (s *Session) PlanSave(now time.Time) SavePlan {
	double := !s.lastSave.IsZero() && now.Sub(s.lastSave) < saveDebounce
	s.lastSave = now
	tab := s.Active()
	if tab == nil || tab.Path == "" || double {
		return SaveNeedsName
	}
	return SaveToPath
}

// RebindActive points the active tab at a new file and retitles it
// with the file's stem.
func (s *Session) RebindActive(path string) {
	tab := s.Active()
	if tab == nil {
		return
	}
	tab.Path = path
	tab.Title = stem(path)
}

func (s *Session) index(id string) int {
	for i, tab := range s.tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Snapshot is the persisted shape of a session.
type Snapshot struct {
	Active string        `json:"active"`
	Tabs   []SnapshotTab `json:"tabs"`
}

// SnapshotTab records one tab. File is null for unsaved notes.
type SnapshotTab struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	File  *string `json:"file"`
}

// Snapshot captures the open tabs and the active id.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{Tabs: make([]SnapshotTab, 0, len(s.tabs))}
	if tab := s.Active(); tab != nil {
		snap.Active = tab.ID
	}
	for _, tab := range s.tabs {
		st := SnapshotTab{ID: tab.ID, Title: tab.Title}
		if tab.Path != "" {
			path := tab.Path
			st.File = &path
		}
		snap.Tabs = append(snap.Tabs, st)
	}
	return snap
}

// Restore rebuilds the session from a snapshot. load fetches a bound
// file's contents, returning empty text when it cannot. Titles keep a
// legacy ".txt" suffix in old snapshots; it is stripped here. Reports
// whether the snapshot held any tabs.
func (s *Session) Restore(snap Snapshot, load func(path string) string) bool {
	if len(snap.Tabs) == 0 {
		return false
	}
	s.tabs = nil
	s.counter = 0
	s.active = 0
	for i, st := range snap.Tabs {
		tab := &Tab{
			ID:    st.ID,
			Title: strings.TrimSuffix(st.Title, ".txt"),
			Doc:   s.newDoc(),
		}
		if st.File != nil {
			tab.Path = *st.File
			tab.Doc.SetText(load(tab.Path))
		}
		s.tabs = append(s.tabs, tab)
		if st.ID == snap.Active {
			s.active = i
		}
		if n, ok := tabNumber(st.ID); ok && n > s.counter {
			s.counter = n
		}
	}
	return true
}

func tabNumber(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "tab")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
