package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/netrom-source/notator/internal/config"
	"github.com/netrom-source/notator/internal/haiku"
	"github.com/netrom-source/notator/internal/logging"
	"github.com/netrom-source/notator/internal/quotes"
	"github.com/netrom-source/notator/internal/session"
	"github.com/netrom-source/notator/internal/store"
	"github.com/netrom-source/notator/internal/timer"
)

const appTitle = "Notator"

// overlayKind is the single visible-overlay slot. Showing one overlay
// replaces whatever was up before; the previous one is dismissed
// without running its cancel logic.
type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayTimerMenu
	overlayFileMenu
	overlaySaveAs
	overlayDeleteGate
	overlayQuote
	overlayPreview
)

// Options wires the model to its collaborators.
type Options struct {
	Settings config.Settings
	Paths    config.Paths
	Repo     store.Repository
	Notes    *store.NoteStore
	Keymap   *Keymap
	Logger   logging.Logger
}

// Model is the session coordinator: it owns the open tabs, the single
// overlay slot, the countdown, the quote rotation and the deletion
// gate, and turns key events into state changes and rendered effects.
type Model struct {
	cfg    config.Settings
	paths  config.Paths
	repo   store.Repository
	notes  *store.NoteStore
	keymap *Keymap
	log    logging.Logger

	sess      *session.Session
	countdown *timer.Countdown
	library   *quotes.Library

	overlay    overlayKind
	timerMenu  *TimerMenuController
	fileMenu   *FileMenuController
	saveAs     *SaveAsController
	deleteGate *DeleteGateController
	quoteView  *QuoteOverlayController
	preview    *PreviewController

	hemingway     bool
	tabBarVisible bool
	titleDirty    bool

	toastText  string
	toastLevel toastLevel
	toastUntil time.Time

	width   int
	height  int
	tickGen int

	now func() time.Time
}

func NewModel(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	keymap := opts.Keymap
	if keymap == nil {
		keymap = DefaultKeymap()
	}
	minWords, maxWords := opts.Settings.HaikuBounds()
	rule := haiku.NewRule(minWords, maxWords)
	limiter := quotes.NewLimiter(
		opts.Settings.QuoteMaxRequests(),
		time.Duration(opts.Settings.QuoteWindowSeconds())*time.Second,
	)
	m := &Model{
		cfg:        opts.Settings,
		paths:      opts.Paths,
		repo:       opts.Repo,
		notes:      opts.Notes,
		keymap:     keymap,
		log:        log,
		countdown:  timer.New(opts.Settings.MaxCountdownSeconds()),
		library:    quotes.NewLibrary(opts.Paths.QuotesPath(), limiter),
		timerMenu:  NewTimerMenuController(opts.Settings.TimerPresets()),
		fileMenu:   NewFileMenuController(),
		saveAs:     NewSaveAsController(),
		deleteGate: NewDeleteGateController(rule, haiku.DefaultPrompts()),
		quoteView:  NewQuoteOverlayController(),
		preview:    NewPreviewController(),

		tabBarVisible: true,
		now:           time.Now,
	}
	m.sess = session.New(func() session.Document { return NewEditor() })
	m.restoreTabs()
	return m
}

// restoreTabs rebuilds the session from the persisted snapshot, falling
// back to the two built-in default notes when none is usable.
func (m *Model) restoreTabs() {
	snap, err := m.repo.State().Load(context.Background())
	if err != nil {
		m.log.Warn("tab snapshot unreadable, using defaults", logging.Field{Key: "error", Value: err})
		snap = session.Snapshot{}
	}
	load := func(path string) string {
		text, err := m.notes.Read(context.Background(), path)
		if err != nil {
			m.log.Warn("note unreadable", logging.Field{Key: "path", Value: path}, logging.Field{Key: "error", Value: err})
			return ""
		}
		return text
	}
	if !m.sess.Restore(snap, load) {
		m.sess.Restore(m.defaultSnapshot(), load)
	}
}

func (m *Model) defaultSnapshot() session.Snapshot {
	first := m.paths.NotePath("notes1.txt")
	second := m.paths.NotePath("notes2.txt")
	return session.Snapshot{
		Active: "tab1",
		Tabs: []session.SnapshotTab{
			{ID: "tab1", Title: "Note 1", File: &first},
			{ID: "tab2", Title: "Note 2", File: &second},
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.focusEditor(), tea.SetWindowTitle(appTitle))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeEditors()
		m.fileMenu.SetSize(msg.Width, msg.Height)
		m.preview.SetSize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.gen != m.tickGen {
		// A stale stream from before the last re-arm.
		return nil
	}
	if !m.countdown.Running() {
		return nil
	}
	if m.countdown.Tick() {
		m.showInfoToast("Tiden er gået!")
		return nil
	}
	return tickCmd(m.tickGen)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if m.hemingway {
		switch key {
		case "backspace", "delete", "left":
			return nil
		}
	}
	if command := m.keymap.Command(key); command != "" {
		return m.handleCommand(command)
	}
	if m.overlay != overlayNone {
		return m.handleOverlayKey(msg)
	}
	return m.updateEditor(msg)
}

func (m *Model) handleCommand(command string) tea.Cmd {
	switch command {
	case KeyCommandQuit:
		m.persistSnapshot()
		return tea.Quit
	case KeyCommandToggleTimerMenu:
		if m.overlay == overlayTimerMenu {
			return m.closeOverlay()
		}
		m.timerMenu.Open()
		m.showOverlay(overlayTimerMenu)
		return nil
	case KeyCommandResetOrStop:
		return m.resetOrStopTimer()
	case KeyCommandSave:
		return m.saveActive()
	case KeyCommandToggleStrict:
		m.hemingway = !m.hemingway
		if m.hemingway {
			m.showInfoToast("Hemmingway-tilstand TIL")
		} else {
			m.showInfoToast("Hemmingway-tilstand FRA")
		}
		return nil
	case KeyCommandNewTab:
		m.sess.NewTab(m.now())
		m.resizeEditors()
		m.persistSnapshot()
		return m.focusEditor()
	case KeyCommandOpenFile:
		return m.openFileMenu()
	case KeyCommandCloseTab:
		return m.closeActiveTab(true)
	case KeyCommandToggleTabBar:
		m.tabBarVisible = !m.tabBarVisible
		m.resizeEditors()
		return nil
	case KeyCommandPromptDelete:
		return m.promptDelete()
	case KeyCommandPrevTab:
		m.sess.SelectPrev()
		return m.focusEditor()
	case KeyCommandNextTab:
		m.sess.SelectNext()
		return m.focusEditor()
	case KeyCommandShowQuote:
		return m.requestQuote(false)
	case KeyCommandPreview:
		if tab := m.sess.Active(); tab != nil {
			m.preview.Open(tab.Doc.Text())
			m.showOverlay(overlayPreview)
		}
		return nil
	case KeyCommandCopyNote:
		return m.copyActiveNote()
	}
	return nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch m.overlay {
	case overlayTimerMenu:
		result, seconds := m.timerMenu.HandleKey(msg)
		switch result {
		case timerMenuClosed:
			return m.closeOverlay()
		case timerMenuChosen:
			cmd := m.startCountdown(seconds)
			return tea.Batch(cmd, m.closeOverlay())
		case timerMenuInvalid:
			m.showWarningToast("Ugyldig tidsangivelse")
		}
	case overlayFileMenu:
		result, path := m.fileMenu.HandleKey(msg)
		switch result {
		case fileMenuClosed:
			return m.closeOverlay()
		case fileMenuChosen:
			return m.openNote(path)
		}
	case overlaySaveAs:
		result, name := m.saveAs.HandleKey(msg)
		switch result {
		case saveAsClosed:
			return m.closeOverlay()
		case saveAsEmpty:
			m.showWarningToast("Angiv et filnavn")
		case saveAsChosen:
			return m.completeSaveAs(name)
		}
	case overlayDeleteGate:
		switch m.deleteGate.HandleKey(msg) {
		case deleteGateCancelled:
			return m.closeOverlay()
		case deleteGateConfirmed:
			return m.completeDeletion()
		}
	case overlayQuote:
		switch m.quoteView.HandleKey(msg) {
		case quoteOverlayDismissed:
			return m.closeOverlay()
		case quoteOverlayRestartYes:
			// The re-run must hand over a quote even though the
			// restart prompt itself counted against the window.
			m.library.Reset()
			return m.requestQuote(true)
		case quoteOverlayRestartNo:
			m.library.Decline()
			m.showInfoToast("Citater udtømt")
			return m.closeOverlay()
		case quoteOverlayForce:
			return m.requestQuote(true)
		}
	case overlayPreview:
		if m.preview.HandleKey(msg) == previewClosed {
			return m.closeOverlay()
		}
	}
	return nil
}

func (m *Model) updateEditor(msg tea.Msg) tea.Cmd {
	tab := m.sess.Active()
	if tab == nil {
		return nil
	}
	editor, ok := tab.Doc.(*Editor)
	if !ok {
		return nil
	}
	before := editor.Text()
	cmd := editor.Update(msg)
	if editor.Text() != before {
		tab.Dirty = true
	}
	return tea.Batch(cmd, m.syncWindowTitle())
}

// showOverlay fills the overlay slot, replacing whatever was visible.
func (m *Model) showOverlay(kind overlayKind) {
	if tab := m.sess.Active(); tab != nil {
		if editor, ok := tab.Doc.(*Editor); ok {
			editor.Blur()
		}
	}
	m.overlay = kind
}

// closeOverlay clears the slot and hands focus back to the active note.
func (m *Model) closeOverlay() tea.Cmd {
	m.overlay = overlayNone
	return m.focusEditor()
}

func (m *Model) focusEditor() tea.Cmd {
	tab := m.sess.Active()
	if tab == nil {
		return nil
	}
	editor, ok := tab.Doc.(*Editor)
	if !ok {
		return nil
	}
	return tea.Batch(editor.Focus(), m.syncWindowTitle())
}

// Timer flow.

func (m *Model) startCountdown(seconds int) tea.Cmd {
	if !m.countdown.Start(seconds, m.now()) {
		return nil
	}
	m.showInfoToast("Timer startet")
	m.tickGen++
	return tickCmd(m.tickGen)
}

func (m *Model) resetOrStopTimer() tea.Cmd {
	switch m.countdown.ResetOrStop(m.now()) {
	case timer.OutcomeStopped:
		m.tickGen++
		m.showInfoToast("Timer stoppet")
		return nil
	case timer.OutcomeRestarted:
		m.showInfoToast("Timer startet")
		m.tickGen++
		return tickCmd(m.tickGen)
	}
	return nil
}

// Save flow.

func (m *Model) saveActive() tea.Cmd {
	tab := m.sess.Active()
	if tab == nil {
		return nil
	}
	if m.sess.PlanSave(m.now()) == session.SaveNeedsName {
		m.saveAs.Open(stem(tab.Path))
		m.showOverlay(overlaySaveAs)
		return nil
	}
	if err := m.notes.Write(context.Background(), tab.Path, tab.Doc.Text()); err != nil {
		m.log.Error("save failed", logging.Field{Key: "path", Value: tab.Path}, logging.Field{Key: "error", Value: err})
		m.showErrorToast("Kunne ikke gemme: " + err.Error())
		return nil
	}
	tab.Dirty = false
	m.showInfoToast("Noter gemt")
	return m.syncWindowTitle()
}

func (m *Model) completeSaveAs(name string) tea.Cmd {
	tab := m.sess.Active()
	if tab == nil {
		return m.closeOverlay()
	}
	if filepath.Ext(name) == "" {
		name += ".txt"
	}
	path := m.paths.NotePath(name)
	if err := m.notes.Write(context.Background(), path, tab.Doc.Text()); err != nil {
		m.log.Error("save-as failed", logging.Field{Key: "path", Value: path}, logging.Field{Key: "error", Value: err})
		m.showErrorToast("Kunne ikke gemme: " + err.Error())
		return m.closeOverlay()
	}
	m.sess.RebindActive(path)
	tab.Dirty = false
	m.showInfoToast("Gemt som " + stem(path))
	m.persistSnapshot()
	return m.closeOverlay()
}

// Tab flow.

func (m *Model) openFileMenu() tea.Cmd {
	notes, err := m.notes.List(context.Background())
	if err != nil {
		m.log.Error("note listing failed", logging.Field{Key: "error", Value: err})
		m.showErrorToast("Kunne ikke læse noter")
		return nil
	}
	m.fileMenu.Open(notes)
	m.showOverlay(overlayFileMenu)
	return nil
}

func (m *Model) openNote(path string) tea.Cmd {
	text, err := m.notes.Read(context.Background(), path)
	if err != nil {
		m.showInfoToast("Filen blev ikke fundet")
		return m.closeOverlay()
	}
	m.sess.OpenFile(path, text)
	m.resizeEditors()
	m.persistSnapshot()
	return m.closeOverlay()
}

func (m *Model) closeActiveTab(notify bool) tea.Cmd {
	tab := m.sess.Active()
	if tab == nil {
		return nil
	}
	m.sess.Close(tab.ID, m.now())
	m.resizeEditors()
	if notify {
		m.showInfoToast("Fane lukket")
	}
	m.persistSnapshot()
	return m.focusEditor()
}

// Deletion flow.

func (m *Model) promptDelete() tea.Cmd {
	tab := m.sess.Active()
	if tab == nil {
		return nil
	}
	if tab.Path == "" {
		m.showInfoToast("Ingen fil at slette")
		return nil
	}
	m.deleteGate.Open(tab.ID)
	m.showOverlay(overlayDeleteGate)
	return nil
}

func (m *Model) completeDeletion() tea.Cmd {
	tab := m.findTab(m.deleteGate.TargetID())
	if tab == nil {
		return m.closeOverlay()
	}
	if tab.Path != "" {
		// The delete is authorized; a filesystem failure no longer
		// stops it.
		if err := m.notes.Delete(context.Background(), tab.Path); err != nil {
			m.log.Warn("file delete failed", logging.Field{Key: "path", Value: tab.Path}, logging.Field{Key: "error", Value: err})
		}
	}
	tab.Path = ""
	tab.Dirty = false
	m.overlay = overlayNone
	m.sess.Close(tab.ID, m.now())
	m.resizeEditors()
	m.showInfoToast("Ordene falder. Tomheden vinder.")
	m.persistSnapshot()
	return m.focusEditor()
}

// Quote flow.

// requestQuote runs one request against the library. Outcomes without
// an overlay of their own must close the slot properly so the editor
// gets focus back when the request came from inside an overlay.
func (m *Model) requestQuote(force bool) tea.Cmd {
	result, quote := m.library.Request(m.now(), force)
	switch result {
	case quotes.ResultRateLimited:
		m.quoteView.ShowRateLimit()
		m.showOverlay(overlayQuote)
	case quotes.ResultNoQuotes:
		m.showInfoToast("Ingen citater fundet")
		return m.closeOverlay()
	case quotes.ResultRestartPrompt:
		m.quoteView.ShowRestartPrompt()
		m.showOverlay(overlayQuote)
	case quotes.ResultDepleted:
		m.showInfoToast("Citatfilen skal opfyldes igen")
		return m.closeOverlay()
	case quotes.ResultQuote:
		m.quoteView.ShowQuote(quote)
		m.showOverlay(overlayQuote)
	}
	return nil
}

func (m *Model) copyActiveNote() tea.Cmd {
	tab := m.sess.Active()
	if tab == nil {
		return nil
	}
	if err := copyTextToClipboard(tab.Doc.Text()); err != nil {
		m.showErrorToast("Kopiering mislykkedes: " + err.Error())
		return nil
	}
	m.showInfoToast("Noter kopieret")
	return nil
}

// Helpers.

func (m *Model) findTab(id string) *session.Tab {
	for _, tab := range m.sess.Tabs() {
		if tab.ID == id {
			return tab
		}
	}
	return nil
}

func (m *Model) persistSnapshot() {
	if err := m.repo.State().Save(context.Background(), m.sess.Snapshot()); err != nil {
		m.log.Error("tab snapshot write failed", logging.Field{Key: "error", Value: err})
	}
}

func (m *Model) resizeEditors() {
	height := m.height - 2
	if m.tabBarVisible {
		height--
	}
	for _, tab := range m.sess.Tabs() {
		if editor, ok := tab.Doc.(*Editor); ok {
			editor.SetSize(m.width, height)
		}
	}
}

// syncWindowTitle emits a title change only on dirty transitions so
// typing does not spam escape sequences.
func (m *Model) syncWindowTitle() tea.Cmd {
	dirty := m.sess.AnyDirty()
	if dirty == m.titleDirty {
		return nil
	}
	m.titleDirty = dirty
	if dirty {
		return tea.SetWindowTitle(appTitle + "*")
	}
	return tea.SetWindowTitle(appTitle)
}

// View.

func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	var sections []string
	if m.tabBarVisible {
		sections = append(sections, m.tabBar(width))
	}
	if m.overlay != overlayNone {
		sections = append(sections, m.overlayView(width))
	} else if tab := m.sess.Active(); tab != nil {
		if editor, ok := tab.Doc.(*Editor); ok {
			sections = append(sections, editor.View())
		}
	}
	sections = append(sections, m.statusLine(width))
	if toast := m.toastLine(width); toast != "" {
		sections = append(sections, toast)
	}
	return strings.Join(sections, "\n")
}

func (m *Model) overlayView(width int) string {
	switch m.overlay {
	case overlayTimerMenu:
		return m.timerMenu.View(width)
	case overlayFileMenu:
		return m.fileMenu.View(width)
	case overlaySaveAs:
		return m.saveAs.View(width)
	case overlayDeleteGate:
		return m.deleteGate.View(width)
	case overlayQuote:
		return m.quoteView.View(width)
	case overlayPreview:
		return m.preview.View(width)
	}
	return ""
}

func (m *Model) tabBar(width int) string {
	var cells []string
	for i, tab := range m.sess.Tabs() {
		label := tab.Title
		if tab.Dirty {
			label += "*"
		}
		if i == m.sess.ActiveIndex() {
			cells = append(cells, tabActiveStyle.Render(label))
		} else {
			cells = append(cells, tabStyle.Render(label))
		}
	}
	return truncateToWidth(lipgloss.JoinHorizontal(lipgloss.Top, cells...), width)
}

func (m *Model) statusLine(width int) string {
	var left string
	if m.sess.AnyDirty() {
		left = statusDirtyStyle.Render("Ændringer ikke gemt")
	} else {
		left = statusStyle.Render("Gemt")
	}
	right := ""
	if m.countdown.Visible(m.overlay == overlayTimerMenu) {
		right = m.timerDisplay()
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) timerDisplay() string {
	remaining := m.countdown.Remaining()
	text := fmt.Sprintf("⏱ %02d:%02d", remaining/60, remaining%60)
	if m.countdown.Expired() {
		return timerExpiredStyle.Render(text)
	}
	return timerStyle.Render(text)
}

func stem(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func centerBlock(block string, width int) string {
	if width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
