package app

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/netrom-source/notator/internal/store"
)

// fileMenuResult is the terminal message of the open-file overlay.
type fileMenuResult int

const (
	fileMenuNone fileMenuResult = iota
	fileMenuClosed
	fileMenuChosen
)

type noteItem struct {
	info store.NoteInfo
}

func (i noteItem) Title() string       { return strings.TrimSuffix(i.info.Name, ".txt") }
func (i noteItem) FilterValue() string { return i.Title() }

type noteDelegate struct{}

func (d noteDelegate) Height() int                             { return 1 }
func (d noteDelegate) Spacing() int                            { return 0 }
func (d noteDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d noteDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(noteItem)
	if !ok {
		return
	}
	label := item.Title()
	if index == m.Index() {
		io.WriteString(w, optionSelectedStyle.Render("> "+label))
		return
	}
	io.WriteString(w, optionStyle.Render("  "+label))
}

// FileMenuController lists the notes in the data directory so one can
// be opened in a new tab. Filtering comes with the list widget.
type FileMenuController struct {
	list list.Model
}

func NewFileMenuController() *FileMenuController {
	l := list.New(nil, noteDelegate{}, 40, 12)
	l.Title = "Åbn fil"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	return &FileMenuController{list: l}
}

// Open refreshes the listing. Notes arrive newest first from the store.
func (c *FileMenuController) Open(notes []store.NoteInfo) {
	items := make([]list.Item, 0, len(notes))
	for _, note := range notes {
		items = append(items, noteItem{info: note})
	}
	c.list.SetItems(items)
	c.list.ResetFilter()
	c.list.Select(0)
}

func (c *FileMenuController) SetSize(width, height int) {
	if width > 0 && height > 0 {
		c.list.SetSize(min(width, 48), min(height, 14))
	}
}

// HandleKey routes one key. path is meaningful only for fileMenuChosen.
func (c *FileMenuController) HandleKey(msg tea.KeyMsg) (fileMenuResult, string) {
	if c.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc":
			return fileMenuClosed, ""
		case "enter":
			item, ok := c.list.SelectedItem().(noteItem)
			if !ok {
				return fileMenuNone, ""
			}
			return fileMenuChosen, item.info.Path
		}
	}
	var cmd tea.Cmd
	c.list, cmd = c.list.Update(msg)
	_ = cmd
	return fileMenuNone, ""
}

func (c *FileMenuController) View(width int) string {
	block := overlayBorderStyle.Render(c.list.View())
	return centerBlock(block, width)
}
