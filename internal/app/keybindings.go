package app

import (
	"fmt"
	"sort"
	"strings"
)

// The command vocabulary. Every key event is resolved against this
// allow-list before anything acts on it; keys that resolve to nothing
// fall through to the note editor.
const (
	KeyCommandToggleTimerMenu = "ui.toggleTimerMenu"
	KeyCommandResetOrStop     = "ui.resetOrStopTimer"
	KeyCommandSave            = "ui.save"
	KeyCommandToggleStrict    = "ui.toggleStrict"
	KeyCommandNewTab          = "ui.newTab"
	KeyCommandOpenFile        = "ui.openFile"
	KeyCommandCloseTab        = "ui.closeTab"
	KeyCommandToggleTabBar    = "ui.toggleTabBar"
	KeyCommandPromptDelete    = "ui.promptDelete"
	KeyCommandPrevTab         = "ui.prevTab"
	KeyCommandNextTab         = "ui.nextTab"
	KeyCommandShowQuote       = "ui.showQuote"
	KeyCommandPreview         = "ui.preview"
	KeyCommandCopyNote        = "ui.copyNote"
	KeyCommandQuit            = "ui.quit"
)

var defaultKeyByCommand = map[string]string{
	KeyCommandToggleTimerMenu: "ctrl+t",
	KeyCommandResetOrStop:     "ctrl+r",
	KeyCommandSave:            "ctrl+s",
	KeyCommandToggleStrict:    "ctrl+g",
	KeyCommandNewTab:          "ctrl+n",
	KeyCommandOpenFile:        "ctrl+o",
	KeyCommandCloseTab:        "ctrl+w",
	KeyCommandToggleTabBar:    "ctrl+b",
	KeyCommandPromptDelete:    "ctrl+d",
	KeyCommandPrevTab:         "ctrl+pgup",
	KeyCommandNextTab:         "ctrl+pgdown",
	KeyCommandShowQuote:       "ctrl+l",
	KeyCommandPreview:         "ctrl+e",
	KeyCommandCopyNote:        "ctrl+c",
	KeyCommandQuit:            "ctrl+q",
}

// extraKeyByCommand maps keys that stay bound alongside the defaults.
// Some terminals report a distinct ctrl+delete; it keeps triggering the
// deletion gate when they do.
var extraKeyByCommand = map[string]string{
	"ctrl+delete": KeyCommandPromptDelete,
}

// Keymap resolves key strings to commands, with user overrides from
// keymap.json layered over the defaults.
type Keymap struct {
	byCommand map[string]string
	byKey     map[string]string
}

func DefaultKeymap() *Keymap {
	keymap, _ := NewKeymap(nil)
	return keymap
}

// NewKeymap validates overrides against the known commands and builds
// the lookup tables. Unknown commands are rejected rather than ignored
// so a typo in keymap.json surfaces instead of silently not binding.
func NewKeymap(overrides map[string]string) (*Keymap, error) {
	byCommand := make(map[string]string, len(defaultKeyByCommand))
	for command, key := range defaultKeyByCommand {
		byCommand[command] = key
	}
	var unknown []string
	for command, key := range overrides {
		command = strings.TrimSpace(command)
		key = strings.TrimSpace(key)
		if command == "" || key == "" {
			continue
		}
		if _, ok := defaultKeyByCommand[command]; !ok {
			unknown = append(unknown, command)
			continue
		}
		byCommand[command] = key
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown keymap commands: %s", strings.Join(unknown, ", "))
	}
	byKey := make(map[string]string, len(byCommand)+len(extraKeyByCommand))
	for key, command := range extraKeyByCommand {
		byKey[key] = command
	}
	for command, key := range byCommand {
		byKey[key] = command
	}
	return &Keymap{byCommand: byCommand, byKey: byKey}, nil
}

// Command returns the command bound to key, or "" when the key is not
// recognized and should fall through to the editor.
func (k *Keymap) Command(key string) string {
	if k == nil {
		return ""
	}
	return k.byKey[strings.TrimSpace(key)]
}

// KeyFor returns the key bound to command, falling back to the default
// binding for unknown input.
func (k *Keymap) KeyFor(command string) string {
	if k != nil {
		if key := k.byCommand[command]; key != "" {
			return key
		}
	}
	return defaultKeyByCommand[command]
}

// KnownCommands lists the command vocabulary in sorted order.
func KnownCommands() []string {
	commands := make([]string, 0, len(defaultKeyByCommand))
	for command := range defaultKeyByCommand {
		commands = append(commands, command)
	}
	sort.Strings(commands)
	return commands
}
