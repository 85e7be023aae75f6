package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in a map viewer.
type Action int

const (
	ActionNone Action = iota

	ActionRegenerate
	ActionToggleLegend
	ActionQuit
)

// Intent is what the viewer should do in response to a key.
type Intent struct {
	Action Action
}

// RawInput is an event as it arrives from a device. Code is a
// device-specific identifier such as "r", "escape" or "ctrl+c".
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is a RawInput after deduplication. Both the window and the
// terminal already deliver one event per key press, so this only drops the
// timestamp.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"r":     ActionRegenerate,
	"space": ActionRegenerate,
	"enter": ActionRegenerate,

	"l": ActionToggleLegend,

	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl+c": ActionQuit,
	"ctrl+d": ActionQuit,
}

// MapToIntent applies the bindings to a debounced input.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionRegenerate:
		return "Regenerate"
	case ActionToggleLegend:
		return "Toggle Legend"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// helpActions is the order actions are listed in HelpLine
var helpActions = []Action{ActionRegenerate, ActionToggleLegend, ActionQuit}

// HelpLine lists every action with its keys, e.g. "Toggle Legend: l"
func HelpLine() string {
	byAction := GetBindingsByAction()

	parts := make([]string, 0, len(helpActions))
	for _, act := range helpActions {
		codes := byAction[act]
		if len(codes) == 0 {
			continue
		}
		parts = append(parts, ActionName(act)+": "+strings.Join(codes, "/"))
	}
	return strings.Join(parts, "  ")
}
