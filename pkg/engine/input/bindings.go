package input

import (
	"sort"
	"strings"

	"hexcrawl/pkg/engine/hex"
)

// Action represents a high-level intent in the game
type Action int

const (
	ActionNone Action = iota

	// Movement, one per hex direction
	ActionMoveEast
	ActionMoveNorthEast
	ActionMoveNorthWest
	ActionMoveWest
	ActionMoveSouthWest
	ActionMoveSouthEast

	// Meta
	ActionDescend
	ActionMap
	ActionDump
	ActionHelp
	ActionQuit
)

// Intent is the high-level description of what the player wants to do
type Intent struct {
	Action Action
}

// bindings maps typed codes to actions. Multiple codes may point to the same Action.
// The single-letter movement keys follow the hex layout of a QWERTY keyboard.
var bindings = map[string]Action{
	"d":         ActionMoveEast,
	"e":         ActionMoveNorthEast,
	"w":         ActionMoveNorthWest,
	"a":         ActionMoveWest,
	"z":         ActionMoveSouthWest,
	"x":         ActionMoveSouthEast,
	"east":      ActionMoveEast,
	"northeast": ActionMoveNorthEast,
	"ne":        ActionMoveNorthEast,
	"northwest": ActionMoveNorthWest,
	"nw":        ActionMoveNorthWest,
	"west":      ActionMoveWest,
	"southwest": ActionMoveSouthWest,
	"sw":        ActionMoveSouthWest,
	"southeast": ActionMoveSouthEast,
	"se":        ActionMoveSouthEast,

	">":       ActionDescend,
	"descend": ActionDescend,

	"m":   ActionMap,
	"map": ActionMap,

	"dump": ActionDump,

	"?":    ActionHelp,
	"help": ActionHelp,

	"quit": ActionQuit,
	"q":    ActionQuit,
}

var moveDirections = map[Action]hex.Direction{
	ActionMoveEast:      hex.East,
	ActionMoveNorthEast: hex.NorthEast,
	ActionMoveNorthWest: hex.NorthWest,
	ActionMoveWest:      hex.West,
	ActionMoveSouthWest: hex.SouthWest,
	ActionMoveSouthEast: hex.SouthEast,
}

// MapToIntent applies the bindings to a typed code. Case and surrounding
// whitespace are ignored.
func MapToIntent(code string) Intent {
	if act, ok := bindings[strings.ToLower(strings.TrimSpace(code))]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Direction returns the hex direction of a movement action
func (a Action) Direction() (hex.Direction, bool) {
	d, ok := moveDirections[a]
	return d, ok
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveEast:
		return "Move East"
	case ActionMoveNorthEast:
		return "Move North-East"
	case ActionMoveNorthWest:
		return "Move North-West"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveSouthWest:
		return "Move South-West"
	case ActionMoveSouthEast:
		return "Move South-East"
	case ActionDescend:
		return "Descend"
	case ActionMap:
		return "Map"
	case ActionDump:
		return "Dump Map"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
