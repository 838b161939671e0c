package battle

// Action is an entry of the top-level battle menu.
type Action int

const (
	ActionAttack Action = iota
	ActionItem
	ActionMagic
	ActionRun
)

// actionMenu is the fixed order of the top-level menu.
var actionMenu = []Action{ActionAttack, ActionItem, ActionMagic, ActionRun}

// String returns the menu label.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "Attack"
	case ActionItem:
		return "Items"
	case ActionMagic:
		return "Magic"
	case ActionRun:
		return "Run"
	default:
		return "?"
	}
}
