package battle

// Mode is what the selection overlay is pointing at.
type Mode int

const (
	ModeHidden Mode = iota
	ModeActions
	ModeEnemies
	ModeItems
	ModeMagic
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeHidden:
		return "hidden"
	case ModeActions:
		return "actions"
	case ModeEnemies:
		return "enemies"
	case ModeItems:
		return "items"
	case ModeMagic:
		return "magic"
	default:
		return "unknown"
	}
}

// BackLabel is the label of the entry that returns to the action menu.
const BackLabel = "BACK"

// Target is a selectable enemy slot.
type Target struct {
	ID   int
	Name string
	X, Y int
}

// Option is a selectable item or spell. The BACK entry has an empty ID.
type Option struct {
	ID    string
	Label string
}

// Overlay is the selection arrow and the menu it moves over. It knows
// nothing about the battle; the session tells it what to show.
type Overlay struct {
	mode    Mode
	index   int
	targets []Target
	options []Option
	move    latch
}

// NewOverlay creates a hidden overlay with the given enemy slots.
func NewOverlay(targets []Target) *Overlay {
	return &Overlay{targets: append([]Target(nil), targets...)}
}

// ShowActions points the arrow at the first entry of the action menu.
func (o *Overlay) ShowActions() {
	o.mode = ModeActions
	o.index = 0
}

// ShowEnemies points the arrow at the first enemy slot.
func (o *Overlay) ShowEnemies() {
	o.mode = ModeEnemies
	o.index = 0
}

// ShowOptions lists items or spells followed by BACK.
func (o *Overlay) ShowOptions(mode Mode, options []Option) {
	o.mode = mode
	o.index = 0
	o.options = append(append([]Option(nil), options...), Option{Label: BackLabel})
}

// Hide makes the overlay invisible. Index 0 means nothing is selected.
func (o *Overlay) Hide() {
	o.mode = ModeHidden
	o.index = 0
}

// RemoveTarget drops the slot of the enemy with the given ID and keeps the
// index within range.
func (o *Overlay) RemoveTarget(id int) {
	for i, t := range o.targets {
		if t.ID == id {
			o.targets = append(o.targets[:i], o.targets[i+1:]...)
			break
		}
	}
	o.clamp()
}

// Update moves the arrow one entry per press. It does not wrap.
func (o *Overlay) Update(keys Keys) {
	if !o.move.check(keys.Up, keys.Down) || o.mode == ModeHidden {
		return
	}
	switch {
	case keys.Up && keys.Down:
	case keys.Up:
		o.index--
	case keys.Down:
		o.index++
	}
	o.clamp()
}

func (o *Overlay) clamp() {
	if n := o.Len(); o.index > n-1 {
		o.index = n - 1
	}
	if o.index < 0 {
		o.index = 0
	}
}

// Mode returns what the overlay is showing.
func (o *Overlay) Mode() Mode { return o.mode }

// Index returns the arrow position.
func (o *Overlay) Index() int { return o.index }

// Visible returns true unless the overlay is hidden.
func (o *Overlay) Visible() bool { return o.mode != ModeHidden }

// Len returns the number of entries in the current mode.
func (o *Overlay) Len() int {
	switch o.mode {
	case ModeActions:
		return len(actionMenu)
	case ModeEnemies:
		return len(o.targets)
	case ModeItems, ModeMagic:
		return len(o.options)
	default:
		return 0
	}
}

// SelectedAction returns the action under the arrow.
func (o *Overlay) SelectedAction() Action {
	if o.mode != ModeActions || o.index >= len(actionMenu) {
		return ActionAttack
	}
	return actionMenu[o.index]
}

// SelectedTarget returns the enemy slot under the arrow.
func (o *Overlay) SelectedTarget() (Target, bool) {
	if o.mode != ModeEnemies || o.index >= len(o.targets) {
		return Target{}, false
	}
	return o.targets[o.index], true
}

// SelectedOption returns the item or spell under the arrow. BACK is not an
// option.
func (o *Overlay) SelectedOption() (Option, bool) {
	if (o.mode != ModeItems && o.mode != ModeMagic) || o.AtBack() || o.index >= len(o.options) {
		return Option{}, false
	}
	return o.options[o.index], true
}

// AtBack returns true when the arrow is on the BACK entry.
func (o *Overlay) AtBack() bool {
	if o.mode != ModeItems && o.mode != ModeMagic {
		return false
	}
	return o.index == len(o.options)-1
}

// Entries returns the labels of the current mode, for drawing.
func (o *Overlay) Entries() []string {
	switch o.mode {
	case ModeActions:
		labels := make([]string, len(actionMenu))
		for i, a := range actionMenu {
			labels[i] = a.String()
		}
		return labels
	case ModeEnemies:
		labels := make([]string, len(o.targets))
		for i, t := range o.targets {
			labels[i] = t.Name
		}
		return labels
	case ModeItems, ModeMagic:
		labels := make([]string, len(o.options))
		for i, opt := range o.options {
			labels[i] = opt.Label
		}
		return labels
	default:
		return nil
	}
}

// Targets returns the remaining enemy slots.
func (o *Overlay) Targets() []Target {
	return append([]Target(nil), o.targets...)
}
