package battle

// Result is how a battle ended.
type Result int

const (
	ResultWon Result = iota
	ResultFled
)

// String returns a human-readable result name.
func (r Result) String() string {
	switch r {
	case ResultWon:
		return "won"
	case ResultFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Outcome summarizes a finished battle. All of its effects have already
// been applied to the game data.
type Outcome struct {
	BattleID     string
	Result       Result
	Experience   int // Awarded only when Result is ResultWon
	LeveledUp    bool
	BossDefeated bool
	Turns        int
}
