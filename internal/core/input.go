package core

// ClickKind distinguishes the two pointer actions a board cell accepts.
// Keyboard bindings are mapped onto the same two kinds by the platform.
type ClickKind int

const (
	ClickPrimary   ClickKind = iota // left button, space, enter: open
	ClickSecondary                  // right button, f: toggle flag
)

// String returns a human-readable name for the click kind.
func (k ClickKind) String() string {
	switch k {
	case ClickPrimary:
		return "primary"
	case ClickSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Click is an input event addressed to one board cell.
type Click struct {
	Row  int
	Col  int
	Kind ClickKind
}
