package mario

// MenuOption is an entry of the in-game menu.
type MenuOption int

const (
	OptionResume MenuOption = iota
	OptionNewGame
	OptionQuit
)

// Label returns the text shown for the option.
func (o MenuOption) Label() string {
	switch o {
	case OptionResume:
		return "Resume"
	case OptionNewGame:
		return "New game"
	case OptionQuit:
		return "Quit"
	default:
		return "?"
	}
}

// Menu is the cursor over the options available right now.
// Resume is only offered once a run exists.
type Menu struct {
	Options []MenuOption
	Cursor  int
}

func newMenu(canResume bool) Menu {
	opts := []MenuOption{OptionNewGame, OptionQuit}
	if canResume {
		opts = []MenuOption{OptionResume, OptionNewGame, OptionQuit}
	}
	return Menu{Options: opts}
}

// Up moves the cursor up, wrapping at the top.
func (m *Menu) Up() {
	m.Cursor = (m.Cursor - 1 + len(m.Options)) % len(m.Options)
}

// Down moves the cursor down, wrapping at the bottom.
func (m *Menu) Down() {
	m.Cursor = (m.Cursor + 1) % len(m.Options)
}

// Selected returns the option under the cursor.
func (m Menu) Selected() MenuOption {
	return m.Options[m.Cursor]
}
