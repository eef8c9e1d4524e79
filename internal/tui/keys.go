package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	logout      key.Binding
	search      key.Binding
	newNote     key.Binding
	edit        key.Binding
	delete      key.Binding
	duplicate   key.Binding
	pin         key.Binding
	favorite    key.Binding
	copy        key.Binding
	sort        key.Binding
	nextSection key.Binding
	prevSection key.Binding
	viewMode    key.Binding
	dateFilter  key.Binding
	reload      key.Binding
	info        key.Binding
	save        key.Binding
	left        key.Binding
	right       key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:      key.NewBinding(key.WithKeys("L")),
	search:      key.NewBinding(key.WithKeys("/")),
	newNote:     key.NewBinding(key.WithKeys("n")),
	edit:        key.NewBinding(key.WithKeys("e", "enter")),
	delete:      key.NewBinding(key.WithKeys("d")),
	duplicate:   key.NewBinding(key.WithKeys("D")),
	pin:         key.NewBinding(key.WithKeys("p")),
	favorite:    key.NewBinding(key.WithKeys("f")),
	copy:        key.NewBinding(key.WithKeys("c")),
	sort:        key.NewBinding(key.WithKeys("s")),
	nextSection: key.NewBinding(key.WithKeys("]")),
	prevSection: key.NewBinding(key.WithKeys("[")),
	viewMode:    key.NewBinding(key.WithKeys("v")),
	dateFilter:  key.NewBinding(key.WithKeys("t")),
	reload:      key.NewBinding(key.WithKeys("r")),
	info:        key.NewBinding(key.WithKeys("i")),
	save:        key.NewBinding(key.WithKeys("ctrl+s")),
	left:        key.NewBinding(key.WithKeys("left")),
	right:       key.NewBinding(key.WithKeys("right")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n", "esc")),
}

const listHelp = "/ search │ n new │ e edit │ d delete │ D duplicate │ p pin │ f favorite │ c copy\n" +
	"s sort │ [ ] section │ v view │ t same day │ r reload │ i info │ L logout │ q quit"

const editorHelp = "tab next field │ ←/→ folder │ ctrl+s save │ esc cancel"
