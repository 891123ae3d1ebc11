package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/treekeep/pkg/treekeep"
)

// entry is one selectable row in the browser: a subdirectory or a file.
type entry struct {
	name string
	dir  *treekeep.Directory // nil for files
}

// Browser is a read-only bubbletea model for walking a structure catalog.
// The path stack mirrors the model's root-to-leaf navigation; there are no
// parent references in the model, so going up means popping the stack.
type Browser struct {
	structure *treekeep.Structure
	keys      KeyMap
	stack     []*treekeep.Directory // empty means top level
	cursor    int
}

// NewBrowser creates a browser over the given structure.
func NewBrowser(structure *treekeep.Structure) *Browser {
	return &Browser{
		structure: structure,
		keys:      DefaultKeyMap(),
	}
}

// Run starts the interactive browser and blocks until the user quits.
func Run(structure *treekeep.Structure) error {
	_, err := tea.NewProgram(NewBrowser(structure)).Run()
	return err
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	entries := b.entries()

	switch {
	case key.Matches(keyMsg, b.keys.Quit):
		return b, tea.Quit

	case key.Matches(keyMsg, b.keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}

	case key.Matches(keyMsg, b.keys.Down):
		if b.cursor < len(entries)-1 {
			b.cursor++
		}

	case key.Matches(keyMsg, b.keys.Enter):
		if b.cursor < len(entries) && entries[b.cursor].dir != nil {
			b.stack = append(b.stack, entries[b.cursor].dir)
			b.cursor = 0
		}

	case key.Matches(keyMsg, b.keys.Back):
		if len(b.stack) > 0 {
			b.stack = b.stack[:len(b.stack)-1]
			b.cursor = 0
		}
	}

	return b, nil
}

// View implements tea.Model.
func (b *Browser) View() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("treekeep"))
	sb.WriteString("  ")
	sb.WriteString(BreadcrumbStyle.Render(b.breadcrumb()))
	sb.WriteString("\n\n")

	entries := b.entries()
	if len(entries) == 0 {
		sb.WriteString(EmptyStyle.Render("(empty)"))
		sb.WriteString("\n")
	}
	for i, e := range entries {
		cursor := "  "
		style := UnselectedStyle
		if i == b.cursor {
			cursor = SymbolCursor + " "
			style = SelectedStyle
		}

		label := SymbolFile + " " + e.name
		if e.dir != nil {
			label = SymbolDirectory + " " + e.name + "/"
			if i != b.cursor {
				style = DirectoryStyle
			}
		}
		sb.WriteString(fmt.Sprintf("%s%s\n", cursor, style.Render(label)))
	}

	sb.WriteString(HelpStyle.Render(b.keys.HelpText()))
	sb.WriteString("\n")
	return sb.String()
}

// entries lists the current level: subdirectories in name order first, then
// files in insertion order.
func (b *Browser) entries() []entry {
	var out []entry

	if len(b.stack) == 0 {
		dirs := b.structure.ListDirectories()
		for _, name := range sortedDirNames(dirs) {
			out = append(out, entry{name: name, dir: dirs[name]})
		}
		return out
	}

	current := b.stack[len(b.stack)-1]
	subs := current.Directories()
	for _, name := range sortedDirNames(subs) {
		out = append(out, entry{name: name, dir: subs[name]})
	}
	for _, f := range current.Files() {
		out = append(out, entry{name: f.Name()})
	}
	return out
}

func (b *Browser) breadcrumb() string {
	if len(b.stack) == 0 {
		return "/"
	}
	names := make([]string, 0, len(b.stack))
	for _, d := range b.stack {
		names = append(names, d.Name())
	}
	return "/" + strings.Join(names, "/")
}

func sortedDirNames(m map[string]*treekeep.Directory) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
