package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/addressbook/internal/archive"
	"github.com/jask/addressbook/internal/command"
	"github.com/jask/addressbook/internal/database/repository"
	"github.com/jask/addressbook/internal/selection"
)

type contactList = selection.List[repository.EmergencyContact]

// App ties together the person cards, the archive pane and the command box.
type App struct {
	ctx      context.Context
	model    command.Model
	registry *command.Registry
	watcher  *archive.Watcher
	keys     keyMap

	persons []repository.Person
	// cards[i] holds the emergency contacts of persons[i]
	cards       []*contactList
	coordinator *selection.Coordinator[repository.EmergencyContact]
	focus       int

	archives []archive.Entry

	input       textinput.Model
	commandMode bool
	showHelp    bool
	status      string
	statusErr   bool
	quitting    bool
	width       int
	height      int
}

// New builds the app. watcher may be nil, in which case the archive pane only
// refreshes after commands.
func New(ctx context.Context, m command.Model, registry *command.Registry, watcher *archive.Watcher) *App {
	if registry == nil {
		registry = command.DefaultRegistry()
	}
	in := textinput.New()
	in.Prompt = ": "
	in.Placeholder = "deleteArchive addressbook-20241023_114324-example.json"
	in.CharLimit = 256
	return &App{
		ctx:         ctx,
		model:       m,
		registry:    registry,
		watcher:     watcher,
		keys:        defaultKeyMap(),
		coordinator: selection.NewCoordinator[repository.EmergencyContact](),
		input:       in,
		status:      "Ready",
		width:       100,
		height:      32,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadPersons(), a.loadArchives(), a.waitForArchiveChange())
}

func (a *App) loadPersons() tea.Cmd {
	return func() tea.Msg {
		persons, err := a.model.Persons(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return personsMsg(persons)
	}
}

func (a *App) loadArchives() tea.Cmd {
	return func() tea.Msg {
		entries, err := archive.List(a.model.ArchiveDirectoryPath())
		if err != nil {
			return errMsg{err}
		}
		return archivesMsg(entries)
	}
}

func (a *App) waitForArchiveChange() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	changes := a.watcher.Changes()
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return archiveChangedMsg{}
	}
}

func (a *App) runCommand(cmd command.Command) tea.Cmd {
	return func() tea.Msg {
		res, err := cmd.Execute(a.ctx, a.model)
		if err != nil {
			return errMsg{err}
		}
		return commandDoneMsg{Result: res}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.input.Width = max(10, m.Width-4)
	case tea.KeyMsg:
		if a.commandMode {
			return a.handlePromptKey(m)
		}
		return a.handleBrowseKey(m)
	case personsMsg:
		a.setPersons([]repository.Person(m))
	case archivesMsg:
		a.archives = []archive.Entry(m)
	case archiveChangedMsg:
		return a, tea.Batch(a.loadArchives(), a.waitForArchiveChange())
	case commandDoneMsg:
		a.setStatus(m.Result.Feedback)
		if m.Result.Exit {
			a.quitting = true
			return a, tea.Quit
		}
		if m.Result.ShowHelp {
			a.showHelp = true
		}
		cmds := []tea.Cmd{a.loadArchives()}
		if m.Result.Reload {
			cmds = append(cmds, a.loadPersons())
		}
		return a, tea.Batch(cmds...)
	case errMsg:
		a.setError(m.error)
	}
	return a, nil
}

func (a *App) handleBrowseKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit
	case key.Matches(m, a.keys.Command):
		a.commandMode = true
		a.input.SetValue("")
		return a, a.input.Focus()
	case key.Matches(m, a.keys.Help):
		a.showHelp = !a.showHelp
	case key.Matches(m, a.keys.Next):
		a.moveFocus(1)
	case key.Matches(m, a.keys.Prev):
		a.moveFocus(-1)
	case key.Matches(m, a.keys.Down):
		if l := a.focused(); l != nil {
			l.SelectNext()
		}
	case key.Matches(m, a.keys.Up):
		if l := a.focused(); l != nil {
			l.SelectPrev()
		}
	case key.Matches(m, a.keys.Clear):
		if a.showHelp {
			a.showHelp = false
			break
		}
		if l := a.focused(); l != nil {
			l.ClearSelection()
		}
	}
	return a, nil
}

func (a *App) handlePromptKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.ForceQuit):
		a.quitting = true
		return a, tea.Quit
	case key.Matches(m, a.keys.Cancel):
		a.leavePrompt()
		return a, nil
	case key.Matches(m, a.keys.Run):
		line := a.input.Value()
		a.leavePrompt()
		cmd, err := a.registry.Parse(line)
		if err != nil {
			log.FromContext(a.ctx).Debug("rejected command", "input", line, "err", err)
			a.setError(err)
			return a, nil
		}
		a.setStatus("running...")
		return a, a.runCommand(cmd)
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	return a, cmd
}

func (a *App) leavePrompt() {
	a.commandMode = false
	a.input.Blur()
}

// setPersons rebuilds every card. Old lists are unregistered first so the
// coordinator never holds lists that are no longer on screen.
func (a *App) setPersons(persons []repository.Person) {
	a.coordinator.UnregisterAll()
	a.persons = persons
	a.cards = make([]*contactList, len(persons))
	for i, p := range persons {
		l := selection.NewList(p.EmergencyContacts)
		a.cards[i] = l
		a.coordinator.Register(l)
	}
	if a.focus >= len(a.cards) {
		a.focus = 0
	}
	if l := a.focused(); l == nil || l.Len() == 0 {
		a.moveFocus(1)
	}
}

func (a *App) focused() *contactList {
	if a.focus < 0 || a.focus >= len(a.cards) {
		return nil
	}
	return a.cards[a.focus]
}

// moveFocus steps to the next card that has emergency contacts, wrapping.
func (a *App) moveFocus(delta int) {
	n := len(a.cards)
	for step := 1; step <= n; step++ {
		i := ((a.focus+delta*step)%n + n) % n
		if a.cards[i].Len() > 0 {
			a.focus = i
			return
		}
	}
}

// activeContact returns the selected emergency contact and its owner.
func (a *App) activeContact() (repository.EmergencyContact, repository.Person, bool) {
	w, ok := a.coordinator.Active()
	if !ok {
		return repository.EmergencyContact{}, repository.Person{}, false
	}
	i := slices.IndexFunc(a.cards, func(l *contactList) bool {
		return selection.Widget[repository.EmergencyContact](l) == w
	})
	ec, selected := w.Selected()
	if i < 0 || !selected {
		return repository.EmergencyContact{}, repository.Person{}, false
	}
	return ec, a.persons[i], true
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		a.setStatus("")
		return
	}
	var perr *command.ParseError
	if errors.As(err, &perr) {
		a.status = perr.Error()
	} else {
		a.status = "error: " + err.Error()
	}
	a.statusErr = true
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	return a.render()
}

type personsMsg []repository.Person

type archivesMsg []archive.Entry

type archiveChangedMsg struct{}

type commandDoneMsg struct {
	Result command.Result
}

type errMsg struct{ error }

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return strings.Join(parts, "  ")
}
