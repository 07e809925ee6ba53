// Package repl implements an interactive session that compiles
// manifest statements incrementally, with fuzzy completion over the
// declared constant names.
package repl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/setcomp/lang"
	"github.com/ardnew/setcomp/log"
)

const prompt = "➜ "

// Control commands are entered with a leading colon.
var ctrlCommands = []string{":help", ":list", ":source", ":clear", ":quit"}

func helpMessage() string {
	return `
  :help     Print this cruft
  :list     List declared constants
  :source   Print the accumulated manifest source
  :clear    Clear screen
  :quit     Exit

Usage:
  Type one or more statements to compile them, e.g. set port = 0o50
  Accepted statements accumulate; later statements may reference
  earlier constants. Completions appear as you type; press Tab or
  Shift-Tab to cycle candidates. Use Up/Down for history. Press
  Ctrl+C on an empty line or Ctrl+D to exit.
`
}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// formatEcho formats the echoed input line with prompt and input
// styled.
func formatEcho(input string) string {
	return promptStyle.Render(prompt) + inputStyle.Render(input)
}

// model is the Bubble Tea model for the interactive session.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	source       string
	doc          *lang.Document
	logger       log.Logger
	history      *History
	historyIdx   int
	matches      fuzzy.Matches
	wordStart    int
	wordEnd      int
	suggIdx      int
	tabActive    bool
	preTabText   string
	preTabCursor int
	width        int
	quitting     bool
}

// Run starts the interactive session. The given source, which may be
// empty, is compiled up front and seeds the session.
func Run(
	ctx context.Context,
	source string,
	cacheDir string,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.TraceContext(ctx, "repl start",
		slog.String("cache_dir", cacheDir),
		slog.Int("source_length", len(source)),
	)

	doc, err := lang.CompileString(ctx, source, lang.WithLogger(logger))
	if err != nil {
		return err
	}

	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		logger.WarnContext(ctx, "could not load history",
			slog.Any("error", err))
	}

	m := newModel(ctx, source, doc, history, logger)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	if saveErr := history.Save(); saveErr != nil {
		logger.WarnContext(ctx, "could not save history",
			slog.Any("error", saveErr))
	}

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	source string,
	doc *lang.Document,
	history *History,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		source:     source,
		doc:        doc,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(prompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	input := m.input.Value()

	switch {
	case m.historyIdx < m.history.Len():
		pos := m.historyIdx + 1
		b.WriteString(hintStyle.Render(
			fmt.Sprintf("%d/%d", pos, m.history.Len())))
		b.WriteString("\n")

	case strings.TrimSpace(input) == "":
		b.WriteString(hintStyle.Render(
			"Type a statement, or :help for commands"))
		b.WriteString("\n")

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(
			m.matches, m.suggIdx, m.tabActive, m.width))
		b.WriteString("\n")

	default:
		b.WriteString("\n")
	}

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		refreshMatches(&m)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if m.tabActive && len(m.matches) > 0 {
			// Lock in the current tab candidate without executing.
			m.tabActive = false
			refreshMatches(&m)

			return m, nil
		}

		return m.executeInput()

	case tea.KeyTab:
		return m.cycleTab(1)

	case tea.KeyShiftTab:
		return m.cycleTab(-1)

	case tea.KeyUp:
		return m.historyPrev()

	case tea.KeyDown:
		return m.historyNext()

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			refreshMatches(&m)
		}

		return m, nil

	case tea.KeyRunes:
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		refreshMatches(&m)

		return m, cmd
	}

	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m)

	return m, cmd
}

func (m model) cycleTab(dir int) (model, tea.Cmd) {
	if len(m.matches) == 0 {
		return m, nil
	}

	if len(m.matches) == 1 {
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m, nil
	}

	if m.tabActive {
		m.suggIdx = (m.suggIdx + dir + len(m.matches)) % len(m.matches)
	} else {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
		m.suggIdx = 0
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m, nil
}

func (m model) historyPrev() (model, tea.Cmd) {
	if m.historyIdx <= 0 {
		return m, nil
	}

	m.historyIdx--
	m.input.SetValue(m.history.At(m.historyIdx))
	m.input.CursorEnd()
	m.tabActive = false
	m.matches = nil

	return m, nil
}

func (m model) historyNext() (model, tea.Cmd) {
	if m.historyIdx >= m.history.Len() {
		return m, nil
	}

	m.historyIdx++

	if m.historyIdx == m.history.Len() {
		m.input.SetValue("")
	} else {
		m.input.SetValue(m.history.At(m.historyIdx))
		m.input.CursorEnd()
	}

	m.tabActive = false
	m.matches = nil

	return m, nil
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.history.Write(input)
	m.historyIdx = m.history.Len()
	m.input.SetValue("")
	m.tabActive = false
	m.matches = nil

	echo := tea.Println(formatEcho(input))

	if strings.HasPrefix(input, ":") {
		return m.executeCommand(input, echo)
	}

	return m.executeStatements(input, echo)
}

func (m model) executeCommand(input string, echo tea.Cmd) (model, tea.Cmd) {
	switch input {
	case ":help":
		return m, tea.Sequence(echo, tea.Println(hintStyle.Render(helpMessage())))

	case ":list":
		if m.doc.Len() == 0 {
			return m, tea.Sequence(echo,
				tea.Println(hintStyle.Render("no constants declared")))
		}

		var b strings.Builder

		for name, value := range m.doc.All() {
			fmt.Fprintf(&b, "%s = %s\n", name, value)
		}

		return m, tea.Sequence(echo,
			tea.Println(resultStyle.Render(strings.TrimRight(b.String(), "\n"))))

	case ":source":
		src := strings.TrimSpace(m.source)
		if src == "" {
			src = hintStyle.Render("empty manifest")
		}

		return m, tea.Sequence(echo, tea.Println(src))

	case ":clear":
		return m, tea.ClearScreen

	case ":quit":
		m.quitting = true

		return m, tea.Quit

	default:
		return m, tea.Sequence(echo, tea.Println(
			errorStyle.Render("unknown command: "+input)))
	}
}

func (m model) executeStatements(input string, echo tea.Cmd) (model, tea.Cmd) {
	candidate := m.source
	if candidate != "" && !strings.HasSuffix(candidate, "\n") {
		candidate += "\n"
	}

	candidate += input + "\n"

	doc, err := lang.CompileString(
		m.ctxFunc(), candidate, lang.WithLogger(m.logger))
	if err != nil {
		return m, tea.Sequence(echo,
			tea.Println(errorStyle.Render(err.Error())))
	}

	changed := diffBindings(m.doc, doc)

	m.source = candidate
	m.doc = doc

	if len(changed) == 0 {
		return m, echo
	}

	var b strings.Builder

	for _, name := range changed {
		value, _ := doc.Get(name)
		fmt.Fprintf(&b, "%s = %s\n", name, value)
	}

	return m, tea.Sequence(echo,
		tea.Println(resultStyle.Render(strings.TrimRight(b.String(), "\n"))))
}

// diffBindings returns the names whose value is new or changed in next
// relative to prev, in next's document order.
func diffBindings(prev, next *lang.Document) []string {
	var changed []string

	for name, value := range next.All() {
		old, ok := prev.Get(name)
		if !ok || !old.Equal(value) {
			changed = append(changed, name)
		}
	}

	return changed
}
