package explorer

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/bhasha/foundation/bhasha"
	"github.com/msto63/bhasha/foundation/bhasha/diag"
	bherror "github.com/msto63/bhasha/foundation/core/error"
	bhlog "github.com/msto63/bhasha/foundation/core/log"
	"github.com/msto63/bhasha/internal/history"
)

// View selects how accepted inputs are shown
type View int

const (
	ViewSExpr View = iota
	ViewTree
)

// Model is the explorer TUI model
type Model struct {
	// State
	view   View
	width  int
	height int
	ready  bool
	err    error

	// Components
	textarea textarea.Model
	viewport viewport.Model

	engine  *bhasha.Engine
	msgs    *diag.Messages
	store   history.Store
	session *history.Session
	logger  *bhlog.Logger
	limit   int

	results []Result

	// recall buffer, oldest first; recall == len(recallBuf) means "not recalling"
	recallBuf []string
	recall    int

	content string
}

// New creates a model and opens a history session
func New(ctx context.Context, cfg Config) (Model, error) {
	if cfg.Engine == nil || cfg.Store == nil {
		return Model{}, bherror.New("explorer needs an engine and a history store").
			WithCode(bherror.CodeInvalidInput).
			WithOperation("explorer.new")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = bhlog.GetDefault()
	}
	msgs := cfg.Engine.Messages()

	session, err := cfg.Store.StartSession(ctx, msgs.Locale())
	if err != nil {
		return Model{}, err
	}
	logger = logger.WithField("component", "bhasha-explorer").WithCorrelationID(session.ID)
	logger.Info("explorer session started", bhlog.Fields{"locale": msgs.Locale()})

	ta := textarea.New()
	ta.Placeholder = msgs.T("explorer.placeholder", nil)
	ta.Focus()
	ta.CharLimit = 4000
	ta.SetWidth(80)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	return Model{
		view:     ViewSExpr,
		textarea: ta,
		engine:   cfg.Engine,
		msgs:     msgs,
		store:    cfg.Store,
		session:  session,
		logger:   logger,
		limit:    cfg.HistoryLimit,
	}, nil
}

// Session returns the history session of this explorer run
func (m Model) Session() *history.Session {
	return m.session
}

// Results returns the inputs parsed in this session
func (m Model) Results() []Result {
	return m.results
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.loadHistory(),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.view = (m.view + 1) % 2
			m.updateContent()
			return m, nil

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()
			m.pushRecall(input)
			return m, m.evaluate(input)

		case "up":
			m.recallStep(-1)
			return m, nil

		case "down":
			m.recallStep(1)
			return m, nil

		case "ctrl+l":
			m.results = nil
			m.err = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(1, msg.Height-8))
			m.viewport.YPosition = 3
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(1, msg.Height-8)
		}
		m.textarea.SetWidth(max(10, msg.Width-4))
		m.updateContent()

	case historyLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.logger.LogError(msg.err)
		} else {
			m.recallBuf = append(msg.sources, m.recallBuf...)
			m.recall = len(m.recallBuf)
		}

	case evaluatedMsg:
		m.results = append(m.results, msg.result)
		m.err = msg.err
		if msg.err != nil {
			m.logger.LogError(msg.err)
		}
		m.updateContent()
	}

	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) pushRecall(input string) {
	if n := len(m.recallBuf); n == 0 || m.recallBuf[n-1] != input {
		m.recallBuf = append(m.recallBuf, input)
	}
	m.recall = len(m.recallBuf)
}

// recallStep moves through earlier inputs; stepping past the newest clears
// the input line
func (m *Model) recallStep(delta int) {
	if len(m.recallBuf) == 0 {
		return
	}
	m.recall += delta
	if m.recall < 0 {
		m.recall = 0
	}
	if m.recall >= len(m.recallBuf) {
		m.recall = len(m.recallBuf)
		m.textarea.Reset()
		return
	}
	m.textarea.SetValue(m.recallBuf[m.recall])
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "…"
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Render(m.textarea.View()))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m Model) renderHeader() string {
	tabs := []string{"s-expr", "tree"}
	rendered := make([]string, len(tabs))
	for i, tab := range tabs {
		if View(i) == m.view {
			rendered[i] = ActiveTabStyle.Render(tab)
		} else {
			rendered[i] = TabStyle.Render(tab)
		}
	}

	title := lipgloss.JoinHorizontal(lipgloss.Top,
		TitleStyle.Render(m.msgs.T("explorer.title", nil)),
		"  ",
		SubtitleStyle.Render(m.msgs.Locale()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

func (m Model) renderFooter() string {
	help := m.msgs.T("explorer.help", nil)
	status := m.msgs.T("explorer.session", map[string]interface{}{"Session": shortID(m.session.ID)}) +
		" · " + m.msgs.Plural("explorer.entries", len(m.results), nil)
	if m.err != nil {
		status = StatusErrorStyle.Render(m.err.Error())
	}

	gap := max(1, m.width-lipgloss.Width(help)-lipgloss.Width(status)-2)
	return StatusBarStyle.Width(m.width).Render(help + strings.Repeat(" ", gap) + status)
}

func (m *Model) updateContent() {
	var content strings.Builder

	for _, r := range m.results {
		content.WriteString(PromptStyle.Render("› "))
		content.WriteString(r.Source)
		content.WriteString("\n")

		if !r.OK {
			content.WriteString(ErrorMessageStyle.Render(r.Diagnostic))
			content.WriteString("\n\n")
			continue
		}

		if m.view == ViewTree {
			content.WriteString(TreeStyle.Render(r.Tree))
		} else {
			content.WriteString(TreeStyle.Render(r.SExpr))
		}
		content.WriteString("\n")
		if names := m.formatNames(r); names != "" {
			content.WriteString(NamesStyle.Render(names))
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}

	m.content = content.String()
	m.viewport.SetContent(m.content)
	m.viewport.GotoBottom()
}

func (m Model) formatNames(r Result) string {
	if r.Names == nil {
		return ""
	}
	groups := []struct {
		key   string
		names []string
	}{
		{"explorer.assigned", r.Names.Assigned},
		{"explorer.read", r.Names.Read},
		{"explorer.functions", r.Names.Functions},
		{"explorer.params", r.Names.Params},
	}

	var parts []string
	for _, g := range groups {
		if len(g.names) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", m.msgs.T(g.key, nil), strings.Join(g.names, ", ")))
		}
	}
	return strings.Join(parts, " · ")
}

// Message types for async operations
type historyLoadedMsg struct {
	sources []string
	err     error
}

type evaluatedMsg struct {
	result Result
	err    error
}

func (m Model) loadHistory() tea.Cmd {
	store, limit := m.store, m.limit
	return func() tea.Msg {
		if limit <= 0 {
			return historyLoadedMsg{}
		}
		entries, err := store.Recent(context.Background(), limit)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		sources := make([]string, len(entries))
		for i, e := range entries {
			sources[i] = e.Source
		}
		return historyLoadedMsg{sources: sources}
	}
}

// evaluate parses input and stores it; a failing store does not hide the
// parse result
func (m Model) evaluate(input string) tea.Cmd {
	engine, store, session, logger := m.engine, m.store, m.session, m.logger
	return func() tea.Msg {
		res := Evaluate(engine, input)
		logger.Debug("input evaluated", bhlog.Fields{"ok": res.OK, "length": len(input)})

		err := store.Add(context.Background(), &history.Entry{
			SessionID: session.ID,
			Source:    input,
			OK:        res.OK,
			Result:    res.Summary(),
		})
		return evaluatedMsg{result: res, err: err}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
