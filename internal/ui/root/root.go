package root

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/recoverops/dca-console/internal/controller"
	"github.com/recoverops/dca-console/internal/keymap"
	"github.com/recoverops/dca-console/internal/state"
	"github.com/recoverops/dca-console/internal/theme"
	"github.com/recoverops/dca-console/internal/ui/view"
	"github.com/recoverops/dca-console/internal/ui/views/agencies"
	"github.com/recoverops/dca-console/internal/ui/views/cases"
	"github.com/recoverops/dca-console/internal/ui/views/dashboard"
	"github.com/recoverops/dca-console/internal/util"
)

// Options controls how the root model is assembled.
type Options struct {
	Theme     theme.Theme
	KeyMap    *keymap.Global
	Refresher controller.Refresher
}

// Model orchestrates routed Bubble Tea views and global UI chrome. While
// the first refresh is pending it renders a blocking spinner, and after a
// failed refresh it replaces the whole screen with an error panel; tabbed
// content is only shown for a Ready snapshot.
type Model struct {
	store     *state.Store
	sub       *state.Subscription
	keymap    keymap.Global
	theme     theme.Theme
	refresher controller.Refresher
	spinner   spinner.Model

	views  map[state.ViewKind]view.Model
	order  []state.ViewKind
	active state.ViewKind

	width  int
	height int
}

// New builds the root Bubble Tea model.
func New(store *state.Store, opts Options) *Model {
	keyMap := keymap.DefaultGlobal()
	if opts.KeyMap != nil {
		keyMap = *opts.KeyMap
	}

	views := map[state.ViewKind]view.Model{
		state.ViewDashboard: dashboard.New(store, opts.Theme),
		state.ViewCases:     cases.New(store, opts.Theme),
		state.ViewAgencies:  agencies.New(store, opts.Theme),
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = opts.Theme.Title

	model := &Model{
		store:     store,
		keymap:    keyMap,
		theme:     opts.Theme,
		refresher: opts.Refresher,
		spinner:   sp,
		views:     views,
		order:     append([]state.ViewKind{}, state.DefaultViewOrder...),
		active:    state.ViewDashboard,
	}
	if store != nil {
		model.sub = store.Subscribe()
	}
	return model
}

type storeChangeMsg struct{}

func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.views)+2)
	for _, v := range m.views {
		cmds = append(cmds, v.Init())
	}
	cmds = append(cmds, m.spinner.Tick)
	cmds = append(cmds, waitForStoreChanges(m.sub))
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangeMsg:
		return m, waitForStoreChanges(m.sub)

	case spinner.TickMsg:
		if m.store.Snapshot().Phase != state.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, v := range m.views {
			v.SetSize(msg.Width, max(1, msg.Height-2))
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.NextView):
			m.cycle(1)
		case key.Matches(msg, m.keymap.PrevView):
			m.cycle(-1)
		case key.Matches(msg, m.keymap.Refresh):
			if m.refresher != nil {
				m.refresher.Kick()
			}
			return m, nil
		}

	case tea.QuitMsg:
		m.closeSubscription()
	}

	activeView := m.activeView()
	updated, cmd := activeView.Update(msg)
	if nextView, ok := updated.(view.Model); ok {
		m.views[m.active] = nextView
	}

	return m, cmd
}

func (m *Model) View() string {
	activeView := m.activeView()
	if activeView == nil {
		return ""
	}

	snapshot := m.store.Snapshot()

	headline := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Title.Render("DCA Console"),
		lipgloss.NewStyle().Padding(0, 1).Render(m.renderTabs()),
	)

	var body string
	switch snapshot.Phase {
	case state.PhaseLoading:
		body = m.renderLoading()
	case state.PhaseFailed:
		body = m.renderFailure(snapshot.LastError)
	default:
		body = activeView.View()
	}

	footer := m.theme.Footer.Render(m.footerLine(snapshot))
	return lipgloss.JoinVertical(lipgloss.Left, headline, body, footer)
}

func (m *Model) renderLoading() string {
	content := fmt.Sprintf("%s Contacting analytics backend...", m.spinner.View())
	return m.theme.Body.Width(max(1, m.width)).Height(max(3, m.height-2)).Render(content)
}

func (m *Model) renderFailure(reason string) string {
	lines := []string{
		m.theme.Danger.Render("Refresh failed"),
		"",
		util.Fallback(reason, "unknown error"),
		"",
		m.theme.Subtle.Render("Verify the analytics backend is reachable."),
		m.theme.Subtle.Render("Press r to retry; the next scheduled refresh will also retry."),
	}
	return m.theme.Body.Width(max(1, m.width)).Height(max(3, m.height-2)).Render(strings.Join(lines, "\n"))
}

func (m *Model) activeView() view.Model {
	return m.views[m.active]
}

func (m *Model) cycle(delta int) {
	if len(m.order) == 0 {
		return
	}
	idx := util.WrapIndex(indexOf(m.order, m.active), delta, len(m.order))
	m.active = m.order[idx]
	m.store.SetActiveView(m.active)
}

func (m *Model) closeSubscription() {
	if m.sub != nil {
		m.sub.Close()
		m.sub = nil
	}
}

func (m *Model) renderTabs() string {
	labels := make([]string, 0, len(m.order))
	for _, kind := range m.order {
		view := m.views[kind]
		if view == nil {
			continue
		}
		labels = append(labels, m.theme.RenderTab(view.Title(), kind == m.active))
	}
	return strings.Join(labels, " ")
}

func (m *Model) footerLine(snapshot state.Snapshot) string {
	line := fmt.Sprintf("View %s · %s · %s", titleCase(string(snapshot.ActiveView)), titleCase(string(snapshot.Phase)), m.keymap.ShortHelp())
	if snapshot.Phase == state.PhaseReady && !snapshot.UpdatedAt.IsZero() {
		line = fmt.Sprintf("%s · updated %s", line, util.RelativeTime(snapshot.UpdatedAt))
	}
	return line
}

func indexOf(values []state.ViewKind, target state.ViewKind) int {
	for idx, value := range values {
		if value == target {
			return idx
		}
	}
	return 0
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func titleCase(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

func waitForStoreChanges(sub *state.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-sub.Events(); !ok {
			return nil
		}
		return storeChangeMsg{}
	}
}
