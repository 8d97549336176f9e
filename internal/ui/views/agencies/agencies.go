package agencies

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/recoverops/dca-console/internal/api"
	"github.com/recoverops/dca-console/internal/state"
	"github.com/recoverops/dca-console/internal/theme"
	"github.com/recoverops/dca-console/internal/ui/components/table"
	"github.com/recoverops/dca-console/internal/ui/view"
	"github.com/recoverops/dca-console/internal/util"
	"github.com/recoverops/dca-console/internal/viewmodel"
)

// Model renders the agency performance leaderboard. Rows keep the order
// the backend returned them in; ranking is the backend's concern.
type Model struct {
	store  *state.Store
	theme  theme.Theme
	width  int
	height int
}

const (
	columnGap     = 1
	rankWidth     = 4
	codeWidth     = 8
	nameWidth     = 22
	recoveryWidth = 12
	daysWidth     = 10
	slaWidth      = 8
	capacityWidth = 12
	casesWidth    = 7
)

var columnWidths = []int{
	rankWidth, codeWidth, nameWidth, recoveryWidth,
	daysWidth, slaWidth, capacityWidth, casesWidth,
}

// New constructs the agencies view.
func New(store *state.Store, th theme.Theme) view.Model {
	return &Model{store: store, theme: th}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(_ tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m *Model) View() string {
	snapshot := m.store.Snapshot()

	if len(snapshot.Performance) == 0 {
		msg := m.theme.Subtle.Render("No agency performance data returned by the backend.")
		return m.wrap(msg)
	}

	gap := strings.Repeat(" ", columnGap)
	rows := make([]string, 0, len(snapshot.Performance)+1)
	rows = append(rows, m.renderHeader(gap))
	for idx, record := range snapshot.Performance {
		rows = append(rows, m.renderRow(record, idx, gap))
	}

	legend := m.theme.Subtle.Render(
		fmt.Sprintf("✓ recovery ≥ %s · ! capacity > %s", viewmodel.FormatPercent(70), viewmodel.FormatPercent(80)))
	body := lipgloss.JoinVertical(lipgloss.Left, append(rows, legend)...)
	return m.wrap(body)
}

func (m *Model) Title() string { return "Agencies" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetTheme(th theme.Theme) {
	m.theme = th
}

func (m *Model) renderHeader(gap string) string {
	headerStyle := m.theme.Header.Bold(true).Padding(0)
	labels := []string{"#", "CODE", "AGENCY", "RECOVERY", "AVG DAYS", "SLA", "CAPACITY", "CASES"}
	cells := make([]string, len(labels))
	for i := range labels {
		cells[i] = table.PadAndStyle(headerStyle, labels[i], columnWidths[i], true)
	}
	return strings.Join(cells, gap)
}

func (m *Model) renderRow(record api.DCAPerformance, idx int, gap string) string {
	bg := m.theme.TableRowOdd
	if idx%2 == 0 {
		bg = m.theme.TableRowEven
	}
	cellStyle := m.theme.Body.UnsetBackground().Background(bg).Padding(0)
	codeStyle := m.theme.Title.UnsetBackground().Background(bg).Padding(0)

	recoveryStyle := m.theme.Danger.UnsetBackground().Background(bg).Padding(0)
	recovery := viewmodel.FormatPercent(record.RecoveryRate)
	if viewmodel.RecoveryOnTarget(record.RecoveryRate) {
		recoveryStyle = m.theme.Success.UnsetBackground().Background(bg).Padding(0)
		recovery += " ✓"
	}

	capacityStyle := cellStyle
	capacity := viewmodel.FormatPercent(record.CapacityPct)
	if viewmodel.CapacityOverloaded(record.CapacityPct) {
		capacityStyle = m.theme.Warning.UnsetBackground().Background(bg).Padding(0)
		capacity += " !"
	}

	columns := []string{
		table.PadAndStyle(cellStyle, fmt.Sprintf("%d", idx+1), rankWidth, true),
		table.PadAndStyle(codeStyle, util.Fallback(record.Code, "-"), codeWidth, true),
		table.PadAndStyle(cellStyle, util.Fallback(record.Name, "-"), nameWidth, true),
		table.PadAndStyle(recoveryStyle, recovery, recoveryWidth, true),
		table.PadAndStyle(cellStyle, fmt.Sprintf("%.1f", record.AvgDaysToRecovery), daysWidth, true),
		table.PadAndStyle(cellStyle, viewmodel.FormatPercent(record.SLAAdherenceRate), slaWidth, true),
		table.PadAndStyle(capacityStyle, capacity, capacityWidth, true),
		table.PadAndStyle(cellStyle, fmt.Sprintf("%d", record.ActiveCases), casesWidth, true),
	}

	rowGap := lipgloss.NewStyle().Background(bg).Render(gap)
	return strings.Join(columns, rowGap)
}

func (m *Model) wrap(body string) string {
	return m.theme.Body.Width(maxInt(1, m.width)).Height(maxInt(5, m.height)).Render(body)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
