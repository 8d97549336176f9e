package cases

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

// Model renders the most recent collection cases in a scrollable table.
type Model struct {
	store *state.Store
	theme theme.Theme

	width  int
	height int

	rowIdx        int
	tableOffset   int
	tableXOffset  int
	tableMaxWidth int
}

const (
	defaultTableRows = 8
	minTableRows     = 3
	tableChrome      = 8
	columnGap        = 1

	cursorWidth      = 2
	caseIDWidth      = 10
	accountWidth     = 14
	outstandingWidth = 12
	overdueWidth     = 7
	priorityWidth    = 8
	tierWidth        = 8
	statusWidth      = 10
	breachWidth      = 6
)

var columnWidths = []int{
	cursorWidth, caseIDWidth, accountWidth, outstandingWidth,
	overdueWidth, priorityWidth, tierWidth, statusWidth, breachWidth,
}

// New constructs the cases view.
func New(store *state.Store, th theme.Theme) view.Model {
	return &Model{store: store, theme: th}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	snapshot := m.store.Snapshot()
	m.clampSelection(len(snapshot.Cases))

	switch key := msg.(type) {
	case tea.KeyMsg:
		switch key.String() {
		case "left":
			m.adjustTableX(-4)
		case "right":
			m.adjustTableX(4)
		case "up":
			if m.rowIdx > 0 {
				m.rowIdx--
			}
		case "down":
			if m.rowIdx < len(snapshot.Cases)-1 {
				m.rowIdx++
			}
		case "home", "g":
			m.rowIdx = 0
		case "end", "G":
			if n := len(snapshot.Cases); n > 0 {
				m.rowIdx = n - 1
			}
		}
	}

	return m, nil
}

func (m *Model) View() string {
	snapshot := m.store.Snapshot()
	m.clampSelection(len(snapshot.Cases))

	if len(snapshot.Cases) == 0 {
		msg := m.theme.Subtle.Render("No cases returned by the backend.")
		return m.wrap(msg)
	}

	tbl := m.renderTable(snapshot.Cases)
	status := m.theme.Subtle.Render("←/→ scroll · ↑/↓ select · home/end")
	body := lipgloss.JoinVertical(lipgloss.Left, tbl, status)
	return m.wrap(body)
}

func (m *Model) Title() string { return "Cases" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetTheme(th theme.Theme) {
	m.theme = th
}

func (m *Model) renderTable(cases []api.Case) string {
	capacity := m.tableCapacity()
	start := m.tableOffset
	if start > len(cases)-capacity {
		start = maxInt(0, len(cases)-capacity)
	}
	end := minInt(len(cases), start+capacity)
	gap := strings.Repeat(" ", columnGap)

	rows := make([]string, 0, (end-start)+2)
	rows = append(rows, m.renderHeader(gap))
	for idx := start; idx < end; idx++ {
		rows = append(rows, m.renderRow(cases[idx], idx, idx == m.rowIdx, gap))
	}
	if end < len(cases) {
		tableWidth := totalWidth() + columnGap*(len(columnWidths)-1)
		rows = append(rows, table.RenderCaretRow(tableWidth, m.theme.Subtle))
	}

	m.tableMaxWidth = table.ComputeMaxWidth(rows)
	clipped := table.ClipRows(rows, m.tableXOffset, maxInt(1, m.contentWidth()))
	return lipgloss.JoinVertical(lipgloss.Left, clipped...)
}

func (m *Model) renderHeader(gap string) string {
	headerStyle := m.theme.Header.Bold(true).Padding(0)
	labels := []string{"", "CASE", "ACCOUNT", "OUTSTANDING", "OVERDUE", "PRIORITY", "TIER", "STATUS", "SLA"}
	cells := make([]string, len(labels))
	for i := range labels {
		cells[i] = table.PadAndStyle(headerStyle, labels[i], columnWidths[i], true)
	}
	return strings.Join(cells, gap)
}

func (m *Model) renderRow(c api.Case, rowIdx int, selected bool, gap string) string {
	bg := m.theme.TableRowOdd
	if rowIdx%2 == 0 {
		bg = m.theme.TableRowEven
	}
	if selected {
		bg = m.theme.TableRowSelect
	}
	cursor := " "
	if selected {
		cursor = ">"
	}

	cellStyle := m.theme.Body.UnsetBackground().Background(bg).Padding(0)
	idStyle := m.theme.Title.UnsetBackground().Background(bg).Padding(0)
	breachStyle := cellStyle
	breachLabel := "-"
	if c.SLABreach {
		breachStyle = m.theme.Danger.UnsetBackground().Background(bg).Padding(0)
		breachLabel = "BREACH"
	}

	columns := []string{
		table.PadAndStyle(cellStyle, cursor, cursorWidth, true),
		table.PadAndStyle(idStyle, viewmodel.ShortCaseID(c.CaseID), caseIDWidth, true),
		table.PadAndStyle(cellStyle, util.Fallback(c.AccountNumber, "-"), accountWidth, true),
		table.PadAndStyle(cellStyle, fmt.Sprintf("%.2f", c.TotalOutstanding), outstandingWidth, true),
		table.PadAndStyle(cellStyle, fmt.Sprintf("%dd", c.DaysOverdue), overdueWidth, true),
		table.PadAndStyle(cellStyle, fmt.Sprintf("%.1f", c.PriorityScore), priorityWidth, true),
		table.PadAndStyle(cellStyle, util.Fallback(c.SLATier, "-"), tierWidth, true),
		table.PadAndStyle(m.statusStyle(c.Status, bg), util.Fallback(c.Status, "-"), statusWidth, true),
		table.PadAndStyle(breachStyle, breachLabel, breachWidth, true),
	}

	rowGap := lipgloss.NewStyle().Background(bg).Render(gap)
	return strings.Join(columns, rowGap)
}

func (m *Model) statusStyle(status string, bg lipgloss.Color) lipgloss.Style {
	switch strings.ToUpper(status) {
	case "RESOLVED":
		return m.theme.Success.UnsetBackground().Background(bg).Padding(0)
	case "ACTIVE":
		return m.theme.Warning.UnsetBackground().Background(bg).Padding(0)
	default:
		return m.theme.Body.UnsetBackground().Background(bg).Padding(0)
	}
}

func (m *Model) wrap(body string) string {
	return m.theme.Body.Width(maxInt(1, m.width)).Height(maxInt(5, m.height)).Render(body)
}

func (m *Model) tableCapacity() int {
	if m.height <= 0 {
		return defaultTableRows
	}
	capacity := m.height - tableChrome
	if capacity < minTableRows {
		capacity = minTableRows
	}
	return capacity
}

func (m *Model) clampSelection(count int) {
	if count == 0 {
		m.rowIdx = 0
		m.tableOffset = 0
		return
	}
	if m.rowIdx >= count {
		m.rowIdx = count - 1
	}
	capacity := m.tableCapacity()
	if count <= capacity {
		m.tableOffset = 0
		return
	}
	if m.rowIdx < m.tableOffset {
		m.tableOffset = m.rowIdx
	}
	if m.rowIdx >= m.tableOffset+capacity {
		m.tableOffset = m.rowIdx - capacity + 1
	}
}

func (m *Model) adjustTableX(delta int) {
	maxOffset := 0
	if visible := m.contentWidth(); m.tableMaxWidth > visible {
		maxOffset = m.tableMaxWidth - visible
	}
	next := m.tableXOffset + delta
	if next < 0 {
		next = 0
	}
	if next > maxOffset {
		next = maxOffset
	}
	m.tableXOffset = next
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	if m.width <= 4 {
		return m.width
	}
	return m.width - 4
}

func totalWidth() int {
	total := 0
	for _, w := range columnWidths {
		total += w
	}
	return total
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
