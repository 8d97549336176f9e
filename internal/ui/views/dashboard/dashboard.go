package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/recoverops/dca-console/internal/api"
	"github.com/recoverops/dca-console/internal/state"
	"github.com/recoverops/dca-console/internal/theme"
	"github.com/recoverops/dca-console/internal/ui/view"
	"github.com/recoverops/dca-console/internal/util"
	"github.com/recoverops/dca-console/internal/viewmodel"
)

// Model renders the portfolio-wide KPI summary.
type Model struct {
	store  *state.Store
	theme  theme.Theme
	width  int
	height int
}

// New creates a dashboard view backed by the provided store.
func New(store *state.Store, th theme.Theme) view.Model {
	return &Model{store: store, theme: th}
}

// Init satisfies tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update satisfies tea.Model. The dashboard reacts only to store updates.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the dashboard contents.
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	snapshot := m.store.Snapshot()
	summary := snapshot.Dashboard

	cards := []string{
		m.renderCard("Active cases", fmt.Sprintf("%d", summary.TotalActiveCases)),
		m.renderCard("AR exposure", viewmodel.FormatMillions(summary.TotalARExposure)),
		m.renderCard("Avg days overdue", fmt.Sprintf("%d", viewmodel.RoundDays(summary.AvgDaysOverdue))),
		m.renderCard("SLA on-time", viewmodel.FormatPercent(summary.SLAHealth.OnTimePct)),
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	breakdownWidth := max(30, m.width/2-4)
	secondary := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderAging(viewmodel.AgingSeries(summary.AgingBuckets), breakdownWidth),
		m.renderRisk(viewmodel.RiskSeries(summary.RiskDistribution), breakdownWidth),
	)

	slaLine := m.renderSLAHealth(summary)
	meta := m.theme.Subtle.Render(m.metaLine(snapshot))
	body := lipgloss.JoinVertical(lipgloss.Left, row, secondary, slaLine, meta)

	return m.theme.Body.Copy().Width(m.width).Height(max(3, m.height)).Render(body)
}

// Title returns the tab label for this view.
func (m *Model) Title() string { return "Dashboard" }

// SetSize updates the view's drawing bounds.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetTheme updates the active palette.
func (m *Model) SetTheme(th theme.Theme) {
	m.theme = th
}

func (m *Model) renderCard(label, value string) string {
	const cardOverhead = 8 // border (2) + padding (4) + margin (2)
	cardWidth := max(16, m.width/4-cardOverhead)
	content := fmt.Sprintf("%s\n%s", value, label)
	return m.theme.Card.Copy().Width(cardWidth).Render(content)
}

func (m *Model) renderAging(series []viewmodel.AgingPoint, cardWidth int) string {
	title := m.theme.Title.Render("Aging buckets ($K)")
	if len(series) == 0 {
		return m.theme.Card.Copy().Width(cardWidth).Render(title + "\n" + m.theme.Subtle.Render("No aging data"))
	}

	maxAmount := 0.0
	for _, point := range series {
		if point.Amount > maxAmount {
			maxAmount = point.Amount
		}
	}

	labelWidth := 8
	barWidth := max(8, cardWidth-labelWidth-20)
	lines := make([]string, 0, len(series)+1)
	lines = append(lines, title)
	for _, point := range series {
		bar := renderRelativeBar(point.Amount, maxAmount, barWidth)
		lines = append(lines, fmt.Sprintf("%-*s %s %7.1f (%d)",
			labelWidth, util.TruncateString(point.Name, labelWidth), bar, point.Amount, point.Count))
	}
	return m.theme.Card.Copy().Width(cardWidth).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderRisk(series []viewmodel.RiskSlice, cardWidth int) string {
	title := m.theme.Title.Render("Risk distribution")
	if len(series) == 0 {
		return m.theme.Card.Copy().Width(cardWidth).Render(title + "\n" + m.theme.Subtle.Render("No risk data"))
	}

	total := 0
	for _, slice := range series {
		total += slice.Value
	}

	labelWidth := 10
	barWidth := max(8, cardWidth-labelWidth-18)
	lines := make([]string, 0, len(series)+1)
	lines = append(lines, title)
	for idx, slice := range series {
		style := lipgloss.NewStyle().Foreground(m.theme.ChartColor(idx))
		bar := style.Render(renderRelativeBar(float64(slice.Value), float64(total), barWidth))
		lines = append(lines, fmt.Sprintf("%-*s %s %5d",
			labelWidth, util.TruncateString(slice.Name, labelWidth), bar, slice.Value))
	}
	return m.theme.Card.Copy().Width(cardWidth).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderSLAHealth(summary api.DashboardSummary) string {
	health := summary.SLAHealth
	parts := []string{
		m.theme.Success.Render(fmt.Sprintf("on time %d", health.OnTime)),
		m.theme.Warning.Render(fmt.Sprintf("at risk %d", health.AtRisk)),
		m.theme.Danger.Render(fmt.Sprintf("breached %d", health.Breached)),
	}
	return m.theme.Title.Render("SLA health") + " " + strings.Join(parts, " · ")
}

func (m *Model) metaLine(snapshot state.Snapshot) string {
	if snapshot.UpdatedAt.IsZero() {
		return "Waiting for first refresh"
	}
	return fmt.Sprintf("Updated %s · auto-refresh every 30s", util.RelativeTime(snapshot.UpdatedAt))
}

func renderRelativeBar(value, maxValue float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := filledWidth(value, maxValue, width)
	return strings.Repeat("█", filled) + strings.Repeat(" ", width-filled)
}

func filledWidth(value, maxValue float64, width int) int {
	if width <= 0 || value <= 0 {
		return 0
	}
	if maxValue <= 0 {
		return width
	}
	filled := int(value/maxValue*float64(width) + 0.5)
	if filled == 0 {
		filled = 1
	}
	if filled > width {
		filled = width
	}
	return filled
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
