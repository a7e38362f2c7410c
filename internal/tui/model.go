// Package tui is the terminal front end of the configurator.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hpungsan/pcbuild/internal/ops"
	"github.com/hpungsan/pcbuild/internal/share"
)

// Model is the bubbletea model. Session calls run inside Update, so the
// session only ever sees the program goroutine.
type Model struct {
	ctx    context.Context
	sess   *ops.Session
	keys   keyMap
	bar    progress.Model
	views  []ops.View
	tab    int
	cursor int
	width  int

	notice    *ops.Notice
	shareText string // set when the manual share tier ran
	quitting  bool
}

// New returns a model positioned on the session's current view.
func New(ctx context.Context, sess *ops.Session) *Model {
	m := &Model{
		ctx:   ctx,
		sess:  sess,
		keys:  newKeyMap(),
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(40)),
		views: ops.Views(),
	}
	for i, v := range m.views {
		if v == sess.View() {
			m.tab = i
		}
	}
	return m
}

// WithNotice sets the notice shown on the first frame.
func (m *Model) WithNotice(n ops.Notice) *Model {
	m.notice = &n
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 20; w > 10 {
			m.bar.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		if m.shareText != "" {
			// The manual-copy panel swallows keys until it is closed.
			if key.Matches(msg, m.keys.Back, m.keys.Quit, m.keys.Select) {
				m.shareText = ""
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.switchTab((m.tab + 1) % len(m.views))
		case key.Matches(msg, m.keys.PrevTab):
			m.switchTab((m.tab - 1 + len(m.views)) % len(m.views))
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if n := len(m.items()); m.cursor < n-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.selectCurrent()
		case key.Matches(msg, m.keys.Save):
			n := m.sess.Save(m.ctx)
			m.notice = &n
		case key.Matches(msg, m.keys.Load):
			if out, ok := m.sess.Load(m.ctx); ok {
				m.notice = &out.Notice
			}
		case key.Matches(msg, m.keys.Share):
			out := m.sess.Share(m.ctx)
			m.notice = &out.Notice
			if out.Tier == share.TierManual {
				m.shareText = out.Text
			}
		default:
			for i, b := range m.keys.Tabs {
				if key.Matches(msg, b) && i < len(m.views) {
					m.switchTab(i)
				}
			}
		}
	}
	return m, nil
}

func (m *Model) switchTab(i int) {
	if _, err := m.sess.SwitchView(string(m.views[i])); err != nil {
		return
	}
	m.tab = i
	m.cursor = 0
	m.notice = nil
}

// items returns the catalog entries of the current tab; nil off category tabs.
func (m *Model) items() []ops.CatalogItem {
	cat, ok := m.views[m.tab].Category()
	if !ok {
		return nil
	}
	list, err := m.sess.ListCatalog(string(cat))
	if err != nil || len(list.Groups) == 0 {
		return nil
	}
	return list.Groups[0].Items
}

func (m *Model) selectCurrent() {
	items := m.items()
	if m.cursor >= len(items) {
		return
	}
	it := items[m.cursor]
	out, err := m.sess.Select(string(it.Category), it.Name)
	if err != nil {
		m.notice = &ops.Notice{Level: ops.LevelError, Message: err.Error()}
		return
	}
	m.notice = &out.Notice
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sum := m.sess.Summary()
	var b strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("🖥️  Configurador de PC"),
		"   ",
		totalStyle.Render("Total: "+sum.FormattedTotal),
	)
	b.WriteString(header + "\n")
	b.WriteString(m.bar.ViewAs(sum.Progress))
	fmt.Fprintf(&b, " %d/%d\n\n", sum.SelectedCount, sum.TotalCategories)
	b.WriteString(m.tabBar() + "\n\n")

	if m.shareText != "" {
		b.WriteString(panelStyle.Render(m.shareText) + "\n")
		b.WriteString(mutedStyle.Render("Copia la configuración manualmente · esc para cerrar") + "\n")
		return b.String()
	}

	switch m.views[m.tab] {
	case ops.ViewSummary:
		b.WriteString(renderSummary(sum))
	case ops.ViewCompatibility:
		b.WriteString(renderCheck(m.sess.Check()))
	default:
		b.WriteString(m.renderCatalog())
	}

	if m.notice != nil {
		b.WriteString("\n" + noticeStyle(m.notice.Level).Render(m.notice.Message) + "\n")
	}
	b.WriteString("\n" + m.helpLine())
	return b.String()
}

func (m *Model) tabBar() string {
	tabs := make([]string, len(m.views))
	for i, v := range m.views {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(v.Label())
		} else {
			tabs[i] = tabStyle.Render(v.Label())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderCatalog() string {
	var b strings.Builder
	for i, it := range m.items() {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := "  "
		line := fmt.Sprintf("%-28s %10s", it.Name, it.FormattedPrice)
		if it.Selected {
			mark = selectedStyle.Render("✓ ")
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor + mark + line + "\n")
		if it.Description != "" {
			b.WriteString("    " + mutedStyle.Render(it.Description) + "\n")
		}
	}
	return b.String()
}

func renderSummary(sum ops.SummaryOutput) string {
	if sum.Empty {
		return mutedStyle.Render(sum.EmptyMessage) + "\n"
	}
	var b strings.Builder
	for _, it := range sum.Items {
		fmt.Fprintf(&b, "%-16s %-28s %10s\n", it.Label+":", it.Name, it.FormattedPrice)
	}
	b.WriteString(totalStyle.Render(fmt.Sprintf("%-45s %10s", "Total", sum.FormattedTotal)) + "\n")
	if len(sum.Missing) > 0 {
		labels := make([]string, len(sum.Missing))
		for i, mi := range sum.Missing {
			labels[i] = mi.Label
		}
		b.WriteString(mutedStyle.Render("Faltan: "+strings.Join(labels, ", ")) + "\n")
	}
	return b.String()
}

func renderCheck(c ops.CheckOutput) string {
	var b strings.Builder
	if c.Empty {
		b.WriteString(mutedStyle.Render(c.StatusMessage) + "\n\n")
		b.WriteString(mutedStyle.Render(c.AdviceMessage) + "\n")
		return b.String()
	}
	if c.Report.Compatible {
		b.WriteString(successStyle.Render(c.StatusMessage) + "\n")
	} else {
		for _, issue := range c.Report.Issues {
			b.WriteString(errorStyle.Render("❌ "+issue) + "\n")
		}
	}
	for _, w := range c.Report.Warnings {
		b.WriteString(warningStyle.Render("⚠️  "+w) + "\n")
	}
	b.WriteString("\n" + titleStyle.Render("Recomendaciones") + "\n")
	if len(c.Recommendations) == 0 {
		b.WriteString(mutedStyle.Render(c.AdviceMessage) + "\n")
	}
	for _, r := range c.Recommendations {
		b.WriteString("💡 " + r + "\n")
	}
	return b.String()
}

func noticeStyle(l ops.Level) lipgloss.Style {
	switch l {
	case ops.LevelSuccess:
		return successStyle
	case ops.LevelError:
		return errorStyle
	}
	return mutedStyle
}

func (m *Model) helpLine() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return mutedStyle.Render(strings.Join(parts, " · "))
}

// Run starts the full-screen program and blocks until the user quits.
func Run(ctx context.Context, sess *ops.Session, startup *ops.Notice) error {
	m := New(ctx, sess)
	if startup != nil {
		m.WithNotice(*startup)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
