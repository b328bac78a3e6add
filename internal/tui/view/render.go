package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"termsearch/internal/color"
	"termsearch/internal/google"
	"termsearch/internal/outcome"
	"termsearch/internal/tui/model"
)

const (
	// ListTop is the screen line the result list starts on: the header and
	// one blank line sit above it.
	ListTop = 2
	// ItemLines is the height of one result: the title line and the snippet.
	ItemLines = 2

	selectedMarker   = "> "
	unselectedMarker = "  "
	ellipsis         = "…"
	quitHint         = "Press 'q' to quit"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.RenderState() {
	case model.RenderSearching:
		return renderSearching(m)
	default:
		if m.Outcome.State == outcome.StateFailed {
			return renderFailed(m)
		}
		return renderResults(m)
	}
}

// SearchingText is the status line shown while the search is pending.
func SearchingText(query string) string {
	return fmt.Sprintf("Searching for '%s'...", query)
}

// HeaderText summarises a successful response.
func HeaderText(resp *google.Response, query string) string {
	total, elapsed := "0", "0"
	if resp != nil {
		if resp.TotalResults != "" {
			total = resp.TotalResults
		}
		if resp.SearchTime != "" {
			elapsed = resp.SearchTime
		}
	}
	return fmt.Sprintf("Found %s results in %s seconds for '%s'", total, elapsed, query)
}

// RowsFor returns the row layout of the current result list.
func RowsFor(m *model.Model) Rows {
	return Rows{Count: len(m.Outcome.Items()), Gap: m.SeparatorRows, ItemLines: ItemLines}
}

func renderSearching(m *model.Model) string {
	lines := []string{
		m.Spinner.View() + " " + truncate(SearchingText(m.Query), m.Width-lipgloss.Width(m.Spinner.View())-1),
		"",
		color.FooterStyle.Render(quitHint),
	}
	if bar := renderStatusBar(m); bar != "" {
		lines = append(lines, bar)
	}
	return strings.Join(lines, "\n")
}

func renderFailed(m *model.Model) string {
	msg := "unknown error"
	if m.Outcome.Err != nil {
		msg = strings.Join(strings.Fields(m.Outcome.Err.Error()), " ")
	}
	lines := []string{
		color.ErrorStyle.Render(truncate("Error: "+msg, m.Width)),
		"",
		color.FooterStyle.Render(quitHint),
	}
	return strings.Join(lines, "\n")
}

func renderResults(m *model.Model) string {
	header := color.HeaderStyle.Render(truncate(HeaderText(m.Outcome.Response, m.Query), m.Width))
	footer := renderFooter(m)

	var body string
	if len(m.Outcome.Items()) == 0 {
		body = color.SubtleStyle.Render("No results")
	} else {
		Layout(m, lipgloss.Height(footer))
		body = m.ResultsViewport.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, footer)
}

// Layout sizes the results viewport, fills it with the list and scrolls so
// the selected item is fully visible.
func Layout(m *model.Model, footerHeight int) {
	rows := RowsFor(m)
	total := rows.TotalLines()

	height := total
	if m.Height > 0 {
		height = m.Height - ListTop - footerHeight
		if height < ItemLines {
			height = ItemLines
		}
	}

	vp := &m.ResultsViewport
	vp.Width = m.Width
	vp.Height = height
	vp.SetContent(RenderList(m))

	idx, ok := m.Selection.Index()
	if !ok {
		return
	}
	top := rows.LineOf(rows.LogicalToVisual(idx))
	bottom := top + ItemLines - 1
	switch {
	case top < vp.YOffset:
		vp.SetYOffset(top)
	case bottom >= vp.YOffset+vp.Height:
		vp.SetYOffset(bottom - vp.Height + 1)
	}
}

// RenderList renders every visual row of the result list: items with their
// separators in between, the selected item marked.
func RenderList(m *model.Model) string {
	items := m.Outcome.Items()
	rows := RowsFor(m)
	selected, hasSelection := m.Selection.Index()

	lines := make([]string, 0, rows.TotalLines())
	for v := 0; v < rows.Len(); v++ {
		i, ok := rows.VisualToLogical(v)
		if !ok {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, renderItem(items[i], hasSelection && i == selected, m.Width)...)
	}
	return strings.Join(lines, "\n")
}

func renderItem(item google.Item, selected bool, width int) []string {
	marker := unselectedMarker
	if selected {
		marker = selectedMarker
	}
	avail := width - runewidth.StringWidth(marker)
	switch {
	case width <= 0:
		avail = 0
	case avail < 1:
		avail = 1
	}

	title := truncate(item.Title, avail)
	link := ""
	if rest := avail - runewidth.StringWidth(title) - 3; avail == 0 || rest > 0 {
		link = truncate(item.DisplayLink, rest)
	}

	titleStyle := color.TitleStyle
	if selected {
		titleStyle = color.SelectedStyle
		marker = color.MarkerStyle.Render(marker)
	}
	first := marker + titleStyle.Render(title)
	if link != "" {
		first += " - " + color.LinkStyle.Render(link)
	}

	snippet := strings.Join(strings.Fields(item.Snippet), " ")
	second := unselectedMarker + color.SnippetStyle.Render(truncate(snippet, avail))
	return []string{first, second}
}

func renderFooter(m *model.Model) string {
	m.Help.Width = m.Width
	m.Help.ShowAll = m.ShowHelp
	lines := []string{m.Help.View(m.Keys)}
	if bar := renderStatusBar(m); bar != "" {
		lines = append(lines, bar)
	}
	return strings.Join(lines, "\n")
}

func renderStatusBar(m *model.Model) string {
	if m.StatusBarMessage == "" {
		return ""
	}
	style := color.InfoStyle
	switch m.StatusBarMessageType {
	case model.StatusBarSuccess:
		style = color.SuccessStyle
	case model.StatusBarError:
		style = color.ErrorStyle
	case model.StatusBarWarning:
		style = color.WarningStyle
	}
	return style.Render(truncate(m.StatusBarMessage, m.Width))
}

// truncate shortens s to width terminal cells. A non-positive width means
// the terminal size is not known yet and s is returned unchanged.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}
