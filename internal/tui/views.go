package tui

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flickgrid/internal/flickr"
	"flickgrid/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "loading..."
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.Grid.View(),
		m.renderFooter(),
	)

	switch m.State {
	case StateSearching:
		return m.overlay(m.renderSearchModal())
	case StateExpanded:
		return m.overlay(m.renderExpandedModal())
	case StateShare:
		return m.overlay(m.renderShareModal())
	case StateHelp:
		return m.overlay(m.renderHelpModal())
	}

	return base
}

func (m Model) renderHeader() string {
	title := styles.AccentStyle.Render("flickgrid")
	mode := ""
	if m.Grid.InShareMode() {
		mode = styles.SuccessStyle.Render("  SHARE: space marks, y shares")
	}
	if m.Grid.Grabbed() != nil {
		mode = styles.GrabStyle.Render("  MOVE: j/k relocates, m drops")
	}
	return " " + title + mode
}

func (m Model) renderFooter() string {
	if m.Loading {
		spinner := styles.AccentStyle.Render(styles.SpinnerFrames[m.SpinnerFrame%len(styles.SpinnerFrames)])
		return " " + spinner + " " + styles.DimStyle.Render(m.StatusMsg)
	}
	if m.StatusMsg != "" {
		style := styles.SuccessStyle
		if m.StatusIsErr {
			style = styles.ErrorStyle
		}
		return " " + style.Render(styles.Truncate(m.StatusMsg, m.Width-2))
	}

	help := []string{
		styles.HelpKeyStyle.Render("s") + styles.HelpDescStyle.Render(" search"),
		styles.HelpKeyStyle.Render("enter") + styles.HelpDescStyle.Render(" expand"),
		styles.HelpKeyStyle.Render("m") + styles.HelpDescStyle.Render(" move"),
		styles.HelpKeyStyle.Render("v") + styles.HelpDescStyle.Render(" share"),
		styles.HelpKeyStyle.Render("?") + styles.HelpDescStyle.Render(" help"),
		styles.HelpKeyStyle.Render("q") + styles.HelpDescStyle.Render(" quit"),
	}
	return " " + strings.Join(help, styles.DimStyle.Render("  "))
}

// overlay centers a modal over the full window
func (m Model) overlay(modal string) string {
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal)
}

func (m Model) renderSearchModal() string {
	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Search Flickr"))
	b.WriteString("\n")
	b.WriteString(m.SearchInput.View())
	b.WriteString("\n")

	if len(m.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("history (tab completes):"))
		b.WriteString("\n")
		max := 5
		if len(m.Suggestions) < max {
			max = len(m.Suggestions)
		}
		for _, term := range m.Suggestions[:max] {
			b.WriteString(styles.SubtitleStyle.Render("  " + term))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("enter searches, esc cancels"))

	return styles.ModalStyle.Width(modalWidth(m.Width, 50)).Render(b.String())
}

func (m Model) renderExpandedModal() string {
	photo := m.Expanded
	if photo == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render(styles.Truncate(photo.DisplayTitle(), 56)))
	b.WriteString("\n")

	b.WriteString(styles.DimStyle.Render("ID: " + photo.Descriptor.ID))
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("Source: farm %d, server %s", photo.Descriptor.Farm, photo.Descriptor.Server)))
	b.WriteString("\n")
	b.WriteString(renderImageLine("Thumbnail", photo.Thumbnail()))
	b.WriteString("\n")

	if buf := photo.LargeImage(); buf != nil {
		b.WriteString(renderImageLine("Large", buf))
	} else if m.Loading {
		spinner := styles.SpinnerFrames[m.SpinnerFrame%len(styles.SpinnerFrames)]
		b.WriteString(styles.AccentStyle.Render(spinner) + styles.DimStyle.Render(" loading large image..."))
	} else {
		b.WriteString(styles.ErrorStyle.Render("Large: unavailable"))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.SubtitleStyle.Render(flickr.LargeImageURL(photo.Descriptor)))
	b.WriteString("\n\n")
	b.WriteString(styles.DimStyle.Render("esc closes"))

	return styles.ModalStyle.Width(modalWidth(m.Width, 64)).Render(b.String())
}

// renderImageLine describes an image buffer by its decoded dimensions
func renderImageLine(label string, buf []byte) string {
	if buf == nil {
		return styles.DimStyle.Render(label + ": not loaded")
	}
	line := fmt.Sprintf("%s: %.1f KB", label, float64(len(buf))/1024)
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(buf)); err == nil {
		line = fmt.Sprintf("%s: %dx%d, %.1f KB", label, cfg.Width, cfg.Height, float64(len(buf))/1024)
	}
	return styles.DimStyle.Render(line)
}

func (m Model) renderShareModal() string {
	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render(fmt.Sprintf("Share %d photos", len(m.ShareURLs))))
	b.WriteString("\n")
	for _, u := range m.ShareURLs {
		b.WriteString(styles.SubtitleStyle.Render(u))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("esc closes"))

	return styles.ModalStyle.Width(modalWidth(m.Width, 72)).Render(b.String())
}

func (m Model) renderHelpModal() string {
	rows := []struct{ key, desc string }{
		{"j/k, ↓/↑", "move cursor"},
		{"g / G", "top / bottom"},
		{"ctrl+d / ctrl+u", "half page"},
		{"s", "new search"},
		{"/", "filter by title"},
		{"enter", "expand photo"},
		{"m", "grab / drop photo"},
		{"v", "toggle share mode"},
		{"space", "mark photo (share mode)"},
		{"y", "share marked photos"},
		{"esc", "back / clear"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Keys"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(styles.HelpKeyStyle.Render(fmt.Sprintf("%-16s", row.key)))
		b.WriteString(styles.HelpDescStyle.Render(row.desc))
		b.WriteString("\n")
	}

	return styles.ModalStyle.Width(modalWidth(m.Width, 44)).Render(b.String())
}

func modalWidth(window, want int) int {
	if want > window-4 {
		want = window - 4
	}
	if want < 20 {
		want = 20
	}
	return want
}
