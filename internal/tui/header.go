package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// HeaderModel renders the title line.
type HeaderModel struct {
	version string
	width   int
}

// NewHeaderModel creates a header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{version: version}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header centered in the available width.
func (h HeaderModel) View() string {
	text := titleStyle.Render("🐕 Dog Years Calculator")
	if h.version != "" && h.version != "dev" {
		text += versionStyle.Render(" " + h.version)
	}
	if h.width <= 0 {
		return text
	}
	return lipgloss.PlaceHorizontal(h.width, lipgloss.Center, text)
}
