// Package tui implements the Bubble Tea TUI for klippy.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night color palette.
var (
	colorGreen  = lipgloss.Color("#9ece6a") // green
	colorYellow = lipgloss.Color("#e0af68") // yellow
	colorBlue   = lipgloss.Color("#7aa2f7") // blue
	colorGray   = lipgloss.Color("#565f89") // comment
	colorWhite  = lipgloss.Color("#c0caf5") // foreground
	colorRed    = lipgloss.Color("#f38ba8") // red
)

// Styles used for rendering the TUI.
var (
	// Title style for the header line.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue).
			PaddingLeft(1)

	// Count style for the entry counter in the header.
	countStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			PaddingLeft(1)

	// Timestamp column style.
	timeStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	// Pinned entry marker style.
	pinnedStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	// Selected item style.
	selectedStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// Normal item style (no color, uses terminal default).
	normalStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	// Status line styles.
	statusStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			PaddingLeft(1)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			PaddingLeft(1)

	statusIdleStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			PaddingLeft(1)

	// Search prompt style.
	searchPromptStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	// Help line style.
	helpStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	// Empty list placeholder style.
	emptyStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			PaddingLeft(1).
			PaddingTop(1)
)

// Icons and symbols.
const (
	iconPin = "📌"
	iconDot = "•"
)

// Banner ASCII art for the header.
const banner = `
 ╦╔═╦  ╦╔═╗╔═╗╦ ╦
 ╠╩╗║  ║╠═╝╠═╝╚╦╝
 ╩ ╩╩═╝╩╩  ╩   ╩`

// bannerStyle styles the ASCII art banner.
var bannerStyle = lipgloss.NewStyle().
	Foreground(colorBlue).
	Bold(true).
	PaddingLeft(1).
	PaddingBottom(1)
