// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides rich terminal output styling for the bee CLI.
package ux

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Honeycomb color palette - warm hive golds over dark comb
var (
	// Primary palette (brightest to darkest)
	ColorNectar = lipgloss.Color("#FFE566") // Nectar - highlights, emphasis
	ColorHoney  = lipgloss.Color("#F7DA21") // Honey - main brand color
	ColorAmber  = lipgloss.Color("#E8A317") // Amber - interactive elements
	ColorGold   = lipgloss.Color("#D4900D") // Gold - secondary elements
	ColorComb   = lipgloss.Color("#B97E0A") // Comb - borders, accents
	ColorHive   = lipgloss.Color("#8A5E08") // Hive - subtle accents

	// Dark palette (for backgrounds, muted elements)
	ColorBark   = lipgloss.Color("#57431C") // Bark - muted borders
	ColorSoil   = lipgloss.Color("#3A2E14") // Soil - dark backgrounds
	ColorShadow = lipgloss.Color("#211A0C") // Shadow - near black

	// Semantic colors (keeping standard conventions for clarity)
	ColorSuccess = lipgloss.Color("#A8CC5C") // Leaf green for success
	ColorWarning = lipgloss.Color("#E8A317") // Amber for warnings
	ColorError   = lipgloss.Color("#E74C3C") // Red for errors
	ColorMuted   = lipgloss.Color("#8C7B52") // Dry grass for muted text
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	// Text styles
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style

	// Puzzle styles
	Center  lipgloss.Style
	Letter  lipgloss.Style
	Pangram lipgloss.Style

	// Box styles
	Box        lipgloss.Style
	InfoBox    lipgloss.Style
	WarningBox lipgloss.Style
	ErrorBox   lipgloss.Style

	// Status indicators
	StatusOK      lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style
}{
	// Text styles
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorNectar),
	Subtitle:  lipgloss.NewStyle().Foreground(ColorHoney),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorMuted),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorNectar).Bold(true),

	// Puzzle styles
	Center:  lipgloss.NewStyle().Bold(true).Foreground(ColorShadow).Background(ColorHoney).Padding(0, 1),
	Letter:  lipgloss.NewStyle().Foreground(ColorAmber).Padding(0, 1),
	Pangram: lipgloss.NewStyle().Bold(true).Foreground(ColorHoney),

	// Box styles
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorComb).
		Padding(0, 1),
	InfoBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorHoney).
		Padding(0, 1),
	WarningBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorWarning).
		Padding(0, 1),
	ErrorBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError).
		Padding(0, 1),

	// Status indicators
	StatusOK:      lipgloss.NewStyle().SetString("✓").Foreground(ColorSuccess),
	StatusWarning: lipgloss.NewStyle().SetString("⚠").Foreground(ColorWarning),
	StatusError:   lipgloss.NewStyle().SetString("✗").Foreground(ColorError),
	StatusPending: lipgloss.NewStyle().SetString("○").Foreground(ColorMuted),
}

// Icon provides themed status icons
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconPending Icon = "○"
	IconArrow   Icon = "→"
	IconBullet  Icon = "•"
	IconCell    Icon = "⬡"
	IconComb    Icon = "⬢"
	IconStar    Icon = "★"
)

// Render returns the icon with appropriate styling
func (i Icon) Render() string {
	switch i {
	case IconSuccess:
		return Styles.Success.Render(string(i))
	case IconWarning:
		return Styles.Warning.Render(string(i))
	case IconError:
		return Styles.Error.Render(string(i))
	case IconPending:
		return Styles.Muted.Render(string(i))
	case IconComb, IconStar:
		return Styles.Highlight.Render(string(i))
	default:
		return string(i)
	}
}

// Print helpers that respect personality level

// Title prints a styled title
func Title(text string) {
	if MachineMode() {
		return
	}
	fmt.Println(Styles.Title.Render(text))
}

// Success prints a success message with checkmark
func Success(text string) {
	switch CurrentLevel() {
	case PersonalityMachine:
		fmt.Fprintf(os.Stdout, "OK: %s\n", text)
	case PersonalityMinimal:
		fmt.Printf("%s %s\n", IconSuccess.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconSuccess.Render(), Styles.Success.Render(text))
	}
}

// Warning prints a warning message
func Warning(text string) {
	switch CurrentLevel() {
	case PersonalityMachine:
		fmt.Fprintf(os.Stderr, "WARN: %s\n", text)
	case PersonalityMinimal:
		fmt.Printf("%s %s\n", IconWarning.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconWarning.Render(), Styles.Warning.Render(text))
	}
}

// Error prints an error message
func Error(text string) {
	switch CurrentLevel() {
	case PersonalityMachine:
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", text)
	case PersonalityMinimal:
		fmt.Printf("%s %s\n", IconError.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconError.Render(), Styles.Error.Render(text))
	}
}

// Info prints an informational message
func Info(text string) {
	if MachineMode() {
		fmt.Println(text)
		return
	}
	fmt.Printf("%s %s\n", Styles.Muted.Render("│"), text)
}

// Muted prints muted/secondary text
func Muted(text string) {
	if MachineMode() {
		return
	}
	fmt.Println(Styles.Muted.Render(text))
}

// Box prints text in a rounded box
func Box(title, content string) {
	if MachineMode() {
		fmt.Printf("%s: %s\n", title, content)
		return
	}
	boxStyle := Styles.Box.Width(60)
	titleLine := Styles.Title.Render(title)
	fmt.Println(boxStyle.Render(titleLine + "\n" + content))
}

// WarningBox prints text in a warning-styled box
func WarningBox(title, content string) {
	if MachineMode() {
		fmt.Fprintf(os.Stderr, "WARN %s: %s\n", title, content)
		return
	}
	boxStyle := Styles.WarningBox.Width(60)
	titleLine := Styles.Warning.Bold(true).Render(title)
	fmt.Println(boxStyle.Render(titleLine + "\n" + content))
}

// Letters renders a puzzle alphabet with the center letter set off.
// The required letter sits in a honey cell; the rest surround it.
func Letters(letters string, center byte) string {
	if MachineMode() {
		return fmt.Sprintf("%s/%c", letters, center)
	}
	var b strings.Builder
	for i := 0; i < len(letters); i++ {
		c := strings.ToUpper(string(letters[i]))
		if letters[i] == center {
			b.WriteString(Styles.Center.Render(c))
		} else {
			b.WriteString(Styles.Letter.Render(c))
		}
	}
	return b.String()
}

// WordLine renders one answer with its point value. Pangrams are
// called out; found words are what solve and hints print.
func WordLine(word string, points int, pangram bool) string {
	if MachineMode() {
		if pangram {
			return fmt.Sprintf("%s\t%d\tpangram", word, points)
		}
		return fmt.Sprintf("%s\t%d", word, points)
	}
	if pangram {
		return fmt.Sprintf("%s %s %s",
			Styles.Pangram.Render(strings.ToUpper(word)),
			Styles.Muted.Render(fmt.Sprintf("%d pts", points)),
			IconStar.Render())
	}
	return fmt.Sprintf("%s %s", word, Styles.Muted.Render(fmt.Sprintf("%d pts", points)))
}

// ScoreSummary prints the headline numbers for a puzzle
func ScoreSummary(wordCount, maxScore, pangrams int) {
	if MachineMode() {
		fmt.Printf("SUMMARY: words=%d max_score=%d pangrams=%d\n", wordCount, maxScore, pangrams)
		return
	}
	fmt.Printf("\n%s %s  %s %s  %s %s\n",
		Styles.Bold.Render(fmt.Sprintf("%d", wordCount)), Styles.Muted.Render("words"),
		Styles.Highlight.Render(fmt.Sprintf("%d", maxScore)), Styles.Muted.Render("points"),
		Styles.Pangram.Render(fmt.Sprintf("%d", pangrams)), Styles.Muted.Render("pangrams"),
	)
}

// ProgressBar renders a simple progress bar
func ProgressBar(current, total int, width int) string {
	if MachineMode() {
		return fmt.Sprintf("%d/%d", current, total)
	}
	pct := float64(current) / float64(total)
	filled := int(pct * float64(width))
	empty := width - filled

	bar := Styles.Success.Render(repeatChar('█', filled)) +
		Styles.Muted.Render(repeatChar('░', empty))

	return fmt.Sprintf("%s %3.0f%%", bar, pct*100)
}

func repeatChar(c rune, n int) string {
	if n <= 0 {
		return ""
	}
	result := make([]rune, n)
	for i := range result {
		result[i] = c
	}
	return string(result)
}
