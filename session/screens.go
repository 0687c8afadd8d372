package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7ee787"))
	styleOption   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d0d7de"))
	styleKey      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	styleHelp     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	styleFarewell = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#79c0ff"))
	styleAboutBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#40c463")).
			Padding(0, 2)
)

const (
	menuPrompt  = "Select an option [1-3]: "
	speedPrompt = "Select speed [1 slow - 5 fast]: "

	aboutText = `Conway's Game of Life

A cellular automaton devised by John Horton Conway in 1970.
Each cell on a wrapping 30x30 board lives or dies by its eight
neighbours: a dead cell with exactly three comes alive, a live
cell with two or three survives, every other cell dies.

While playing: [r] reseeds the board, [q] returns to the menu.`

	farewellText = "Thanks for playing. Goodbye!"
)

func menuOption(key int, label string) string {
	return styleKey.Render(fmt.Sprintf("%d)", key)) + " " + styleOption.Render(label)
}

// writeMenu prints the main menu header and options
func writeMenu(w io.Writer) {
	fmt.Fprintln(w, styleTitle.Render("=== Conway's Game of Life ==="))
	fmt.Fprintln(w, menuOption(choiceStart, "Start Game"))
	fmt.Fprintln(w, menuOption(choiceAbout, "About"))
	fmt.Fprintln(w, menuOption(choiceExit, "Exit"))
}

// writeAbout prints the attribution box and acknowledgment hint
func writeAbout(w io.Writer) {
	fmt.Fprintln(w, styleAboutBox.Render(aboutText))
	fmt.Fprint(w, styleHelp.Render("Press Enter to return to the menu..."))
}

// writeFarewell prints the exit message
func writeFarewell(w io.Writer) {
	fmt.Fprintln(w, styleFarewell.Render(farewellText))
}
