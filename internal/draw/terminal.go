// Package draw renders game frames to a terminal using ANSI escapes and
// half-block characters for doubled vertical resolution.
package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Point is a 2D coordinate in logical (playfield) space.
type Point struct {
	X, Y float64
}

// TermSizeFunc reports the terminal dimensions. Local play reads stdout;
// SSH sessions track window-change events instead.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves the cursor to the top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// MoveCursor moves the cursor to a 1-based terminal position.
func MoveCursor(w io.Writer, col, row int) {
	fmt.Fprintf(w, "\033[%d;%dH", row, col)
}

// WriteAt writes a string at a 1-based terminal position.
func WriteAt(w io.Writer, col, row int, s string) {
	MoveCursor(w, col, row)
	fmt.Fprint(w, s)
}
