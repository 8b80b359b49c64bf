package cliapp

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"
)

// terminalWidth returns the current terminal column width, falling back to
// 80 when stdout isn't a terminal (piped output, tests) or the ioctl fails.
func terminalWidth() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 80
	}

	return int(ws.Col)
}

// renderTable formats rows as left-aligned, space-padded columns, using
// display width (not byte length) so multi-byte alphabet symbols in a
// profile's digit/length bases still line up. Columns together exceeding
// the terminal width are truncated with an ellipsis, widest column first.
func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))

	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	limit := terminalWidth()

	for totalWidth(widths) > limit {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}

		if widths[widest] <= 1 {
			break
		}

		widths[widest]--
	}

	var b strings.Builder

	writeRow := func(cells []string) {
		for i, cell := range cells {
			cell = truncateToWidth(cell, widths[i])
			b.WriteString(runewidth.FillRight(cell, widths[i]))

			if i < len(cells)-1 {
				b.WriteString("  ")
			}
		}

		b.WriteByte('\n')
	}

	writeRow(header)

	for _, row := range rows {
		writeRow(row)
	}

	out := b.String()
	if total := totalWidth(widths); total > limit {
		return out // best-effort: still readable, just may wrap in a narrow terminal
	}

	return out
}

func totalWidth(widths []int) int {
	sum := 2 * (len(widths) - 1)
	for _, w := range widths {
		sum += w
	}

	return sum
}

func truncateToWidth(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	return runewidth.Truncate(s, maxWidth, "…")
}
