// Package overlay composes styled text at fixed cell positions.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas is a fixed-size grid of lines that styled strings are placed on.
type Canvas struct {
	width int
	lines []string
}

// New creates a blank canvas.
func New(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	return &Canvas{width: width, lines: lines}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of lines.
func (c *Canvas) Height() int { return len(c.lines) }

// Put draws content with its first cell at (row, col). Content is clipped
// to the canvas; rows outside it are ignored. It is ANSI-aware, so styled
// content and styled lines splice correctly.
func (c *Canvas) Put(row, col int, content string) {
	if row < 0 || row >= len(c.lines) || content == "" {
		return
	}
	w := ansi.StringWidth(content)
	if col < 0 {
		content = ansi.Cut(content, -col, w)
		w += col
		col = 0
	}
	if col >= c.width || w <= 0 {
		return
	}
	if col+w > c.width {
		content = ansi.Cut(content, 0, c.width-col)
		w = c.width - col
	}

	line := c.lines[row]
	result := ansi.Cut(line, 0, col) + content
	if col+w < c.width {
		result += ansi.Cut(line, col+w, c.width)
	}
	c.lines[row] = result
}

// String joins the lines.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}
