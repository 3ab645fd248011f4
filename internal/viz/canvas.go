package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// cell overlays a text annotation on top of the braille grid.
type cell struct {
	ch    rune
	style lipgloss.Style
}

// Canvas rasterizes track polylines into braille cells, with a text
// overlay layer for particle labels. The canvas size in sub-pixels is
// (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	grid          [][]rune
	styles        [][]*lipgloss.Style
	overlay       map[[2]int]cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:   w,
		Height:  h,
		grid:    make([][]rune, h),
		styles:  make([][]*lipgloss.Style, h),
		overlay: make(map[[2]int]cell),
	}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		c.styles[i] = make([]*lipgloss.Style, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights a sub-pixel and records the stroke style for its cell.
func (c *Canvas) Set(x, y int, style *lipgloss.Style) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.styles[row][col] = style
}

// Clear resets the canvas between frames.
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
			c.styles[i][j] = nil
		}
	}
	c.overlay = make(map[[2]int]cell)
}

// DrawLine draws a line in sub-pixel coordinates using Bresenham's
// algorithm. When dashed, alternate runs of pixels are skipped.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, style *lipgloss.Style, dashed bool) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	step := 0
	for {
		if !dashed || step%6 < 3 {
			c.Set(x0, y0, style)
		}
		step++
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Label writes text into the overlay layer at a cell position. Overlay
// cells replace braille output when the canvas is rendered.
func (c *Canvas) Label(col, row int, text string, style lipgloss.Style) {
	if row < 0 || row >= c.Height {
		return
	}
	for i, ch := range []rune(text) {
		x := col + i
		if x < 0 || x >= c.Width {
			continue
		}
		c.overlay[[2]int{x, row}] = cell{ch: ch, style: style}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			if oc, ok := c.overlay[[2]int{col, row}]; ok {
				b.WriteString(oc.style.Render(string(oc.ch)))
				continue
			}
			ch := c.grid[row][col]
			if st := c.styles[row][col]; st != nil && ch != 0x2800 {
				b.WriteString(st.Render(string(ch)))
			} else {
				b.WriteRune(ch)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
