package viz

import "strings"

// Braille patterns: 2x4 dots per character cell.
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

// Canvas is a braille dot matrix: Width*2 by Height*4 addressable pixels.
type Canvas struct {
	Width, Height int
	grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		grid:   make([][]rune, h),
	}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set lights the pixel at (x, y) in sub-pixel coordinates. Out-of-range
// pixels are silently dropped, so callers can project without clipping.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Viewport maps a world-space rectangle in the x/z plane onto the
// canvas's pixel grid, z growing upward.
type Viewport struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Project converts a world x/z position into canvas pixels.
func (v Viewport) Project(c *Canvas, x, z float64) (px, py int) {
	pw := float64(c.Width * 2)
	ph := float64(c.Height * 4)
	px = int((x - v.MinX) / (v.MaxX - v.MinX) * pw)
	py = int((v.MaxZ - z) / (v.MaxZ - v.MinZ) * ph)
	return px, py
}
