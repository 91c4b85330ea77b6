package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Half-block characters used to pack two pixel rows into one terminal row.
const (
	blockUpper = '▀'
	blockLower = '▄'
	blockFull  = '█'
)

// Render output is flushed in chunks of this size to keep SSH frames from
// stalling on one huge write.
const maxChunkSize = 4096

// Canvas is a monochrome drawing buffer with 2x vertical resolution. Game
// objects draw in logical playfield coordinates; the canvas scales them to
// whatever terminal it is currently sized for.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int    // termHeight * 2
	pixels         []bool // [y*termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	// Centering offset applied at render time, 0-based terminal cells.
	offsetCol int
	offsetRow int

	renderBuf       strings.Builder
	pointBuf        []Point
	intersectionBuf []float64
}

// NewCanvas creates a canvas mapping a logicalWidth x logicalHeight playfield
// onto a termWidth x termHeight terminal.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize adapts the canvas to new terminal dimensions, keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the 0-based terminal offset used to center the render area.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// TerminalWidth returns the terminal column count the canvas is sized for.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the terminal row count the canvas is sized for.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at terminal sub-pixel coordinates.
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// SetFloat sets a pixel at logical coordinates.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// DrawLine draws a line between logical points using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon; filled polygons are scanline-filled.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// BorrowPoints returns a reusable scratch slice of n points. The slice is
// only valid until the next BorrowPoints call; one caller at a time.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.pointBuf) < n {
		c.pointBuf = make([]Point, n)
	}
	return c.pointBuf[:n]
}

// fillPolygon fills in pixel space with a scanline pass.
func (c *Canvas) fillPolygon(points []Point) {
	minY := math.Inf(1)
	maxY := math.Inf(-1)
	for _, p := range points {
		y := p.Y * c.scaleY
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5

		xs := c.intersectionBuf[:0]
		n := len(points)
		for i := 0; i < n; i++ {
			y1 := points[i].Y * c.scaleY
			y2 := points[(i+1)%n].Y * c.scaleY
			if (y1 <= scanY && y2 > scanY) || (y2 <= scanY && y1 > scanY) {
				t := (scanY - y1) / (y2 - y1)
				x1 := points[i].X * c.scaleX
				x2 := points[(i+1)%n].X * c.scaleX
				xs = append(xs, x1+t*(x2-x1))
			}
		}
		c.intersectionBuf = xs

		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render writes the canvas to w as half-block characters, skipping empty
// rows and flushing in bounded chunks.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		top := row * 2 * c.termWidth
		bottom := top + c.termWidth

		// Find the extent of set pixels on this row pair.
		first, last := -1, -1
		for x := 0; x < c.termWidth; x++ {
			if c.pixels[top+x] || c.pixels[bottom+x] {
				if first < 0 {
					first = x
				}
				last = x
			}
		}
		if first < 0 {
			continue
		}

		c.renderBuf.WriteString("\033[")
		c.renderBuf.WriteString(strconv.Itoa(row + c.offsetRow + 1))
		c.renderBuf.WriteByte(';')
		c.renderBuf.WriteString(strconv.Itoa(first + c.offsetCol + 1))
		c.renderBuf.WriteByte('H')

		for x := first; x <= last; x++ {
			switch {
			case c.pixels[top+x] && c.pixels[bottom+x]:
				c.renderBuf.WriteRune(blockFull)
			case c.pixels[top+x]:
				c.renderBuf.WriteRune(blockUpper)
			case c.pixels[bottom+x]:
				c.renderBuf.WriteRune(blockLower)
			default:
				c.renderBuf.WriteByte(' ')
			}
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
