package sphere

import (
	"io"
	"math"
)

// Blank is the glyph an empty canvas cell holds.
const Blank = ' '

// farDepth is the inverse-depth sentinel of an empty cell. Depth is stored
// as 1/z', so zero reads as infinitely far and any plotted point beats it.
const farDepth = 0.0

// Canvas is a fixed-size character grid paired with a per-cell inverse-depth
// buffer. A plotted point only lands if it is strictly nearer than the cell's
// current occupant.
type Canvas struct {
	width, height int
	distance      float64 // projection plane distance from the viewer
	zOffset       float64 // camera offset added to z before the perspective divide

	cells []byte
	depth []float64
	frame []byte // scratch for WriteTo
}

// NewCanvas returns a cleared canvas of width×height cells with the given
// projection constants.
func NewCanvas(width, height int, distance, zOffset float64) *Canvas {
	c := &Canvas{
		width:    width,
		height:   height,
		distance: distance,
		zOffset:  zOffset,
		cells:    make([]byte, width*height),
		depth:    make([]float64, width*height),
		frame:    make([]byte, 0, (width+1)*height),
	}
	c.Clear()
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// At returns the glyph at column x, row y.
func (c *Canvas) At(x, y int) byte { return c.cells[x+y*c.width] }

// DepthAt returns the stored inverse depth at column x, row y.
func (c *Canvas) DepthAt(x, y int) float64 { return c.depth[x+y*c.width] }

// Clear resets every cell to the blank glyph and the far depth sentinel.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Blank
		c.depth[i] = farDepth
	}
}

// Plot projects p onto the grid and writes glyph there if p is nearer than
// the cell's current occupant. Points at or behind the projection origin and
// points landing outside the grid are discarded silently.
func (c *Canvas) Plot(p Point3D, glyph byte) {
	z := p.Z + c.zOffset
	if z <= 0 {
		return
	}
	invZ := 1 / z
	// x is doubled because terminal cells are taller than they are wide;
	// y is negated because row indices grow downward.
	sx := int(math.Round(c.distance*invZ*p.X*2)) + c.width/2
	sy := int(math.Round(c.distance*invZ*-p.Y)) + c.height/2
	idx := sx + sy*c.width
	if idx < 0 || idx >= len(c.cells) {
		return
	}
	if invZ > c.depth[idx] {
		c.depth[idx] = invZ
		c.cells[idx] = glyph
	}
}

// WriteTo emits the frame in row order, each row prefixed by a newline, so
// after a cursor-home escape the frame overwrites the previous one in place.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	f := c.frame[:0]
	for row := 0; row < c.height; row++ {
		f = append(f, '\n')
		f = append(f, c.cells[row*c.width:(row+1)*c.width]...)
	}
	c.frame = f
	n, err := w.Write(f)
	return int64(n), err
}
