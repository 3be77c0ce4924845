package sphere

import (
	"bytes"
	"testing"
)

func newTestCanvas() *Canvas {
	return NewCanvas(150, 50, 35, 20)
}

func TestNewCanvasIsBlank(t *testing.T) {
	c := newTestCanvas()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) != Blank {
				t.Fatalf("cell (%d,%d) = %q, want blank", x, y, c.At(x, y))
			}
			if c.DepthAt(x, y) != 0 {
				t.Fatalf("depth (%d,%d) = %v, want 0", x, y, c.DepthAt(x, y))
			}
		}
	}
}

func TestClearResetsEverything(t *testing.T) {
	c := newTestCanvas()
	c.Plot(Point3D{0, 0, 0}, 'A')
	c.Plot(Point3D{3, 2, -5}, 'B')
	c.Clear()

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) != Blank || c.DepthAt(x, y) != 0 {
				t.Fatalf("cell (%d,%d) not reset: glyph %q depth %v", x, y, c.At(x, y), c.DepthAt(x, y))
			}
		}
	}
}

// Both points land on the center cell; the one with smaller z' must win
// regardless of plot order.
func TestDepthTestNearerWins(t *testing.T) {
	near := Point3D{0, 0, 0} // z' = 20
	far := Point3D{0, 0, 5}  // z' = 25

	c := newTestCanvas()
	c.Plot(near, 'N')
	c.Plot(far, 'F')
	if got := c.At(75, 25); got != 'N' {
		t.Errorf("near then far: cell = %q, want N", got)
	}

	c.Clear()
	c.Plot(far, 'F')
	c.Plot(near, 'N')
	if got := c.At(75, 25); got != 'N' {
		t.Errorf("far then near: cell = %q, want N", got)
	}
	if got := c.DepthAt(75, 25); got != 1.0/20 {
		t.Errorf("stored depth = %v, want %v", got, 1.0/20)
	}
}

func TestEqualDepthFirstWriterWins(t *testing.T) {
	c := newTestCanvas()
	c.Plot(Point3D{0, 0, 0}, 'A')
	c.Plot(Point3D{0, 0, 0}, 'B')
	if got := c.At(75, 25); got != 'A' {
		t.Errorf("cell = %q, want A (strict depth comparison)", got)
	}
}

func TestOutOfBoundsDiscarded(t *testing.T) {
	c := newTestCanvas()
	points := []Point3D{
		{0, 1000, 0},  // projects far above the grid
		{0, -1000, 0}, // far below
		{0, 0, -25},   // behind the projection origin, z' < 0
		{0, 0, -20},   // exactly at the origin, z' = 0
	}
	for _, p := range points {
		c.Plot(p, 'X')
	}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) != Blank {
				t.Fatalf("cell (%d,%d) = %q after out-of-bounds plots", x, y, c.At(x, y))
			}
		}
	}
}

// The top and bottom of the radius-10 ring at zero angles: invZ = 1/20, so
// the vertical displacement is 35·(1/20)·10 = 17.5, which rounds away from
// zero to 18 rows off center.
func TestRingExtremesLandOnExpectedCells(t *testing.T) {
	c := newTestCanvas()
	c.Plot(Point3D{0, 10, 0}, '@')
	c.Plot(Point3D{0, -10, 0}, '@')

	if got := c.At(75, 7); got != '@' {
		t.Errorf("top extreme: cell (75,7) = %q, want @", got)
	}
	if got := c.At(75, 43); got != '@' {
		t.Errorf("bottom extreme: cell (75,43) = %q, want @", got)
	}
	if got := c.DepthAt(75, 43); got != 1.0/20 {
		t.Errorf("bottom extreme depth = %v, want %v", got, 1.0/20)
	}

	// Horizontal extremes get the ×2 aspect correction: 35·(1/20)·10·2 = 35.
	c.Plot(Point3D{10, 0, 0}, '@')
	c.Plot(Point3D{-10, 0, 0}, '@')
	if got := c.At(110, 25); got != '@' {
		t.Errorf("right extreme: cell (110,25) = %q, want @", got)
	}
	if got := c.At(40, 25); got != '@' {
		t.Errorf("left extreme: cell (40,25) = %q, want @", got)
	}
}

func TestDrawSphereCoversAllRingGlyphs(t *testing.T) {
	c := newTestCanvas()
	s := Sphere{Radius: 10, Step: 0.025}
	s.Draw(c, Angles{})

	seen := map[byte]bool{}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			g := c.At(x, y)
			if g != Blank {
				seen[g] = true
				if c.DepthAt(x, y) <= 0 {
					t.Fatalf("occupied cell (%d,%d) has non-positive depth", x, y)
				}
			}
		}
	}
	for _, want := range []byte{'@', '$', '*', '!'} {
		if !seen[want] {
			t.Errorf("glyph %q missing from rendered sphere", want)
		}
	}
}

func TestDrawSphereIdempotent(t *testing.T) {
	s := Sphere{Radius: 10, Step: 0.025}
	a := Angles{Pitch: 0.4, Yaw: 1.1, Roll: 0.05}

	render := func() []byte {
		c := newTestCanvas()
		s.Draw(c, a)
		var buf bytes.Buffer
		if _, err := c.WriteTo(&buf); err != nil {
			t.Fatalf("WriteTo: %v", err)
		}
		return buf.Bytes()
	}

	if !bytes.Equal(render(), render()) {
		t.Error("identical draws produced different canvases")
	}
}

func TestWriteToFormat(t *testing.T) {
	c := NewCanvas(4, 3, 35, 20)
	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if want := int64((4 + 1) * 3); n != want {
		t.Errorf("wrote %d bytes, want %d", n, want)
	}

	out := buf.Bytes()
	// A newline precedes every row, including the first.
	for _, idx := range []int{0, 5, 10} {
		if out[idx] != '\n' {
			t.Errorf("byte %d = %q, want newline", idx, out[idx])
		}
	}
	for i, b := range out {
		if i%5 != 0 && b != Blank {
			t.Errorf("byte %d = %q, want blank cell", i, b)
		}
	}
}
