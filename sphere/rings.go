package sphere

import "math"

// A ring is a planar circle of samples tilted about the sphere's vertical
// axis. Four tilts 45° apart approximate the full surface.
type ring struct {
	yawOffset float64
	glyph     byte
}

var rings = [4]ring{
	{0, '@'},
	{45 * math.Pi / 180, '$'},
	{90 * math.Pi / 180, '*'},
	{135 * math.Pi / 180, '!'},
}

// Sphere samples a hollow sphere of the given radius as four tilted rings.
type Sphere struct {
	Radius float64
	Step   float64 // x increment between neighbouring ring samples
}

// Draw rasterizes the sphere onto c at the given animation angles. Each
// sample is tilted into its ring's plane first, then rotated by the global
// animation angles. Pure regeneration: no state survives between calls.
func (s Sphere) Draw(c *Canvas, a Angles) {
	for _, r := range rings {
		s.drawRing(c, r, a)
	}
}

func (s Sphere) drawRing(c *Canvas, r ring, a Angles) {
	for x := -s.Radius; x <= s.Radius; x += s.Step {
		y := math.Sqrt(s.Radius*s.Radius - x*x)
		// sqrt yields only the upper half; mirror y for the lower.
		for _, p := range [2]Point3D{{x, y, 0}, {x, -y, 0}} {
			p = p.Rotate(0, r.yawOffset, 0)
			p = p.Rotate(a.Pitch, a.Yaw, a.Roll)
			c.Plot(p, r.glyph)
		}
	}
}
