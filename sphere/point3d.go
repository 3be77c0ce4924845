// Package sphere renders a rotating hollow sphere as terminal ASCII art
// using a software rasterizer with an inverse-depth buffer.
package sphere

import "math"

// Point3D holds a 3D coordinate.
type Point3D struct{ X, Y, Z float64 }

// Rotate applies the combined rotation Rz(roll)·Ry(yaw)·Rx(pitch) to p.
// The matrix product is expanded in closed form, so one call costs three
// sincos evaluations and produces no intermediate points.
func (p Point3D) Rotate(pitch, yaw, roll float64) Point3D {
	sinP, cosP := math.Sincos(pitch)
	sinY, cosY := math.Sincos(yaw)
	sinR, cosR := math.Sincos(roll)

	return Point3D{
		X: p.X*cosR*cosY +
			p.Y*(cosR*sinY*sinP-sinR*cosP) +
			p.Z*(sinR*sinP+cosR*sinY*cosP),
		Y: p.X*sinR*cosY +
			p.Y*(cosR*cosP+sinR*sinY*sinP) +
			p.Z*(sinR*sinY*cosP-cosR*sinP),
		Z: -p.X*sinY +
			p.Y*cosY*sinP +
			p.Z*cosY*cosP,
	}
}
