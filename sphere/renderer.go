package sphere

import (
	"bufio"
	"context"
	"io"
)

// Angles is the animation state: three Euler accumulators in radians. They
// grow monotonically; only their sine and cosine are ever taken, so wrapping
// is irrelevant.
type Angles struct {
	Pitch, Yaw, Roll float64
}

// Deltas are the per-frame angle increments.
type Deltas struct {
	Pitch, Yaw, Roll float64
}

// Advance increments each accumulator by its per-frame delta.
func (a *Angles) Advance(d Deltas) {
	a.Pitch += d.Pitch
	a.Yaw += d.Yaw
	a.Roll += d.Roll
}

// Terminal control sequences. The foreground color is set once at startup
// and never reset; frames overwrite each other in place via cursor home.
const (
	ansiInit = "\x1b[2J\x1b[32m" // clear screen, green foreground
	ansiHome = "\x1b[H"
)

// Renderer owns the canvas, geometry and animation state of the ANSI render
// loop. Nothing here is safe for concurrent use; the loop is single-threaded
// by design.
type Renderer struct {
	canvas *Canvas
	sphere Sphere
	angles Angles
	deltas Deltas
	out    *bufio.Writer
}

// NewRenderer wires a renderer to out. Frames are buffered and flushed once
// per frame.
func NewRenderer(c *Canvas, s Sphere, d Deltas, out io.Writer) *Renderer {
	return &Renderer{
		canvas: c,
		sphere: s,
		deltas: d,
		out:    bufio.NewWriterSize(out, (c.Width()+1)*c.Height()+16),
	}
}

// Angles returns the current animation state.
func (r *Renderer) Angles() Angles { return r.angles }

// Canvas returns the canvas the renderer draws into.
func (r *Renderer) Canvas() *Canvas { return r.canvas }

// RenderFrame clears the buffers, homes the cursor, draws all rings at the
// current angles, flushes the frame, then advances the animation state.
func (r *Renderer) RenderFrame() error {
	r.canvas.Clear()
	if _, err := r.out.WriteString(ansiHome); err != nil {
		return err
	}
	r.sphere.Draw(r.canvas, r.angles)
	if _, err := r.canvas.WriteTo(r.out); err != nil {
		return err
	}
	if err := r.out.Flush(); err != nil {
		return err
	}
	r.angles.Advance(r.deltas)
	return nil
}

// Run emits the startup escape sequence and renders frames until ctx is done
// or maxFrames is reached; maxFrames <= 0 runs forever. There is no frame
// pacing: the loop spins as fast as the terminal accepts writes.
func (r *Renderer) Run(ctx context.Context, maxFrames int) error {
	if _, err := r.out.WriteString(ansiInit); err != nil {
		return err
	}
	for n := 0; maxFrames <= 0 || n < maxFrames; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := r.RenderFrame(); err != nil {
			return err
		}
	}
	return r.out.Flush()
}
