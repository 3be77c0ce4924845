package sphere

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Per-tick view rotation increments. The interactive view spins faster than
// the ANSI contract so the tumble is visible at the 40 ms tick rate.
const (
	viewPitchStep = 0.008
	viewYawStep   = 0.012
	viewRollStep  = 0.006
	viewNudge     = 0.15
	viewTick      = 40 * time.Millisecond
)

// Shading character ramps, near to far.
var shadingStyles = [][]rune{
	// Heavy to light blocks
	{'█', '▉', '▊', '▋', '▌', '▍', '▎', '▏', '░', '▒', '▓', '·', '˙', ' '},
	// Circle variations
	{'●', '◉', '◎', '○', '◌', '◦', '∘', '·', '˙', '.'},
	// ASCII traditional
	{'@', '#', '&', '%', '$', 'W', 'M', 'H', '8', '0', 'Q', 'O', 'o', '*', '+', '=', '-', '^', ':', '.', ' '},
}

// depthGlyph maps a normalized depth in [0,1] to a shading rune; depth 1 is
// nearest.
func depthGlyph(depth float64, style int) rune {
	if depth < 0 {
		depth = 0
	}
	if depth > 1 {
		depth = 1
	}
	chars := shadingStyles[style%len(shadingStyles)]
	idx := int((1 - depth) * float64(len(chars)-1))
	return chars[idx]
}

// depthColor blends a green-to-cyan palette by ring position and darkens
// with distance.
func depthColor(t, depth float64) tcell.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if depth < 0 {
		depth = 0
	}
	if depth > 1 {
		depth = 1
	}

	r := int(50 + t*30)
	g := 255
	b := int(80 + t*160)

	// 25% brightness at the far side, full at the near side.
	factor := 0.25 + 0.75*depth
	r = int(float64(r) * factor)
	g = int(float64(g) * factor)
	b = int(float64(b) * factor)

	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// View renders the same ring geometry interactively with tcell: depth-shaded
// glyphs, keyboard rotation control, resize handling.
type View struct {
	sphere     Sphere
	angles     Angles
	autoRotate bool
	glyphMode  bool // draw each ring's own glyph instead of depth shading
	style      int
	frameCount int
}

// NewView returns an auto-rotating view of s.
func NewView(s Sphere) *View {
	return &View{
		sphere:     s,
		autoRotate: true,
		style:      2,
	}
}

func (v *View) update() {
	if v.autoRotate {
		v.angles.Advance(Deltas{viewPitchStep, viewYawStep, viewRollStep})
	}
	v.frameCount++
}

func (v *View) render(s tcell.Screen, w, h int) {
	drawText(s, 1, 1, tcell.StyleDefault.Foreground(tcell.ColorWhite),
		"orb | Arrows:rotate A/Space:auto R:reset S:style G:glyphs Q:quit")

	scale := math.Min(float64(w)/4.4, float64(h-4)/2.2) / v.sphere.Radius
	centerX, centerY := float64(w)/2, float64(h)/2

	type renderPoint struct {
		x, y  int
		z     float64
		char  rune
		color tcell.Color
	}

	var points []renderPoint

	for ri, r := range rings {
		colorT := float64(ri) / float64(len(rings)-1)
		for x := -v.sphere.Radius; x <= v.sphere.Radius; x += v.sphere.Step {
			y := math.Sqrt(v.sphere.Radius*v.sphere.Radius - x*x)
			for _, p := range [2]Point3D{{x, y, 0}, {x, -y, 0}} {
				p = p.Rotate(0, r.yawOffset, 0)
				p = p.Rotate(v.angles.Pitch, v.angles.Yaw, v.angles.Roll)

				sx := int(p.X*scale*2 + centerX)
				sy := int(-p.Y*scale + centerY)
				if sx < 0 || sx >= w || sy < 3 || sy >= h-1 {
					continue
				}

				depth := (p.Z + v.sphere.Radius) / (2 * v.sphere.Radius)
				char := depthGlyph(depth, v.style)
				if v.glyphMode {
					char = rune(r.glyph)
				}

				points = append(points, renderPoint{
					x: sx, y: sy, z: p.Z,
					char: char, color: depthColor(colorT, depth)})
			}
		}
	}

	// Painter's order: far points first so near ones overdraw them.
	sort.Slice(points, func(i, j int) bool { return points[i].z > points[j].z })

	for _, p := range points {
		s.SetContent(p.x, p.y, p.char, nil, tcell.StyleDefault.Foreground(p.color))
	}

	info := fmt.Sprintf("Radius: %.0f | Pitch: %.2f Yaw: %.2f Roll: %.2f | Frame: %d",
		v.sphere.Radius, v.angles.Pitch, v.angles.Yaw, v.angles.Roll, v.frameCount)
	drawText(s, 1, h-2, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), info)
}

// Run owns the terminal until the user quits.
func (v *View) Run() error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	quit := make(chan struct{})

	// Input handler
	go func() {
		defer close(quit)
		for {
			select {
			case <-quit:
				return
			default:
				ev := s.PollEvent()
				switch ev := ev.(type) {
				case *tcell.EventKey:
					switch ev.Key() {
					case tcell.KeyEscape, tcell.KeyCtrlC:
						return
					case tcell.KeyUp:
						v.angles.Pitch -= viewNudge
					case tcell.KeyDown:
						v.angles.Pitch += viewNudge
					case tcell.KeyLeft:
						v.angles.Yaw -= viewNudge
					case tcell.KeyRight:
						v.angles.Yaw += viewNudge
					case tcell.KeyRune:
						switch ev.Rune() {
						case 'q', 'Q':
							return
						case 'r':
							v.angles = Angles{}
						case 'a', ' ':
							v.autoRotate = !v.autoRotate
						case 's', 'S':
							v.style = (v.style + 1) % len(shadingStyles)
						case 'g', 'G':
							v.glyphMode = !v.glyphMode
						}
					}
				case *tcell.EventResize:
					s.Sync()
				}
			}
		}
	}()

	// Render loop
	ticker := time.NewTicker(viewTick)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			v.update()
			s.Clear()
			w, h := s.Size()

			if w <= 15 || h <= 8 {
				continue
			}

			v.render(s, w, h)
			s.Show()
		}
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}
