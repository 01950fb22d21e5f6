package particles

import (
	"image/color"
	"math"

	"github.com/iburimskiy/page-motion/internal/config"
)

// Surface is an immediate-mode 2D drawing target.
type Surface interface {
	Size() (width, height int)
	Clear()
	FillCircle(x, y, r float64, c color.NRGBA)
	StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA)
}

// Style controls how connections are drawn.
//
// Every unordered pair is checked each frame, so the cost is n(n-1)/2 distance
// tests. With MaxCount 80 that is at most 3160 checks per frame; past a few
// hundred particles a spatial grid would be the next step.
type Style struct {
	Distance  float64
	MaxAlpha  float64
	LineWidth float64
	LineColor color.NRGBA
}

func DefaultStyle() Style {
	return Style{
		Distance:  config.ConnectionDistance,
		MaxAlpha:  config.ConnectionMaxAlpha,
		LineWidth: config.ConnectionWidth,
		LineColor: color.NRGBA{R: 99, G: 102, B: 241, A: 255},
	}
}

// ConnectionAlpha is the opacity of a line between two particles d apart:
// maxAlpha at d == 0 falling linearly to 0 at maxDist, and 0 beyond.
func ConnectionAlpha(d, maxDist, maxAlpha float64) float64 {
	if maxDist <= 0 || d >= maxDist {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return maxAlpha * (1 - d/maxDist)
}

// Render clears s and draws every particle followed by every connection. It
// returns the number of connections drawn. Nothing is drawn when either the
// field or the surface has zero area.
func Render(f *Field, s Surface, st Style) int {
	if f == nil || s == nil || f.Width <= 0 || f.Height <= 0 {
		return 0
	}
	if w, h := s.Size(); w <= 0 || h <= 0 {
		return 0
	}
	s.Clear()

	for _, p := range f.Particles {
		c := f.cfg.Palette[p.Color%len(f.cfg.Palette)]
		c.A = uint8(math.Round(clamp01(p.Opacity) * 255))
		s.FillCircle(p.X, p.Y, p.Radius, c)
	}

	lines := 0
	ps := f.Particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
			a := ConnectionAlpha(d, st.Distance, st.MaxAlpha)
			if a <= 0 {
				continue
			}
			c := st.LineColor
			c.A = uint8(math.Round(clamp01(a) * 255))
			s.StrokeLine(ps[i].X, ps[i].Y, ps[j].X, ps[j].Y, st.LineWidth, c)
			lines++
		}
	}
	return lines
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
