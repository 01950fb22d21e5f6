package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageSurface draws the particle field onto an offscreen ebiten image.
// A nil image has zero size, which makes rendering a no-op.
type imageSurface struct {
	img *ebiten.Image
}

func (s *imageSurface) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *imageSurface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

func (s *imageSurface) FillCircle(x, y, r float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}

func (s *imageSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA) {
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

// resize replaces the backing image. Zero sizes leave it nil.
func (s *imageSurface) resize(w, h int) {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	if w > 0 && h > 0 {
		s.img = ebiten.NewImage(w, h)
	}
}
