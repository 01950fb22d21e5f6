package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/page-motion/internal/config"
	"github.com/iburimskiy/page-motion/internal/page"
	"github.com/iburimskiy/page-motion/internal/particles"
)

var (
	backgroundColor = color.NRGBA{R: 10, G: 12, B: 22, A: 255}
	heroColor       = color.NRGBA{R: 16, G: 18, B: 36, A: 255}
	cardColor       = color.NRGBA{R: 24, G: 28, B: 48, A: 230}
	cardBorder      = color.NRGBA{R: 70, G: 76, B: 120, A: 255}
	barTrack        = color.NRGBA{R: 40, G: 44, B: 70, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawHero(screen)
	g.drawElements(screen)
	g.drawStatus(screen)
}

func (g *Game) drawHero(screen *ebiten.Image) {
	hero := g.scene.Hero()
	top := -g.scene.Scroll()
	if top+hero.H <= 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, float32(top), float32(hero.W), float32(hero.H), heroColor, false)

	particles.Render(g.scene.Field, &g.canvas, g.style)
	if g.canvas.img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, top)
		screen.DrawImage(g.canvas.img, op)
	}

	x := config.PagePadding
	y := int(top + hero.H/2)
	ebitenutil.DebugPrintAt(screen, g.scene.Doc.Name, x, y-24)

	// Caret blinks at 2 Hz on scheduler time so it freezes with everything else.
	headline := g.scene.Headline()
	if g.scene.Now().UnixMilli()/500%2 == 0 {
		headline += "|"
	}
	ebitenutil.DebugPrintAt(screen, headline, x, y)
}

func (g *Game) drawElements(screen *ebiten.Image) {
	now := g.scene.Now()
	scroll := g.scene.Scroll()
	_, h := g.scene.Size()

	for _, el := range g.scene.Elements {
		if el.Kind == page.Group {
			continue
		}
		v := el.Target.Visibility(now)
		if v <= 0 {
			continue
		}
		r := el.Rect
		y := r.Y - scroll + (1-v)*config.RevealSlide
		if y > float64(h) || y+r.H < 0 {
			continue
		}
		x := float32(r.X)

		switch el.Kind {
		case page.Heading:
			ebitenutil.DebugPrintAt(screen, el.Title, int(r.X), int(y)+4)
			vector.StrokeLine(screen, x, float32(y+r.H), x+float32(r.W)*float32(v), float32(y+r.H), 1, fade(cardBorder, v), false)

		case page.StatCard:
			g.drawCard(screen, x, float32(y), float32(r.W), float32(r.H), v)
			ebitenutil.DebugPrintAt(screen, el.Counter.Display(), int(r.X)+16, int(y)+24)
			ebitenutil.DebugPrintAt(screen, el.Title, int(r.X)+16, int(y)+56)

		case page.SkillCard:
			g.drawCard(screen, x, float32(y), float32(r.W), float32(r.H), v)
			ebitenutil.DebugPrintAt(screen, el.Title, int(r.X)+16, int(y)+14)
			g.drawBar(screen, el, now, x+16, float32(y)+44, float32(r.W)-32, v)

		case page.SectionCard:
			g.drawCard(screen, x, float32(y), float32(r.W), float32(r.H), v)
			ebitenutil.DebugPrintAt(screen, el.Title, int(r.X)+16, int(y)+16)
			ebitenutil.DebugPrintAt(screen, el.Body, int(r.X)+16, int(y)+44)
		}
	}
}

func (g *Game) drawCard(screen *ebiten.Image, x, y, w, h float32, v float64) {
	vector.DrawFilledRect(screen, x, y, w, h, fade(cardColor, v), false)
	vector.StrokeRect(screen, x, y, w, h, 1, fade(cardBorder, v), false)
}

func (g *Game) drawBar(screen *ebiten.Image, el *page.Element, now time.Time, x, y, w float32, v float64) {
	const barH = 8
	vector.DrawFilledRect(screen, x, y, w, barH, fade(barTrack, v), false)
	fill := float32(el.Bar.Fill(now) / 100)
	if fill > 0 {
		vector.DrawFilledRect(screen, x, y, w*fill, barH, accent(el.Index, v), false)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := "Space: pause  O: open content  M: mute  Esc/Q: quit"
	switch {
	case g.userPaused:
		status = "Paused - " + status
	case g.scene.Paused():
		status = "Paused (window hidden) - " + status
	}
	if g.clicker.Muted() {
		status += "  [muted]"
	}
	status += "  " + formatDuration(time.Since(g.bootedAt))
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	_, h := g.scene.Size()
	ebitenutil.DebugPrintAt(screen, status, 12, h-20)
}
