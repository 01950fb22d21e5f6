package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/page-motion/internal/clock"
	"github.com/iburimskiy/page-motion/internal/config"
	"github.com/iburimskiy/page-motion/internal/content"
	"github.com/iburimskiy/page-motion/internal/page"
	"github.com/iburimskiy/page-motion/internal/particles"
	"github.com/iburimskiy/page-motion/internal/sound"
)

// Game hosts the page in an ebiten window.
type Game struct {
	settings config.Settings
	log      *zap.Logger

	scene  *page.Scene
	canvas imageSurface
	style  particles.Style

	clicker *sound.Clicker

	// pending window size from Layout, applied on the next Update
	outW, outH int

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	userPaused bool
	focused    bool
	bootedAt   time.Time
	lastErr    error
}

// New creates the game for doc. Audio is initialised unless muted; a machine
// without a sound device just stays quiet.
func New(settings config.Settings, doc *content.Document, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		settings: settings,
		log:      log,
		style:    particles.DefaultStyle(),
		clicker:  sound.NewClicker(log.Named("sound")),
		prevKey:  map[ebiten.Key]bool{},
		focused:  true,
		bootedAt: time.Now(),
		outW:     settings.Width,
		outH:     settings.Height,
	}
	g.clicker.SetMuted(settings.Mute)
	if !settings.Mute {
		_ = g.clicker.Init()
	}
	g.load(doc)
	return g
}

// load replaces the running scene with a fresh one for doc.
func (g *Game) load(doc *content.Document) {
	if g.scene != nil {
		g.scene.Close()
	}
	g.scene = page.New(doc, page.Options{
		Width:  g.outW,
		Height: g.outH,
		Seed:   g.settings.Seed,
		Clock:  clock.Real{},
		Log:    g.log.Named("page"),
		OnType: func(string) { g.clicker.Click() },
	})
	w, h := g.scene.Field.Width, g.scene.Field.Height
	g.canvas.resize(w, h)
	if g.userPaused {
		g.scene.Pause()
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.scene.Close()
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.userPaused = !g.userPaused
	}
	if justPressed(ebiten.KeyM) {
		g.toggleMute()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openContentDialog(); err != nil {
			g.lastErr = err
			g.log.Warn("content not loaded", zap.Error(err))
		}
	}

	g.applyResize()
	g.handleScroll()
	g.handleFocus()

	mouseX, mouseY := ebiten.CursorPosition()
	w, h := g.scene.Size()
	inWindow := mouseX >= 0 && mouseY >= 0 && mouseX < w && mouseY < h
	g.scene.Pointer(float64(mouseX), float64(mouseY), inWindow)

	g.scene.Update()
	return nil
}

func (g *Game) applyResize() {
	w, h := g.scene.Size()
	if w == g.outW && h == g.outH {
		return
	}
	g.scene.Resize(g.outW, g.outH)
	g.canvas.resize(g.scene.Field.Width, g.scene.Field.Height)
}

func (g *Game) handleScroll() {
	_, wy := ebiten.Wheel()
	dy := -wy * config.ScrollStep
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		dy += config.ScrollStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyK) {
		dy -= config.ScrollStep
	}
	_, h := g.scene.Size()
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		dy += float64(h) * 0.9
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		dy -= float64(h) * 0.9
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		dy = -g.scene.Scroll()
	}
	if dy != 0 {
		g.scene.ScrollBy(dy)
	}
}

// handleFocus suspends every animation while the window is paused by the user
// or, when configured, while it is not focused.
func (g *Game) handleFocus() {
	focused := ebiten.IsFocused()
	if focused != g.focused {
		g.log.Debug("focus changed", zap.Bool("focused", focused))
		g.focused = focused
	}
	hold := g.userPaused || (g.settings.PauseWhenHidden && !g.focused)
	switch {
	case hold && !g.scene.Paused():
		g.scene.Pause()
	case !hold && g.scene.Paused():
		g.scene.Resume()
	}
}

func (g *Game) toggleMute() {
	muted := !g.clicker.Muted()
	g.clicker.SetMuted(muted)
	if !muted {
		if err := g.clicker.Init(); err != nil {
			g.lastErr = fmt.Errorf("audio: %w", err)
		}
	}
}

func (g *Game) openContentDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Page Content"),
		zenity.FileFilters{{
			Name:     "Page content",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	doc, err := content.Load(filename)
	if err != nil {
		return err
	}
	g.log.Info("content loaded", zap.String("path", filename))
	g.lastErr = nil
	g.load(doc)
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.settings.Width, g.settings.Height)
	ebiten.SetWindowTitle("Page Motion - Scroll to explore, Space: Pause, O: Open content, M: Mute, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
