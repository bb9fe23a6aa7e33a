package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/wheel-picker/internal/config"
)

var dimColor = color.RGBA{R: 0, G: 0, B: 0, A: 180}

// drawCelebration covers the whole window with the winner's name. The
// title color cycles through the hue wheel while the overlay is up.
func (g *Game) drawCelebration(screen *ebiten.Image) {
	fillRect(screen, screen.Bounds(), dimColor)

	w, h := float64(g.width), float64(g.height)
	g.fonts.drawText(screen, "We have a winner!", 28, w/2, h/2-90, text.AlignCenter, color.White)

	hue := math.Mod(g.colorPhase*360, 360)
	r, gv, b := hsvToRgb(hue, 0.7, 1.0)
	g.fonts.drawText(screen, g.celebration, config.CelebrationFontSize, w/2, h/2-30, text.AlignCenter,
		color.RGBA{R: r, G: gv, B: b, A: 255})
}

// drawConfetti draws each live particle falling from above the window.
func (g *Game) drawConfetti(screen *ebiten.Image) {
	c := g.picker.Confetti()
	if c.Len() == 0 {
		return
	}
	now := g.loop.Now()
	w, h := float64(g.width), float64(g.height)

	for _, p := range c.Particles() {
		fall := p.Fall(now, c.Lifetime())
		if fall <= 0 {
			continue
		}
		sway := math.Sin(fall*6*math.Pi+float64(p.ID)) * 12
		x := p.X*w + sway
		y := -p.Size + fall*(h+2*p.Size)
		if p.Round {
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(p.Size/2), p.Color, true)
			continue
		}
		vector.DrawFilledRect(screen, float32(x-p.Size/2), float32(y-p.Size/2), float32(p.Size), float32(p.Size), p.Color, false)
	}
}

func (g *Game) modalRect() image.Rectangle {
	x := (g.width - config.ModalWidth) / 2
	y := (g.height - config.ModalHeight) / 2
	return image.Rect(x, y, x+config.ModalWidth, y+config.ModalHeight)
}

func (g *Game) layoutModal() {
	m := g.modalRect()
	bw := (config.ModalWidth - 3*config.PanelPadding) / 2
	y := m.Max.Y - config.PanelPadding - config.ButtonHeight
	x := m.Min.X + config.PanelPadding
	g.removeButton.rect = image.Rect(x, y, x+bw, y+config.ButtonHeight)
	x += bw + config.PanelPadding
	g.keepButton.rect = image.Rect(x, y, x+bw, y+config.ButtonHeight)
}

func (g *Game) drawAnnouncement(screen *ebiten.Image) {
	fillRect(screen, screen.Bounds(), dimColor)

	m := g.modalRect()
	fillRect(screen, m, color.RGBA{R: 30, G: 36, B: 50, A: 255})
	strokeRect(screen, m, 2, focusBorder)

	cx := float64(m.Min.X) + float64(m.Dx())/2
	g.fonts.drawText(screen, "Winner", 18, cx, float64(m.Min.Y+config.PanelPadding), text.AlignCenter, mutedText)
	g.fonts.drawText(screen, g.announcement, config.AnnouncementFontSize, cx, float64(m.Min.Y+50), text.AlignCenter, color.White)

	g.removeButton.draw(screen, g.fonts)
	g.keepButton.draw(screen, g.fonts)
}
