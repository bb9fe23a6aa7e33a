package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// drawBackground paints a slowly shifting vertical gradient in bands.
func (g *Game) drawBackground(screen *ebiten.Image) {
	const band = 4
	for y := 0; y < g.height; y += band {
		ratio := float64(y) / float64(max(g.height, 1))
		r := uint8(10 + 20*math.Sin(g.colorPhase*0.5+ratio*math.Pi))
		gv := uint8(12 + 15*math.Cos(g.colorPhase*0.3+ratio*math.Pi))
		b := uint8(20 + 25*math.Sin(g.colorPhase*0.7+ratio*math.Pi))
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.width), band, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}
