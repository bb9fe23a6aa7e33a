package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/wheel-picker/internal/config"
)

const (
	headingH   = 22
	sectionGap = 14
	spinH      = 48
)

// layoutPanel places every panel widget top to bottom. The names list takes
// whatever height is left.
func (g *Game) layoutPanel() {
	pad := config.PanelPadding
	x0 := max(g.width-config.PanelWidth, 200) + pad
	iw := config.PanelWidth - 2*pad
	y := pad
	g.headings = g.headings[:0]

	addHeading := func(s string) {
		g.headings = append(g.headings, heading{text: s, x: x0, y: y})
		y += headingH
	}
	row := func(bs []*button, h int) {
		bw := (iw - (len(bs)-1)*config.ButtonGap) / len(bs)
		x := x0
		for _, b := range bs {
			b.rect = image.Rect(x, y, x+bw, y+h)
			x += bw + config.ButtonGap
		}
		y += h
	}

	addHeading("Names")
	fieldH := config.TextAreaRows*lineH + 8
	g.names.rect = image.Rect(x0, y, x0+iw, y+fieldH)
	y += fieldH + config.ButtonGap
	row(g.buttons[0:3], config.ButtonHeight)
	y += sectionGap

	addHeading("Wheel color")
	if n := len(g.swatches); n > 0 {
		gap := 0
		if n > 1 {
			gap = max(0, (iw-n*config.SwatchSize)/(n-1))
		}
		x := x0
		for i := range g.swatches {
			g.swatches[i].rect = image.Rect(x, y, x+config.SwatchSize, y+config.SwatchSize)
			x += config.SwatchSize + gap
		}
		y += config.SwatchSize + config.ButtonGap
	}
	row(g.buttons[3:5], config.ButtonHeight)
	y += sectionGap

	addHeading("Spin duration (seconds)")
	g.minusButton.rect = image.Rect(x0, y, x0+config.ButtonHeight, y+config.ButtonHeight)
	fx := x0 + config.ButtonHeight + config.ButtonGap
	g.duration.rect = image.Rect(fx, y, fx+80, y+config.ButtonHeight)
	px := fx + 80 + config.ButtonGap
	g.plusButton.rect = image.Rect(px, y, px+config.ButtonHeight, y+config.ButtonHeight)
	y += config.ButtonHeight + sectionGap

	row([]*button{g.spinButton}, spinH)
	y += sectionGap

	addHeading("On the wheel")
	g.listRect = image.Rect(x0, y, x0+iw, max(y, g.height-pad))
	g.listScroll = 0
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	panel := image.Rect(max(g.width-config.PanelWidth, 200), 0, g.width, g.height)
	fillRect(screen, panel, panelBg)

	for _, h := range g.headings {
		g.fonts.drawText(screen, h.text, labelSize, float64(h.x), float64(h.y), text.AlignStart, mutedText)
	}

	g.names.draw(screen, g.fonts)
	g.duration.draw(screen, g.fonts)
	for _, b := range g.buttons {
		b.draw(screen, g.fonts)
	}

	for i, s := range g.swatches {
		fillRect(screen, s.rect, s.color)
		if i == g.activeSwatch {
			strokeRect(screen, s.rect.Inset(-3), 2, color.White)
			strokeRect(screen, s.rect.Inset(3), 2, contrastColor(s.color))
		} else {
			strokeRect(screen, s.rect, 1, fieldBorder)
		}
	}
	g.drawTextColorPreview(screen)
	g.drawNamesList(screen)
}

// drawTextColorPreview shows the label color on the current wheel color
// inside the text color button row.
func (g *Game) drawTextColorPreview(screen *ebiten.Image) {
	b := g.buttons[4].rect
	chip := image.Rect(b.Max.X-22, b.Min.Y+8, b.Max.X-8, b.Max.Y-8)
	fillRect(screen, chip, g.picker.TextColor())
	strokeRect(screen, chip, 1, contrastColor(g.picker.TextColor()))
}

// contrastColor picks black or white, whichever reads on c.
func contrastColor(c color.Color) color.Color {
	if config.IsLight(c) {
		return color.Black
	}
	return color.White
}

func (g *Game) drawNamesList(screen *ebiten.Image) {
	r := g.listRect
	if r.Empty() {
		return
	}
	fillRect(screen, r, fieldBg)
	strokeRect(screen, r, 1, fieldBorder)

	names := g.picker.Frame().Names
	if len(names) == 0 {
		g.fonts.drawText(screen, "No names yet", labelSize, float64(r.Min.X+6), float64(r.Min.Y+4), text.AlignStart, mutedText)
		return
	}

	clip := screen.SubImage(r.Inset(1)).(*ebiten.Image)
	first := g.listScroll / lineH
	winner, hasWinner := g.picker.Winner()
	for i := first; i < len(names); i++ {
		y := r.Min.Y + 4 + i*lineH - g.listScroll
		if y > r.Max.Y {
			break
		}
		clr := color.Color(color.White)
		if hasWinner && names[i] == winner {
			clr = color.RGBA{R: 255, G: 215, B: 0, A: 255}
		}
		line := fmt.Sprintf("%d. %s", i+1, names[i])
		g.fonts.drawText(clip, line, labelSize, float64(r.Min.X+6), float64(y), text.AlignStart, clr)
	}
}
