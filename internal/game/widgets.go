package game

import (
	"image"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	labelSize = 14
	lineH     = 18
)

var (
	panelBg      = color.RGBA{R: 20, G: 25, B: 35, A: 230}
	fieldBg      = color.RGBA{R: 12, G: 14, B: 20, A: 255}
	fieldBorder  = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	focusBorder  = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	mutedText    = color.RGBA{R: 150, G: 160, B: 180, A: 255}
	disabledText = color.RGBA{R: 90, G: 95, B: 110, A: 255}
)

func inRect(r image.Rectangle, x, y int) bool {
	return image.Pt(x, y).In(r)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, clr, false)
}

// repeatingKeyPressed is true on the first frame a key is held and then at
// a steady rate after a short delay.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

type button struct {
	label    string
	rect     image.Rectangle
	disabled bool
	primary  bool
	hovered  bool
	pressed  bool
	onClick  func()
}

// update runs the press/release cycle: a click counts only when the
// release happens over the same button that saw the press.
func (b *button) update(mx, my int) {
	b.hovered = !b.disabled && inRect(b.rect, mx, my)
	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if b.pressed && b.hovered && b.onClick != nil {
			b.onClick()
		}
		b.pressed = false
	}
}

func (b *button) draw(dst *ebiten.Image, f *fonts) {
	var bg color.Color
	switch {
	case b.disabled:
		bg = color.RGBA{R: 45, G: 50, B: 62, A: 255}
	case b.pressed:
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	case b.hovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	case b.primary:
		bg = color.RGBA{R: 220, G: 80, B: 50, A: 255}
	default:
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	fillRect(dst, b.rect, bg)
	strokeRect(dst, b.rect, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255})

	fg := color.Color(color.White)
	if b.disabled {
		fg = disabledText
	}
	size := float64(labelSize)
	if b.primary {
		size = 20
	}
	_, h := f.measure(b.label, size)
	cx := float64(b.rect.Min.X) + float64(b.rect.Dx())/2
	cy := float64(b.rect.Min.Y) + (float64(b.rect.Dy())-h)/2
	f.drawText(dst, b.label, size, cx, cy, text.AlignCenter, fg)
}

// textField is a click-to-focus text input. Multi-line fields take Enter as
// a newline and Ctrl+Enter as submit; single-line fields submit on Enter.
type textField struct {
	rect      image.Rectangle
	value     string
	multiline bool
	maxLen    int
	accept    func(r rune) bool
	focused   bool
	onSubmit  func(value string)
	onBlur    func(value string)
	runes     []rune
	blink     int
}

func (t *textField) update(mx, my int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		inside := inRect(t.rect, mx, my)
		if t.focused && !inside && t.onBlur != nil {
			t.onBlur(t.value)
		}
		t.focused = inside
	}
	if !t.focused {
		return
	}
	t.blink++

	t.runes = ebiten.AppendInputChars(t.runes[:0])
	for _, r := range t.runes {
		if t.accept != nil && !t.accept(r) {
			continue
		}
		if t.maxLen > 0 && utf8.RuneCountInString(t.value) >= t.maxLen {
			break
		}
		t.value += string(r)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		if t.multiline && !ctrlPressed() {
			t.value += "\n"
		} else if t.onSubmit != nil {
			t.onSubmit(t.value)
		}
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) && t.value != "" {
		_, size := utf8.DecodeLastRuneInString(t.value)
		t.value = t.value[:len(t.value)-size]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		t.focused = false
		if t.onBlur != nil {
			t.onBlur(t.value)
		}
	}
}

func (t *textField) draw(dst *ebiten.Image, f *fonts) {
	fillRect(dst, t.rect, fieldBg)
	border := fieldBorder
	if t.focused {
		border = focusBorder
	}
	strokeRect(dst, t.rect, 1, border)

	lines := strings.Split(t.value, "\n")
	rows := max(1, (t.rect.Dy()-8)/lineH)
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	x := float64(t.rect.Min.X + 6)
	y := float64(t.rect.Min.Y + 4)
	if !t.multiline {
		y = float64(t.rect.Min.Y) + float64(t.rect.Dy()-lineH)/2
	}
	for i, line := range lines {
		if i == len(lines)-1 && t.focused && t.blink/30%2 == 0 {
			line += "_"
		}
		f.drawText(dst, line, labelSize, x, y+float64(i*lineH), text.AlignStart, color.White)
	}
	if t.value == "" && !t.focused && t.multiline {
		f.drawText(dst, "One name per line, Ctrl+Enter to add", labelSize, x, y, text.AlignStart, mutedText)
	}
}
