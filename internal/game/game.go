package game

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/wheel-picker/internal/config"
	"github.com/iburimskiy/wheel-picker/internal/schedule"
	"github.com/iburimskiy/wheel-picker/internal/wheel"
)

const colorShiftSpeed = 0.004

type swatch struct {
	color color.Color
	rect  image.Rectangle
}

type heading struct {
	text string
	x, y int
}

// Game is the ebiten game hosting the picker. It also serves as the
// picker's View.
type Game struct {
	cfg    *config.Config
	loop   *schedule.Loop
	picker *wheel.Picker
	fonts  *fonts

	width, height int
	wheelImage    *ebiten.Image
	dirty         bool

	// panel
	names        *textField
	duration     *textField
	buttons      []*button
	spinButton   *button
	minusButton  *button
	plusButton   *button
	swatches     []swatch
	activeSwatch int
	headings     []heading
	listRect     image.Rectangle
	listScroll   int

	// overlays
	removeButton *button
	keepButton   *button
	celebration  string
	announcement string
	inputLocked  bool

	// results produced off the game goroutine
	dialogs     chan func()
	dialogOpen  bool
	nameUpdates <-chan []string

	// input edge detection
	prevKey map[ebiten.Key]bool

	colorPhase float64
	lastErr    error
}

// NewGame wires a picker to a fresh schedule loop driven by clock.
func NewGame(cfg *config.Config, sounds wheel.Sounds, clock clockwork.Clock) (*Game, error) {
	f, err := newFonts()
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	opts, err := cfg.PickerOptions()
	if err != nil {
		return nil, err
	}
	palette, err := config.ParsePalette(cfg.Wheel.Swatches)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:          cfg,
		loop:         schedule.New(clock),
		fonts:        f,
		dirty:        true,
		activeSwatch: -1,
		dialogs:      make(chan func(), 4),
		prevKey:      map[ebiten.Key]bool{},
	}
	for i, c := range palette {
		g.swatches = append(g.swatches, swatch{color: c})
		if config.FormatColor(c) == config.FormatColor(opts.WheelColor) && g.activeSwatch < 0 {
			g.activeSwatch = i
		}
	}
	g.buildWidgets()
	g.picker = wheel.NewPicker(opts, g.loop, sounds, g)
	g.duration.value = strconv.Itoa(g.picker.SpinSeconds())
	g.SetSpinEnabled(g.picker.CanSpin())
	return g, nil
}

func (g *Game) buildWidgets() {
	g.names = &textField{
		multiline: true,
		onSubmit:  func(string) { g.addNames() },
	}
	g.duration = &textField{
		maxLen:   3,
		accept:   func(r rune) bool { return r >= '0' && r <= '9' },
		onSubmit: g.applyDuration,
		onBlur:   g.applyDuration,
	}

	g.spinButton = &button{label: "SPIN", primary: true, onClick: g.spin}
	g.minusButton = &button{label: "-", onClick: func() { g.stepDuration(-1) }}
	g.plusButton = &button{label: "+", onClick: func() { g.stepDuration(1) }}
	g.buttons = []*button{
		{label: "Add Names", onClick: g.addNames},
		{label: "Clear", onClick: g.clearNames},
		{label: "Import...", onClick: g.importNames},
		{label: "Wheel color...", onClick: g.pickWheelColor},
		{label: "Text color...", onClick: g.pickTextColor},
		g.minusButton,
		g.plusButton,
		g.spinButton,
	}

	g.removeButton = &button{label: "Remove (R)", onClick: g.removeWinner}
	g.keepButton = &button{label: "Keep (K)", onClick: g.keepWinner}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.loop.Tick()
	g.drainResults()

	typing := g.names.focused || g.duration.focused
	mouseX, mouseY := ebiten.CursorPosition()

	switch {
	case g.announcement != "":
		g.removeButton.update(mouseX, mouseY)
		g.keepButton.update(mouseX, mouseY)
		if justPressed(ebiten.KeyR) {
			g.removeWinner()
		} else if justPressed(ebiten.KeyK) {
			g.keepWinner()
		}
	case g.celebration != "" || g.inputLocked:
		// Modal; wait for the announcement.
	default:
		g.updatePanel(mouseX, mouseY)
		if !typing && justPressed(ebiten.KeySpace) {
			g.spin()
		}
	}

	if !typing && (justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ)) {
		return ebiten.Termination
	}

	g.colorPhase += colorShiftSpeed
	return nil
}

func (g *Game) updatePanel(mx, my int) {
	g.names.update(mx, my)
	g.duration.update(mx, my)
	for _, b := range g.buttons {
		b.update(mx, my)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for i, s := range g.swatches {
			if inRect(s.rect, mx, my) {
				g.activeSwatch = i
				g.picker.SetWheelColor(s.color)
			}
		}
	}

	if inRect(g.listRect, mx, my) {
		_, dy := ebiten.Wheel()
		g.scrollList(-int(dy * lineH))
	}
}

func (g *Game) scrollList(delta int) {
	content := g.picker.Len() * lineH
	limit := max(0, content-g.listRect.Dy())
	g.listScroll = min(max(g.listScroll+delta, 0), limit)
}

// drainResults applies work handed over by dialogs and the names watcher.
func (g *Game) drainResults() {
	for drained := false; !drained; {
		select {
		case fn := <-g.dialogs:
			fn()
		default:
			drained = true
		}
	}

	if g.nameUpdates != nil {
		select {
		case names, ok := <-g.nameUpdates:
			if !ok {
				g.nameUpdates = nil
			} else {
				g.picker.QueueNames(names)
				g.listScroll = 0
			}
		default:
		}
	}
}

func (g *Game) spin() {
	g.applyDuration(g.duration.value)
	if err := g.picker.Spin(); err != nil {
		log.Debug().Err(err).Msg("spin ignored")
	}
}

func (g *Game) addNames() {
	n, err := g.picker.AddNames(g.names.value)
	if err != nil {
		log.Debug().Err(err).Msg("add names ignored")
		return
	}
	if n > 0 {
		g.names.value = ""
	}
}

func (g *Game) clearNames() {
	if err := g.picker.ClearNames(); err != nil {
		log.Debug().Err(err).Msg("clear names ignored")
		return
	}
	g.listScroll = 0
}

func (g *Game) removeWinner() {
	if err := g.picker.RemoveWinner(); err != nil {
		log.Debug().Err(err).Msg("remove winner ignored")
	}
	g.scrollList(0)
}

func (g *Game) keepWinner() {
	if err := g.picker.KeepWinner(); err != nil {
		log.Debug().Err(err).Msg("keep winner ignored")
	}
}

// applyDuration takes whatever is in the duration field; anything that is
// not a number leaves the current setting alone.
func (g *Game) applyDuration(raw string) {
	if n, ok := wheel.ParseSeconds(raw); ok {
		g.picker.SetSpinSeconds(n)
	}
	g.duration.value = strconv.Itoa(g.picker.SpinSeconds())
}

func (g *Game) stepDuration(delta int) {
	g.picker.SetSpinSeconds(g.picker.SpinSeconds() + delta)
	g.duration.value = strconv.Itoa(g.picker.SpinSeconds())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawWheel(screen)
	g.drawPanel(screen)

	status := fmt.Sprintf("Spin %s | %d names | %s", formatDuration(time.Duration(g.picker.SpinSeconds())*time.Second), g.picker.Len(), g.picker.Stage())
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	switch {
	case g.announcement != "":
		g.drawAnnouncement(screen)
	case g.celebration != "":
		g.drawCelebration(screen)
	}
	g.drawConfetti(screen)
}

func (g *Game) wheelArea() image.Rectangle {
	return image.Rect(0, 0, max(g.width-config.PanelWidth, 200), g.height)
}

func (g *Game) drawWheel(screen *ebiten.Image) {
	area := g.wheelArea()
	if g.wheelImage == nil || g.wheelImage.Bounds().Size() != area.Size() {
		if g.wheelImage != nil {
			g.wheelImage.Deallocate()
		}
		g.wheelImage = ebiten.NewImage(area.Dx(), area.Dy())
		g.dirty = true
	}
	if g.dirty {
		g.wheelImage.Clear()
		wheel.Render(&surface{dst: g.wheelImage, fonts: g.fonts}, g.picker.Frame())
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(area.Min.X), float64(area.Min.Y))
	screen.DrawImage(g.wheelImage, op)

	cx, cy, radius := wheel.Geometry(float64(area.Dx()), float64(area.Dy()))
	if g.picker.Len() > 0 {
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), 14, color.RGBA{R: 30, G: 36, B: 50, A: 255}, true)
		vector.StrokeCircle(screen, float32(cx), float32(cy), 14, 2, color.White, true)
	}
	g.drawPointer(screen, cx, cy-radius)
}

// drawPointer draws the fixed marker at the top of the wheel, tip down.
func (g *Game) drawPointer(screen *ebiten.Image, x, top float64) {
	halfW := float32(config.PointerWidth) / 2
	tip := float32(top) + 12
	var path vector.Path
	path.MoveTo(float32(x), tip)
	path.LineTo(float32(x)-halfW, tip-config.PointerHeight)
	path.LineTo(float32(x)+halfW, tip-config.PointerHeight)
	path.Close()
	fillPath(screen, &path, color.White)
	strokePath(screen, &path, 2, sliceBorder)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.layoutPanel()
		g.layoutModal()
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}

// View

func (g *Game) Redraw() { g.dirty = true }

func (g *Game) SetSpinEnabled(enabled bool) { g.spinButton.disabled = !enabled }

func (g *Game) ShowCelebration(winner string) { g.celebration = winner }

func (g *Game) HideCelebration() { g.celebration = "" }

func (g *Game) ShowAnnouncement(winner string) {
	g.announcement = winner
	g.layoutModal()
}

func (g *Game) HideAnnouncement() { g.announcement = "" }

// SetScrollLocked freezes the panel, including the names list scroll,
// while an overlay is up.
func (g *Game) SetScrollLocked(locked bool) {
	g.inputLocked = locked
	if locked {
		g.names.focused = false
		g.duration.focused = false
	}
}
