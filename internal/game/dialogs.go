package game

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/wheel-picker/internal/namefile"
)

// Native dialogs block, so they run on their own goroutine and hand the
// outcome back through g.dialogs for Update to apply.

func (g *Game) pickWheelColor() {
	g.pickColor("Wheel Color", g.picker.WheelColor(), func(c color.Color) {
		g.activeSwatch = -1
		g.picker.SetWheelColor(c)
	})
}

func (g *Game) pickTextColor() {
	g.pickColor("Text Color", g.picker.TextColor(), g.picker.SetTextColor)
}

func (g *Game) pickColor(title string, initial color.Color, apply func(color.Color)) {
	if g.dialogOpen {
		return
	}
	g.dialogOpen = true
	go func() {
		c, err := zenity.SelectColor(zenity.Title(title), zenity.Color(initial))
		g.dialogs <- func() {
			g.dialogOpen = false
			if err != nil {
				g.dialogFailed(err)
				return
			}
			apply(c)
		}
	}()
}

// importNames appends the names from a text file, one per line.
func (g *Game) importNames() {
	if g.dialogOpen {
		return
	}
	g.dialogOpen = true
	go func() {
		path, err := zenity.SelectFile(
			zenity.Title("Import Names"),
			zenity.FileFilters{{
				Name:     "Names",
				Patterns: []string{"*.txt", "*.csv"},
			}},
		)
		var names []string
		if err == nil {
			names, err = namefile.Load(path)
		}
		g.dialogs <- func() {
			g.dialogOpen = false
			if err != nil {
				g.dialogFailed(err)
				return
			}
			n, err := g.picker.AddNames(strings.Join(names, "\n"))
			if err != nil {
				g.lastErr = fmt.Errorf("import %s: %w", path, err)
				log.Warn().Err(err).Str("file", path).Msg("import rejected")
				return
			}
			log.Info().Str("file", path).Int("added", n).Msg("imported names")
		}
	}()
}

func (g *Game) dialogFailed(err error) {
	if errors.Is(err, zenity.ErrCanceled) {
		return
	}
	g.lastErr = err
	log.Warn().Err(err).Msg("dialog failed")
}
