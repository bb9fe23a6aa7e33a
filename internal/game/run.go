package game

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/wheel-picker/internal/audio"
	"github.com/iburimskiy/wheel-picker/internal/config"
	"github.com/iburimskiy/wheel-picker/internal/namefile"
	"github.com/iburimskiy/wheel-picker/internal/wheel"
)

// Run opens the window and blocks until it is closed.
func Run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	player := audio.NewPlayer()
	if cfg.Sounds.Enabled {
		player.Load(map[wheel.Cue]string{
			wheel.CueSpin:        cfg.Sounds.Spin,
			wheel.CueCelebration: cfg.Sounds.Celebration,
			wheel.CueWinner:      cfg.Sounds.Winner,
		})
		if err := player.Init(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		}
		defer player.Close()
	}

	g, err := NewGame(cfg, player, clockwork.NewRealClock())
	if err != nil {
		return err
	}

	if cfg.NamesFile.Path != "" && cfg.NamesFile.Watch {
		updates, err := namefile.Watch(ctx, cfg.NamesFile.Path)
		if err != nil {
			log.Warn().Err(err).Str("file", cfg.NamesFile.Path).Msg("not watching names file")
		} else {
			g.nameUpdates = updates
		}
	}

	log.Info().Int("names", g.picker.Len()).Msg("wheel ready")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
