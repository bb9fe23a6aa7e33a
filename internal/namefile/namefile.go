package namefile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/wheel-picker/internal/wheel"
)

// debounce absorbs the burst of events editors emit for a single save.
const debounce = 150 * time.Millisecond

// Load reads one name per line.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read names file: %w", err)
	}
	names := wheel.ParseNames(string(data))
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Watch reloads path whenever it changes and sends the new list on the
// returned channel, which is closed once ctx is done. The parent directory
// is watched so editors that replace the file on save are still seen.
func Watch(ctx context.Context, path string) (<-chan []string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan []string, 1)
	go func() {
		defer close(out)
		defer w.Close()

		var (
			timer   *time.Timer
			timerCh <-chan time.Time
		)
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				timerCh = timer.C
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Str("path", abs).Msg("names file watcher error")
			case <-timerCh:
				timerCh = nil
				names, err := Load(abs)
				if err != nil {
					log.Warn().Err(err).Str("path", abs).Msg("names file reload failed")
					continue
				}
				log.Info().Str("path", abs).Int("names", len(names)).Msg("names file reloaded")
				// Only the newest list matters to the consumer.
				select {
				case <-out:
				default:
				}
				select {
				case out <- names:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
