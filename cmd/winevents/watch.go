package main

import (
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"

	"github.com/1broseidon/winlayer/internal/config"
	"github.com/1broseidon/winlayer/internal/window"
)

// configWatcher reloads the config file whenever it is written. Invalid
// edits are logged and skipped.
type configWatcher struct {
	fs      *fsnotify.Watcher
	path    string
	log     *slog.Logger
	configs chan *config.Config
	done    chan struct{}
}

// watchConfig watches the directory holding path so editors that replace
// the file on save are still seen.
func watchConfig(path string, logger *slog.Logger) (*configWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	cw := &configWatcher{
		fs:      fw,
		path:    abs,
		log:     logger,
		configs: make(chan *config.Config, 1),
		done:    make(chan struct{}),
	}
	go cw.loop()
	return cw, nil
}

// Configs delivers each successfully reloaded config.
func (cw *configWatcher) Configs() <-chan *config.Config {
	return cw.configs
}

func (cw *configWatcher) Close() error {
	err := cw.fs.Close()
	<-cw.done
	return err
}

func (cw *configWatcher) loop() {
	defer close(cw.done)
	for {
		select {
		case ev, ok := <-cw.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != cw.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			res, err := config.LoadFromPath(cw.path)
			if err != nil {
				cw.log.Warn("config reload failed", "error", err)
				continue
			}
			cw.deliver(res.Config)
		case err, ok := <-cw.fs.Errors:
			if !ok {
				return
			}
			cw.log.Warn("config watch error", "error", err)
		}
	}
}

// deliver keeps only the newest pending config.
func (cw *configWatcher) deliver(cfg *config.Config) {
	select {
	case <-cw.configs:
	default:
	}
	cw.configs <- cfg
}

// controls is the part of the window surface a config edit can change.
type controls interface {
	iconSetter
	SetTitle(title string)
	SetSize(s window.Size)
}

// reload applies the command-line overrides to next before comparing it
// with cur, so a flag keeps winning over the file. It returns the config now
// in effect.
func reload(w controls, cur, next *config.Config, overrides func(*config.Config) error, logger *slog.Logger) *config.Config {
	if err := overrides(next); err != nil {
		logger.Warn("config reload rejected", "error", err)
		return cur
	}
	applyConfig(w, cur, next, logger)
	return next
}

// applyConfig pushes the differences between prev and next to w. Style,
// display and adopt changes need a new window and are reported instead.
func applyConfig(w controls, prev, next *config.Config, logger *slog.Logger) {
	if next.Title != prev.Title {
		w.SetTitle(next.Title)
	}
	if next.Width != prev.Width || next.Height != prev.Height {
		w.SetSize(window.Size{Width: next.Width, Height: next.Height})
	}
	if next.Icon != "" && (next.Icon != prev.Icon || next.IconSize != prev.IconSize) {
		if err := applyIcon(w, next.Icon, next.IconSize); err != nil {
			logger.Warn("failed to load icon", "path", next.Icon, "error", err)
		}
	}
	if !slices.Equal(next.Style, prev.Style) || next.Display != prev.Display || next.Adopt != prev.Adopt {
		logger.Info("style, display and adopt changes take effect on restart")
	}
}
