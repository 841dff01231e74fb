// Command winevents opens or adopts a native window and prints the events it
// produces until the window is closed.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/1broseidon/winlayer/internal/config"
	"github.com/1broseidon/winlayer/internal/event"
	"github.com/1broseidon/winlayer/internal/platform"
	"github.com/1broseidon/winlayer/internal/window"
)

// AppKit and Win32 deliver window messages to the thread that created the
// window.
func init() {
	runtime.LockOSThread()
}

const pollInterval = 10 * time.Millisecond

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("winevents", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "config file (default ~/.config/winlayer/config.yaml)")
	title := fs.String("title", "", "window title")
	size := fs.String("size", "", "client size as WxH")
	style := fs.String("style", "", "comma-separated styles: titlebar,resize,close,fullscreen or none")
	adopt := fs.String("adopt", "", "adopt an existing native window (hex or decimal handle)")
	watch := fs.Bool("watch", false, "apply title, size and icon edits to the config file while running")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winevents [flags]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintf(os.Stderr, "Open a %s window and print its events.\n", backendName())
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "winevents takes no arguments")
		fs.Usage()
		return 2
	}

	path := *configPath
	if path == "" {
		p, err := config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		path = p
	}
	res, err := config.LoadFromPath(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cfg := res.Config
	overrides := func(c *config.Config) error {
		return applyFlags(c, fs, *title, *size, *style, *adopt)
	}
	if err := overrides(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	mgr, err := platform.NewManager(platform.Options{Display: cfg.Display, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open window system: %v\n", err)
		return 1
	}

	queue := event.NewQueue()
	w, err := openWindow(mgr, cfg, queue)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer w.Close()
	if !w.Valid() {
		fmt.Fprintln(os.Stderr, "window could not be created; see log")
		return 1
	}
	if cfg.Icon != "" {
		if err := applyIcon(w, cfg.Icon, cfg.IconSize); err != nil {
			logger.Warn("failed to load icon", "path", cfg.Icon, "error", err)
		}
	}

	out := newPrinter(os.Stdout)
	out.opened(w)

	var reloads <-chan *config.Config
	if *watch {
		watcher, err := watchConfig(path, logger)
		if err != nil {
			logger.Warn("config watch disabled", "error", err)
		} else {
			defer watcher.Close()
			reloads = watcher.Configs()
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		w.ProcessEvents()
		for {
			ev, ok := queue.Poll()
			if !ok {
				break
			}
			out.event(ev)
			if ev.Kind() == event.KindClosed {
				return 0
			}
		}

		select {
		case <-sigCh:
			return 0
		case next := <-reloads:
			cfg = reload(w, cfg, next, overrides, logger)
		case <-ticker.C:
		}
	}
}

func backendName() string {
	if platform.Backend == "" {
		return "native"
	}
	return platform.Backend
}

// applyFlags overrides config values with the flags given on the command
// line.
func applyFlags(cfg *config.Config, fs *flag.FlagSet, title, size, style, adopt string) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "title":
			cfg.Title = title
		case "size":
			var s window.Size
			if s, err = parseSize(size); err == nil {
				cfg.Width, cfg.Height = s.Width, s.Height
			}
		case "style":
			cfg.Style = splitList(style)
		case "adopt":
			cfg.Adopt = adopt
		}
	})
	if err != nil {
		return err
	}
	return cfg.Validate()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseSize(s string) (window.Size, error) {
	var w, h uint
	if n, err := fmt.Sscanf(strings.ToLower(strings.TrimSpace(s)), "%dx%d", &w, &h); err != nil || n != 2 {
		return window.Size{}, fmt.Errorf("invalid size %q: want WxH", s)
	}
	if w == 0 || h == 0 {
		return window.Size{}, fmt.Errorf("invalid size %q: extents must be > 0", s)
	}
	return window.Size{Width: w, Height: h}, nil
}

func openWindow(mgr *window.Manager, cfg *config.Config, sink event.Sink) (*window.Window, error) {
	h, err := cfg.AdoptHandle()
	if err != nil {
		return nil, err
	}
	if h != 0 {
		return mgr.Adopt(h, sink), nil
	}
	style, err := cfg.WindowStyle()
	if err != nil {
		return nil, err
	}
	return mgr.Create(cfg.VideoMode(), cfg.Title, style, sink), nil
}
