package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/winlayer/internal/event"
	"github.com/1broseidon/winlayer/internal/window"
)

// printer writes one line per event. Colors are only used on a terminal.
type printer struct {
	w     io.Writer
	color bool
	now   func() time.Time

	stamp lipgloss.Style
	label map[event.Kind]lipgloss.Style
	info  lipgloss.Style
}

func newPrinter(f *os.File) *printer {
	return newPrinterTo(f, term.IsTerminal(int(f.Fd())))
}

func newPrinterTo(w io.Writer, color bool) *printer {
	return &printer{
		w:     w,
		color: color,
		now:   time.Now,
		stamp: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		label: map[event.Kind]lipgloss.Style{
			event.KindClosed:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			event.KindResized:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
			event.KindLostFocus:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			event.KindGainedFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		},
		info: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	}
}

func (p *printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p *printer) opened(w *window.Window) {
	kind := "created"
	if !w.Owned() {
		kind = "adopted"
	}
	line := fmt.Sprintf("%s window 0x%x at %d,%d size %s",
		kind, uintptr(w.SystemHandle()), w.Position().X, w.Position().Y, w.Size())
	fmt.Fprintf(p.w, "%s %s\n", p.timestamp(), p.render(p.info, line))
}

func (p *printer) event(ev event.Event) {
	text := ev.Kind().String()
	if r, ok := ev.(event.Resized); ok {
		text = r.String()
	}
	fmt.Fprintf(p.w, "%s %s\n", p.timestamp(), p.render(p.label[ev.Kind()], text))
}

func (p *printer) timestamp() string {
	return p.render(p.stamp, p.now().Format("15:04:05.000"))
}
