package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"

	"github.com/1broseidon/winlayer/internal/window"
)

// _MOTIF_WM_HINTS bits.
const (
	mwmHintsFunctions   = 1 << 0
	mwmHintsDecorations = 1 << 1

	mwmDecorBorder   = 1 << 1
	mwmDecorResizeH  = 1 << 2
	mwmDecorTitle    = 1 << 3
	mwmDecorMenu     = 1 << 4
	mwmDecorMinimize = 1 << 5
	mwmDecorMaximize = 1 << 6

	mwmFuncResize   = 1 << 1
	mwmFuncMove     = 1 << 2
	mwmFuncMinimize = 1 << 3
	mwmFuncMaximize = 1 << 4
	mwmFuncClose    = 1 << 5
)

// motifHints maps a style to Motif decorations and functions. StyleNone
// yields empty sets, which window managers render borderless.
func motifHints(style window.Style) motif.Hints {
	hints := motif.Hints{Flags: mwmHintsFunctions | mwmHintsDecorations}
	if style.Has(window.StyleTitlebar) {
		hints.Decoration |= mwmDecorBorder | mwmDecorTitle | mwmDecorMinimize | mwmDecorMenu
		hints.Function |= mwmFuncMove | mwmFuncMinimize
	}
	if style.Has(window.StyleResize) {
		hints.Decoration |= mwmDecorMaximize | mwmDecorResizeH
		hints.Function |= mwmFuncMaximize | mwmFuncResize
	}
	if style.Has(window.StyleClose) {
		hints.Function |= mwmFuncClose
	}
	return hints
}

// fixedSizeHints pins the minimum and maximum size to size so window
// managers that ignore Motif still refuse interactive resizing.
func fixedSizeHints(size window.Size) icccm.NormalHints {
	return icccm.NormalHints{
		Flags:     icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize,
		MinWidth:  size.Width,
		MinHeight: size.Height,
		MaxWidth:  size.Width,
		MaxHeight: size.Height,
	}
}

func applyDecorations(xu *xgbutil.XUtil, win xproto.Window, style window.Style, size window.Size) error {
	hints := motifHints(style)
	if err := motif.WmHintsSet(xu, win, &hints); err != nil {
		return err
	}
	if !style.Has(window.StyleResize) {
		normal := fixedSizeHints(size)
		if err := icccm.WmNormalHintsSet(xu, win, &normal); err != nil {
			return err
		}
	}
	return nil
}
