package window

// MatchMode returns the index of the first mode whose size equals want, or
// -1. There is no best-fit fallback.
func MatchMode(modes []VideoMode, want VideoMode) int {
	for i, m := range modes {
		if m.Width == want.Width && m.Height == want.Height {
			return i
		}
	}
	return -1
}

// enterFullscreen switches the primary display to mode and makes w the
// fullscreen owner. Any failure leaves w windowed and not the owner.
func (w *Window) enterFullscreen(mode VideoMode) {
	d := w.mgr.driver
	log := w.mgr.log

	if !d.ModeSwitchAvailable() {
		log.Warn("fullscreen is not supported, switching to window mode")
		return
	}
	modes, err := d.EnumerateDisplayModes()
	if err != nil {
		log.Warn("failed to get the current screen configuration for fullscreen mode, switching to window mode", "error", err)
		return
	}
	index := MatchMode(modes, mode)
	if index < 0 {
		log.Warn("no display mode matches the requested size, switching to window mode", "size", mode.Size().String())
		return
	}
	saved, err := d.CurrentMode()
	if err != nil {
		log.Warn("failed to save the current display mode, switching to window mode", "error", err)
		return
	}
	if err := d.SwitchMode(index, modes[index]); err != nil {
		d.ReleaseMode(saved)
		log.Warn("failed to change display mode for fullscreen", "size", mode.Size().String(), "error", err)
		return
	}
	w.savedMode = saved
	w.mgr.acquireFullscreen(w)
}

// restoreFullscreen reverts the display mode if w is the fullscreen owner.
func (w *Window) restoreFullscreen() {
	if w.mgr.fullscreenOwner != w {
		return
	}
	d := w.mgr.driver
	if err := d.RestoreMode(w.savedMode); err != nil {
		w.mgr.log.Warn("failed to restore the display mode", "error", err)
	}
	d.ReleaseMode(w.savedMode)
	w.savedMode = ModeToken{}
	w.mgr.fullscreenOwner = nil
}

// FullscreenOwner reports whether w currently holds the altered display mode.
func (w *Window) FullscreenOwner() bool {
	return w.mgr.fullscreenOwner == w
}
