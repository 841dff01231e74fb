package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/1broseidon/winlayer/internal/window"
)

// iconPixmaps are the server resources backing a window's WM_HINTS icon.
type iconPixmaps struct {
	image xproto.Pixmap
	mask  xproto.Pixmap
}

func (c *Connection) freeIcon(p iconPixmaps) {
	if p.image != 0 {
		xproto.FreePixmap(c.XUtil.Conn(), p.image)
	}
	if p.mask != 0 {
		xproto.FreePixmap(c.XUtil.Conn(), p.mask)
	}
}

// SetWindowIcon uploads icon as a colour pixmap plus a 1-bit mask and
// points WM_HINTS at them. _NET_WM_ICON is set too for EWMH panels unless
// it would not fit in one request, in which case errIconTooLarge is
// returned alongside the installed pixmaps.
func (c *Connection) SetWindowIcon(windowID xproto.Window, icon window.Icon) (iconPixmaps, error) {
	if icon.Width == 0 || icon.Height == 0 {
		return iconPixmaps{}, fmt.Errorf("icon size %dx%d is empty", icon.Width, icon.Height)
	}
	conn := c.XUtil.Conn()
	setup := c.XUtil.Setup()
	w, h := uint16(icon.Width), uint16(icon.Height)

	var pix iconPixmaps
	var err error
	if pix.image, err = xproto.NewPixmapId(conn); err != nil {
		return iconPixmaps{}, fmt.Errorf("failed to allocate icon pixmap: %w", err)
	}
	if pix.mask, err = xproto.NewPixmapId(conn); err != nil {
		return iconPixmaps{}, fmt.Errorf("failed to allocate icon mask: %w", err)
	}
	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		return iconPixmaps{}, fmt.Errorf("failed to allocate graphics context: %w", err)
	}
	maskGC, err := xproto.NewGcontextId(conn)
	if err != nil {
		return iconPixmaps{}, fmt.Errorf("failed to allocate graphics context: %w", err)
	}

	limit := requestLimit(setup.MaximumRequestLength)
	depth := c.Depth()
	xproto.CreatePixmap(conn, depth, pix.image, xproto.Drawable(c.Root), w, h)
	xproto.CreateGC(conn, gc, xproto.Drawable(pix.image), 0, nil)
	err = putImage(conn, xproto.ImageFormatZPixmap, xproto.Drawable(pix.image), gc,
		icon.Width, depth, icon.BGRA, int(icon.Width)*4, limit)
	xproto.FreeGC(conn, gc)
	if err != nil {
		c.freeIcon(pix)
		return iconPixmaps{}, fmt.Errorf("failed to upload icon pixmap: %w", err)
	}

	pad := int(setup.BitmapFormatScanlinePad) / 8
	msbFirst := setup.BitmapFormatBitOrder == xproto.ImageOrderMSBFirst
	bits := window.PackMask(icon.Mask, icon.Width, icon.Height, pad, false, msbFirst)

	xproto.CreatePixmap(conn, 1, pix.mask, xproto.Drawable(c.Root), w, h)
	xproto.CreateGC(conn, maskGC, xproto.Drawable(pix.mask), 0, nil)
	err = putImage(conn, xproto.ImageFormatXYPixmap, xproto.Drawable(pix.mask), maskGC,
		icon.Width, 1, bits, len(bits)/int(icon.Height), limit)
	xproto.FreeGC(conn, maskGC)
	if err != nil {
		c.freeIcon(pix)
		return iconPixmaps{}, fmt.Errorf("failed to upload icon mask: %w", err)
	}

	hints := &icccm.Hints{
		Flags:      icccm.HintIconPixmap | icccm.HintIconMask,
		IconPixmap: pix.image,
		IconMask:   pix.mask,
	}
	if err := icccm.WmHintsSet(c.XUtil, windowID, hints); err != nil {
		c.freeIcon(pix)
		return iconPixmaps{}, fmt.Errorf("failed to set WM_HINTS icon: %w", err)
	}

	if !netWMIconFits(icon.Width, icon.Height, limit) {
		return pix, errIconTooLarge
	}
	if err := ewmh.WmIconSet(c.XUtil, windowID, []ewmh.WmIcon{netWMIcon(icon)}); err != nil {
		return pix, fmt.Errorf("failed to set _NET_WM_ICON: %w", err)
	}
	return pix, nil
}

// putImage sends data in row strips that each fit in one request.
func putImage(conn *xgb.Conn, format byte, d xproto.Drawable, gc xproto.Gcontext,
	width uint, depth byte, data []byte, stride, limit int) error {
	if stride == 0 {
		return nil
	}
	strips, err := imageStrips(len(data)/stride, stride, limit)
	if err != nil {
		return err
	}
	for _, s := range strips {
		xproto.PutImage(conn, format, d, gc, uint16(width), uint16(s.rows),
			0, int16(s.y), 0, depth, data[s.y*stride:(s.y+s.rows)*stride])
	}
	return nil
}

// netWMIcon packs BGRA bytes into the ARGB cardinals _NET_WM_ICON expects.
func netWMIcon(icon window.Icon) ewmh.WmIcon {
	n := int(icon.Width * icon.Height)
	data := make([]uint, n)
	for i := 0; i < n && i*4+3 < len(icon.BGRA); i++ {
		p := icon.BGRA[i*4 : i*4+4]
		data[i] = uint(p[3])<<24 | uint(p[2])<<16 | uint(p[1])<<8 | uint(p[0])
	}
	return ewmh.WmIcon{Width: icon.Width, Height: icon.Height, Data: data}
}
