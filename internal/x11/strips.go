package x11

import "errors"

const putImageHeader = 24

// errIconTooLarge means _NET_WM_ICON was skipped; WM_HINTS still carries
// the icon.
var errIconTooLarge = errors.New("icon exceeds the maximum request length for _NET_WM_ICON")

// requestLimit is the largest request the server accepts, in bytes.
// maxLength is the Setup value, counted in 4-byte units.
func requestLimit(maxLength uint16) int {
	return int(maxLength) * 4
}

// strip is a band of image rows small enough for one PutImage.
type strip struct {
	y, rows int
}

// imageStrips splits height rows of stride bytes into bands whose data
// plus the PutImage header fit under limit.
func imageStrips(height, stride, limit int) ([]strip, error) {
	room := limit - putImageHeader
	if stride <= 0 || height <= 0 {
		return nil, nil
	}
	if stride > room {
		return nil, errors.New("image row exceeds the maximum request length")
	}
	per := room / stride
	strips := make([]strip, 0, (height+per-1)/per)
	for y := 0; y < height; y += per {
		rows := per
		if y+rows > height {
			rows = height - y
		}
		strips = append(strips, strip{y: y, rows: rows})
	}
	return strips, nil
}

// netWMIconFits reports whether a ChangeProperty carrying w*h ARGB
// cardinals plus the width and height fits under limit.
func netWMIconFits(w, h uint, limit int) bool {
	return putImageHeader+4*(2+int(w)*int(h)) <= limit
}
