package segment

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor accepts #RGB, #RRGGBB and #AARRGGBB.
func ParseColor(s string) (c color.RGBA, err error) {
	hex := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))

	alpha := uint64(0xff)

	if len(hex) == 8 {
		alpha, err = strconv.ParseUint(hex[:2], 16, 8)
		if err != nil {
			err = fmt.Errorf("%w: %q", ErrBadColor, s)

			return
		}

		hex = hex[2:]
	}

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		err = fmt.Errorf("%w: %q", ErrBadColor, s)

		return
	}

	cf, e := colorful.Hex("#" + hex)
	// colorful.Hex tolerates blanks between digits, require an exact round trip
	if e != nil || cf.Hex() != "#"+hex {
		err = fmt.Errorf("%w: %q", ErrBadColor, s)

		return
	}

	r, g, b := cf.RGB255()

	c = color.RGBA{R: r, G: g, B: b, A: uint8(alpha)}

	return
}

func ParsePalette(ss []string) (Palette, error) {
	if len(ss) == 0 {
		return nil, ErrEmptyPalette
	}

	p := make(Palette, 0, len(ss))

	for _, s := range ss {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}

		p = append(p, c)
	}

	return p, nil
}
