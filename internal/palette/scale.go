package palette

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrUnknownPalette = errors.New("unknown palette")

// Scale maps an intensity in [0,1] to a color.
type Scale func(intensity float64) color.Color

// ColorBrewer 9-class sequential schemes, light to dark.
var schemes = map[string][]string{
	"Blues":   {"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#08519c", "#08306b"},
	"Greens":  {"#f7fcf5", "#e5f5e0", "#c7e9c0", "#a1d99b", "#74c476", "#41ab5d", "#238b45", "#006d2c", "#00441b"},
	"Oranges": {"#fff5eb", "#fee6ce", "#fdd0a2", "#fdae6b", "#fd8d3c", "#f16913", "#d94801", "#a63603", "#7f2704"},
	"Purples": {"#fcfbfd", "#efedf5", "#dadaeb", "#bcbddc", "#9e9ac8", "#807dba", "#6a51a3", "#54278f", "#3f007d"},
	"Reds":    {"#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a", "#ef3b2c", "#cb181d", "#a50f15", "#67000d"},
	"Greys":   {"#ffffff", "#f0f0f0", "#d9d9d9", "#bdbdbd", "#969696", "#737373", "#525252", "#252525", "#000000"},
}

// Names lists the available scale names in sorted order.
func Names() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the named scale. Matching is case-insensitive.
func ByName(name string) (Scale, error) {
	for key, stops := range schemes {
		if strings.EqualFold(key, name) {
			return newScale(stops), nil
		}
	}
	return nil, fmt.Errorf("%q (want one of %s): %w", name, strings.Join(Names(), ", "), ErrUnknownPalette)
}

// DisplayName turns a scheme name into the color word shown in legends:
// "Blues" becomes "Blue". Unknown names are returned unchanged.
func DisplayName(name string) string {
	for key := range schemes {
		if strings.EqualFold(key, name) {
			return strings.TrimSuffix(key, "s")
		}
	}
	return name
}

// MustByName is ByName for the built-in defaults.
func MustByName(name string) Scale {
	s, err := ByName(name)
	if err != nil {
		panic(err)
	}
	return s
}

// newScale interpolates between evenly spaced stops in CIE-Lab.
func newScale(hexStops []string) Scale {
	stops := make([]colorful.Color, len(hexStops))
	for i, h := range hexStops {
		stops[i] = mustHex(h)
	}
	last := len(stops) - 1
	return func(intensity float64) color.Color {
		switch {
		case intensity <= 0 || intensity != intensity:
			return toRGBA(stops[0])
		case intensity >= 1:
			return toRGBA(stops[last])
		}
		pos := intensity * float64(last)
		i := int(pos)
		return toRGBA(stops[i].BlendLab(stops[i+1], pos-float64(i)).Clamped())
	}
}

// mustHex parses one of the built-in stops above.
func mustHex(h string) colorful.Color {
	c, err := colorful.Hex(h)
	if err != nil {
		panic(fmt.Sprintf("palette stop %q: %v", h, err))
	}
	return c
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
