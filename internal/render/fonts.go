package render

import (
	"fmt"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce sync.Once
	regular  *truetype.Font
	fontErr  error
)

func loadRegular() (*truetype.Font, error) {
	fontOnce.Do(func() {
		regular, fontErr = truetype.Parse(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("parsing embedded font: %w", fontErr)
		}
	})
	return regular, fontErr
}

// faces holds the font faces of one figure, sized to its layout.
type faces struct {
	title   font.Face
	month   font.Face
	weekday font.Face
	day     font.Face
	legend  font.Face
}

func newFaces(l Layout) (*faces, error) {
	f, err := loadRegular()
	if err != nil {
		return nil, err
	}
	g := newPanelGeometry(l.Panels[0])
	face := func(px float64) font.Face {
		// DPI 72 makes points equal pixels.
		return truetype.NewFace(f, &truetype.Options{
			Size:    math.Max(px, 4),
			DPI:     72,
			Hinting: font.HintingNone,
		})
	}
	return &faces{
		title:   face(0.55 * l.Title.H),
		month:   face(0.6 * g.title.H),
		weekday: face(0.6 * g.header.H),
		day:     face(0.3 * g.cellH()),
		legend:  face(0.2 * l.Legends[0].H),
	}, nil
}
