// ABOUTME: Color assignment for authorship attribution
// ABOUTME: Maps an ordered roster onto a fixed palette, position by position

// Package attribution colors the authorship markers of an article by author.
package attribution

import (
	"article-viewer-api/core/domain"
	coreerrors "article-viewer-api/core/errors"
)

// DefaultPalette is the palette used when none is configured.
var DefaultPalette = []string{"red", "blue", "green", "yellow"}

// Assign gives the i-th author in roster the i-th palette color and returns the
// legend in roster order. A roster longer than the palette is an error; colors
// are never reused.
func Assign(roster domain.Roster, palette []string) ([]domain.LegendEntry, error) {
	if len(roster) > len(palette) {
		return nil, &coreerrors.PaletteOverflowError{Authors: len(roster), Colors: len(palette)}
	}

	legend := make([]domain.LegendEntry, len(roster))
	for i, author := range roster {
		legend[i] = domain.LegendEntry{Name: author.Name, Color: palette[i]}
	}
	return legend, nil
}
