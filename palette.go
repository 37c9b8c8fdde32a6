package backdrop

import "fmt"

// DefaultPalette is the set of CSS colors a branch may be drawn in.
var DefaultPalette = []string{
	"#bfff00", // lime green
	"#1a237e", // deep blue
	"#00e5ff", // cyan
	"#ff4081", // pink
	"#ffd600", // yellow
	"#00c853", // vivid green
	"#ff1744", // red
	"#6200ea", // purple
	"#00b8d4", // teal
	"#fff",    // white
	"#aee571", // light green
}

// Swatch pairs a parsed color with the CSS string it came from.
type Swatch struct {
	Name  string
	Color Color
}

// Palette is an ordered list of swatches.
type Palette []Swatch

// ParsePalette parses every entry of colors. An empty list is an error since
// branches need at least one color to pick from.
func ParsePalette(colors []string) (Palette, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("parse palette: no colors")
	}
	p := make(Palette, 0, len(colors))
	for _, s := range colors {
		c, err := ParseHexColor(s)
		if err != nil {
			return nil, fmt.Errorf("parse palette: %w", err)
		}
		p = append(p, Swatch{Name: s, Color: c})
	}
	return p, nil
}

// MustParsePalette is like ParsePalette but panics on error. Intended for
// package-level palettes built from literals.
func MustParsePalette(colors []string) Palette {
	p, err := ParsePalette(colors)
	if err != nil {
		panic(err)
	}
	return p
}

// Pick returns a swatch chosen uniformly at random.
func (p Palette) Pick(rng Rand) Swatch {
	return p[rng.IntN(len(p))]
}
